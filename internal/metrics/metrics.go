package metrics

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "turfzone"

const (
	// otherCategory labels lookups for categories outside the configured set.
	otherCategory = "other"
	// unmatchedRoute labels requests that matched no route.
	unmatchedRoute = "unmatched"
)

// Metrics represents the collection of all Prometheus metrics
type Metrics struct {
	Registry *prometheus.Registry

	// Standard HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Business metrics
	LookupsTotal      *prometheus.CounterVec
	LookupDuration    prometheus.Histogram
	LookupResults     prometheus.Histogram
	ViewTransitions   *prometheus.CounterVec
	NoticesTotal      *prometheus.CounterVec
	BookingsConfirmed prometheus.Counter

	categories map[string]struct{}
}

// NewMetrics creates all metrics on a private registry, together with the
// Go runtime and process collectors. Lookups are labelled with their
// category only when it is one of categories.
func NewMetrics(categories ...string) *Metrics {
	m := &Metrics{
		Registry:   prometheus.NewRegistry(),
		categories: make(map[string]struct{}, len(categories)),
	}
	for _, c := range categories {
		m.categories[c] = struct{}{}
	}

	m.HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	m.HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	m.LookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookups_total",
			Help:      "Turf lookups by category and outcome (ok, empty, error)",
		},
		[]string{"category", "outcome"},
	)

	m.LookupDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "lookup_duration_seconds",
			Help:      "Duration of turf lookups in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	m.LookupResults = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "lookup_results",
			Help:      "Number of turfs returned per lookup",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
		},
	)

	m.ViewTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "view_transitions_total",
			Help:      "Dispatched actions by source view, target view and action",
		},
		[]string{"from", "to", "action"},
	)

	m.NoticesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notices_total",
			Help:      "User notices raised, by kind",
		},
		[]string{"kind"},
	)

	m.BookingsConfirmed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_confirmed_total",
			Help:      "Mock booking confirmations generated",
		},
	)

	m.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.LookupsTotal,
		m.LookupDuration,
		m.LookupResults,
		m.ViewTransitions,
		m.NoticesTotal,
		m.BookingsConfirmed,
	)

	return m
}

// ObserveLookup implements turf.Observer.
func (m *Metrics) ObserveLookup(category, outcome string, results int, elapsed time.Duration) {
	m.LookupsTotal.WithLabelValues(m.categoryLabel(category), outcome).Inc()
	m.LookupDuration.Observe(elapsed.Seconds())
	m.LookupResults.Observe(float64(results))
}

func (m *Metrics) categoryLabel(category string) string {
	if _, ok := m.categories[category]; ok {
		return category
	}
	return otherCategory
}

// ObserveTransition implements controller.TransitionObserver.
func (m *Metrics) ObserveTransition(from, to, action string) {
	m.ViewTransitions.WithLabelValues(from, to, action).Inc()
}

func (m *Metrics) ObserveNotice(kind string) {
	m.NoticesTotal.WithLabelValues(kind).Inc()
}

func (m *Metrics) ObserveConfirmation() {
	m.BookingsConfirmed.Inc()
}

// RequestTrackingMiddleware records requests by chi route pattern, so it
// must run inside a chi router. Requests no route matched share one label.
func (m *Metrics) RequestTrackingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Create a response writer wrapper to capture status code
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		route := routeLabel(r)
		m.HTTPRequestsTotal.WithLabelValues(r.Method, route, http.StatusText(rw.statusCode)).Inc()
		m.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

func routeLabel(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return unmatchedRoute
	}
	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}
	return unmatchedRoute
}

// responseWriter is a wrapper to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Handler returns the Prometheus HTTP handler for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}
