package web

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"turfzone/internal/booking"
	"turfzone/internal/controller"
	apperrors "turfzone/internal/errors"
	"turfzone/internal/metrics"
	"turfzone/internal/session"
	"turfzone/internal/turf"
)

// Config wires a Server.
type Config struct {
	Lookup      controller.Looker
	Session     *session.Session
	Generator   *booking.Generator
	Metrics     *metrics.Metrics
	Categories  []string
	Category    string
	CORSOrigins []string
	Logger      *slog.Logger
}

// Server exposes the turf listing and the mock booking flow over HTTP.
type Server struct {
	lookup      controller.Looker
	session     *session.Session
	gen         *booking.Generator
	metrics     *metrics.Metrics
	categories  []string
	category    string
	corsOrigins []string
	logger      *slog.Logger
}

// NewServer creates a new web server
func NewServer(cfg Config) *Server {
	s := &Server{
		lookup:      cfg.Lookup,
		session:     cfg.Session,
		gen:         cfg.Generator,
		metrics:     cfg.Metrics,
		categories:  cfg.Categories,
		category:    cfg.Category,
		corsOrigins: cfg.CORSOrigins,
		logger:      cfg.Logger,
	}
	if s.session == nil {
		s.session = session.New(true)
	}
	if s.gen == nil {
		s.gen = booking.NewGenerator(nil)
	}
	if s.metrics == nil {
		s.metrics = metrics.NewMetrics(s.categories...)
	}
	if s.category == "" {
		s.category = turf.DefaultCategory
	}
	if len(s.corsOrigins) == 0 {
		s.corsOrigins = []string{"*"}
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.corsOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300, // 5 minutes
	}))
	r.Use(s.metrics.RequestTrackingMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/categories", s.handleCategories)
		r.Get("/turfs", s.handleTurfs)
		r.Post("/bookings", s.handleBooking)
	})
	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

type turfsResponse struct {
	Category string      `json:"category"`
	Turfs    []turf.Turf `json:"turfs"`
	Error    string      `json:"error,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"categories": s.categories})
}

// handleTurfs never fails the request: a store error comes back as an
// empty list with a message.
func (s *Server) handleTurfs(w http.ResponseWriter, r *http.Request) {
	category := strings.TrimSpace(r.URL.Query().Get("category"))
	if category == "" {
		category = s.category
	}

	listing := s.lookup.Lookup(r.Context(), category)
	resp := turfsResponse{Category: listing.Category, Turfs: listing.Turfs}
	if resp.Turfs == nil {
		resp.Turfs = []turf.Turf{}
	}
	if listing.Failed() {
		resp.Error = "Could not load " + category + " turfs."
		s.metrics.ObserveNotice(string(controller.NoticeLookupFailed))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleBooking(w http.ResponseWriter, r *http.Request) {
	if !s.session.IsLoggedIn() {
		s.metrics.ObserveNotice(string(controller.NoticeLoginRequired))
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: apperrors.ErrLoginRequired.Error()})
		return
	}

	var req booking.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if err := req.Validate(); err != nil {
		s.metrics.ObserveNotice(string(controller.NoticeInvalidBooking))
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	conf := s.gen.Confirm(req)
	s.metrics.ObserveConfirmation()
	s.logger.Info("Booking confirmed", "confirmation_id", conf.ID, "turf", conf.TurfName, "date", conf.Date)
	writeJSON(w, http.StatusCreated, conf)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
