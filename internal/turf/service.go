package turf

import (
	"context"
	"log/slog"
	"time"

	apperrors "turfzone/internal/errors"
)

// Lookup outcomes reported to an Observer.
const (
	OutcomeOK    = "ok"
	OutcomeEmpty = "empty"
	OutcomeError = "error"
)

// Observer receives one call per lookup.
type Observer interface {
	ObserveLookup(category, outcome string, results int, elapsed time.Duration)
}

// Service looks up turfs by category. A failing repository never
// surfaces as an error: the failure is logged and the result is empty.
type Service struct {
	repo     Repository
	observer Observer
	timeout  time.Duration
	logger   *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithObserver reports lookups to o.
func WithObserver(o Observer) Option {
	return func(s *Service) { s.observer = o }
}

// WithTimeout bounds each lookup. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) { s.timeout = d }
}

// WithLogger overrides slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{repo: repo, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListTurfsByCategory returns the turfs in category, or nothing if the
// lookup failed.
func (s *Service) ListTurfsByCategory(ctx context.Context, category string) []Turf {
	return s.Lookup(ctx, category).Turfs
}

// Lookup issues one query for category and keeps the failure, if any, on
// the returned Listing.
func (s *Service) Lookup(ctx context.Context, category string) Listing {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	rows, err := s.repo.ListByCategory(ctx, category)
	elapsed := time.Since(start)

	if err != nil {
		if !apperrors.IsLookupError(err) {
			err = apperrors.NewLookupError(category, err)
		}
		s.logger.Error("Could not load turfs", "category", category, "error", err)
		s.observe(category, OutcomeError, 0, elapsed)
		return Listing{Category: category, Turfs: []Turf{}, Err: err}
	}

	turfs := make([]Turf, 0, len(rows))
	for _, t := range rows {
		if t.PricePerHour.IsNegative() {
			s.logger.Warn("Dropping turf with negative price", "id", t.ID, "name", t.Name, "price", t.PricePerHour.String())
			continue
		}
		if t.Category != category {
			s.logger.Warn("Dropping turf outside requested category", "id", t.ID, "category", t.Category, "requested", category)
			continue
		}
		turfs = append(turfs, t)
	}

	outcome := OutcomeOK
	if len(turfs) == 0 {
		outcome = OutcomeEmpty
	}
	s.logger.Debug("Loaded turfs", "category", category, "count", len(turfs), "elapsed", elapsed)
	s.observe(category, outcome, len(turfs), elapsed)

	return Listing{Category: category, Turfs: turfs}
}

func (s *Service) observe(category, outcome string, n int, elapsed time.Duration) {
	if s.observer != nil {
		s.observer.ObserveLookup(category, outcome, n, elapsed)
	}
}
