// Package cmdutils builds the shared object graph the commands run on.
// The constructors are package variables so command tests can swap them.
package cmdutils

import (
	"fmt"
	"log/slog"

	"turfzone/internal/booking"
	"turfzone/internal/config"
	"turfzone/internal/controller"
	"turfzone/internal/db"
	"turfzone/internal/metrics"
	"turfzone/internal/session"
	"turfzone/internal/turf"
)

// Runtime is everything a command needs to serve lookups and bookings.
type Runtime struct {
	Settings  config.Settings
	Store     db.Store
	Service   *turf.Service
	Session   *session.Session
	Generator *booking.Generator
	Metrics   *metrics.Metrics
	Logger    *slog.Logger
}

// OpenStore opens the configured turf store.
var OpenStore = func(s config.Settings) (db.Store, error) {
	store, err := db.NewStore(db.StoreConfig{Type: s.StoreType, ConnectionString: s.StoreDSN})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", s.StoreType, err)
	}
	return store, nil
}

// NewRuntime wires the store, lookup service, session and metrics from s.
var NewRuntime = func(s config.Settings, logger *slog.Logger) (*Runtime, error) {
	if logger == nil {
		logger = slog.Default()
	}
	store, err := OpenStore(s)
	if err != nil {
		return nil, err
	}

	m := metrics.NewMetrics(s.Categories...)
	svc := turf.NewService(store,
		turf.WithObserver(m),
		turf.WithTimeout(s.LookupTimeout),
		turf.WithLogger(logger),
	)

	return &Runtime{
		Settings:  s,
		Store:     store,
		Service:   svc,
		Session:   session.New(s.LoggedIn),
		Generator: booking.NewGenerator(nil),
		Metrics:   m,
		Logger:    logger,
	}, nil
}

// Controller returns a fresh view controller sharing the runtime's session.
func (r *Runtime) Controller() *controller.Controller {
	return controller.New(controller.Config{
		Lookup:    r.Service,
		Session:   r.Session,
		Generator: r.Generator,
		Observer:  r.Metrics,
		Logger:    r.Logger,
	})
}

func (r *Runtime) Close() error {
	if r.Store == nil {
		return nil
	}
	return r.Store.Close()
}
