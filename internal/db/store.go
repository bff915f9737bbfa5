package db

import (
	"context"
	"sync"

	apperrors "turfzone/internal/errors"
	"turfzone/internal/turf"

	"github.com/jmoiron/sqlx"
)

// selectTurfsSQL is the only query the application issues.
const selectTurfsSQL = `SELECT id, name, address, hourly_rate, operating_hours, category FROM turfs WHERE category = ?`

const insertTurfSQL = `INSERT INTO turfs (name, address, hourly_rate, operating_hours, category)
	VALUES (:name, :address, :hourly_rate, :operating_hours, :category)
	ON CONFLICT (name, category) DO NOTHING`

// sqlStore holds the driver-independent queries. Placeholders are written
// with ? and rebound for the driver. Nothing dials until the first call;
// the schema is created on first use and retried until it succeeds.
type sqlStore struct {
	db      *sqlx.DB
	migrate func(ctx context.Context) error

	mu    sync.Mutex
	ready bool
}

func newSQLStore(db *sqlx.DB) *sqlStore {
	return &sqlStore{db: db}
}

// openSQL opens a pool that keeps no idle connections, so every lookup
// gets a fresh connection and gives it back.
func openSQL(driver, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxIdleConns(0)
	return db, nil
}

func (s *sqlStore) ensureSchema(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ready || s.migrate == nil {
		return nil
	}
	if err := s.migrate(ctx); err != nil {
		return err
	}
	s.ready = true
	return nil
}

// ListByCategory runs the category query on a connection held only for
// the duration of the call.
func (s *sqlStore) ListByCategory(ctx context.Context, category string) ([]turf.Turf, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return nil, apperrors.NewLookupError(category, err)
	}

	conn, err := s.db.Connx(ctx)
	if err != nil {
		return nil, apperrors.NewLookupError(category, err)
	}
	defer conn.Close()

	turfs := []turf.Turf{}
	if err := conn.SelectContext(ctx, &turfs, s.db.Rebind(selectTurfsSQL), category); err != nil {
		return nil, apperrors.NewLookupError(category, err)
	}
	return turfs, nil
}

// Seed inserts turfs that are not already present (by name and category)
// and returns how many rows were added.
func (s *sqlStore) Seed(ctx context.Context, turfs []turf.Turf) (int64, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return 0, apperrors.NewStoreError("migrate", err)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, apperrors.NewStoreError("seed", err)
	}
	defer tx.Rollback()

	var inserted int64
	for _, t := range turfs {
		res, err := tx.NamedExecContext(ctx, insertTurfSQL, t)
		if err != nil {
			return 0, apperrors.NewStoreError("seed", err)
		}
		if n, err := res.RowsAffected(); err == nil {
			inserted += n
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, apperrors.NewStoreError("seed", err)
	}
	return inserted, nil
}

// Ping checks the store is reachable.
func (s *sqlStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database connection
func (s *sqlStore) Close() error {
	return s.db.Close()
}
