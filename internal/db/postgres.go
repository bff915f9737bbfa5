package db

import (
	"context"
	"fmt"
	"log/slog"

	apperrors "turfzone/internal/errors"

	_ "github.com/lib/pq"
)

// PostgresStore implements Store using PostgreSQL
type PostgresStore struct {
	*sqlStore
}

// NewPostgresStore prepares a Postgres store. No connection is made until
// the first query, which also applies the migrations.
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := openSQL("postgres", dsn)
	if err != nil {
		return nil, apperrors.NewStoreError("open", fmt.Errorf("failed to open database: %w", err))
	}

	store := &PostgresStore{sqlStore: newSQLStore(db)}
	store.sqlStore.migrate = store.createSchema
	return store, nil
}

func (s *PostgresStore) createSchema(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS turfs (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			address TEXT NOT NULL DEFAULT '',
			hourly_rate NUMERIC(10,2) NOT NULL DEFAULT 0 CHECK (hourly_rate >= 0),
			operating_hours TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL,
			UNIQUE (name, category)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_turfs_category ON turfs(category)`,
	}

	for i, query := range queries {
		if _, err := s.db.ExecContext(ctx, query); err != nil {
			if i == 0 {
				return fmt.Errorf("failed to migrate database: %w", err)
			}
			slog.Debug("optional migration step failed", "error", err)
		}
	}
	return nil
}
