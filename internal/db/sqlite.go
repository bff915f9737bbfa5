package db

import (
	"context"
	"fmt"

	apperrors "turfzone/internal/errors"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore implements Store using SQLite
type SQLiteStore struct {
	*sqlStore
}

// NewSQLiteStore prepares a store for the database file at path. The file
// is opened, and the turfs table created, on first use.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := openSQL("sqlite", path)
	if err != nil {
		return nil, apperrors.NewStoreError("open", fmt.Errorf("failed to open database: %w", err))
	}

	store := &SQLiteStore{sqlStore: newSQLStore(db)}
	store.sqlStore.migrate = store.createSchema
	return store, nil
}

func (s *SQLiteStore) createSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS turfs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		address TEXT NOT NULL DEFAULT '',
		hourly_rate NUMERIC NOT NULL DEFAULT 0 CHECK (hourly_rate >= 0),
		operating_hours TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL,
		UNIQUE (name, category)
	);
	CREATE INDEX IF NOT EXISTS idx_turfs_category ON turfs(category);
	`
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
