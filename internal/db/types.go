package db

import (
	"context"

	"turfzone/internal/turf"
)

// Store is the relational turf store. The application core only reads
// through turf.Repository; Seed exists for the seed command.
type Store interface {
	turf.Repository
	Seed(ctx context.Context, turfs []turf.Turf) (int64, error)
	Ping(ctx context.Context) error
	Close() error
}
