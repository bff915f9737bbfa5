package mocks

import (
	"context"

	"turfzone/internal/turf"

	"github.com/stretchr/testify/mock"
)

// MockTurfRepository is a testify mock of turf.Repository.
type MockTurfRepository struct {
	mock.Mock
}

func (m *MockTurfRepository) ListByCategory(ctx context.Context, category string) ([]turf.Turf, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]turf.Turf), args.Error(1)
}

// StaticTurfRepository serves a fixed set of turfs filtered by category,
// in insertion order.
type StaticTurfRepository struct {
	Turfs []turf.Turf
	Err   error
	Calls []string
}

func (r *StaticTurfRepository) ListByCategory(ctx context.Context, category string) ([]turf.Turf, error) {
	r.Calls = append(r.Calls, category)
	if r.Err != nil {
		return nil, r.Err
	}
	var out []turf.Turf
	for _, t := range r.Turfs {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out, nil
}
