package store

import (
	"context"

	"github.com/hksports/sportsbuddy/internal/activity"
)

// Backend abstracts the activity document store. Two implementations exist:
// a postgres-backed store and an in-memory fallback used when no database
// host is configured or the connection fails at startup.
type Backend interface {
	// Insert persists a fully populated record.
	Insert(ctx context.Context, rec activity.Record) error
	// All returns every stored record in insertion order.
	All(ctx context.Context) ([]activity.Record, error)
	// FindByDate returns records registered for the given date (activity.DateLayout).
	FindByDate(ctx context.Context, date string) ([]activity.Record, error)
	// Stats aggregates totals and per-sport/per-district counts.
	Stats(ctx context.Context, today string) (activity.Stats, error)
	// Name identifies the backend kind for logging.
	Name() string
	// Close releases held resources.
	Close() error
}
