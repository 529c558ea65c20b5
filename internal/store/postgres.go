package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/hksports/sportsbuddy/internal/activity"
)

// Postgres stores activity records in the activities table.
type Postgres struct {
	db *sqlx.DB
}

// NewPostgres wraps an established sqlx connection.
func NewPostgres(db *sqlx.DB) *Postgres {
	return &Postgres{db: db}
}

const insertActivity = `
INSERT INTO activities (id, name, sport, location, district, play_time, play_date, created_at)
VALUES (:id, :name, :sport, :location, :district, :play_time, :play_date, :created_at)`

// Insert persists the record.
func (p *Postgres) Insert(ctx context.Context, rec activity.Record) error {
	if _, err := p.db.NamedExecContext(ctx, insertActivity, rec); err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

const selectAll = `
SELECT id, name, sport, location, district, play_time, to_char(play_date, 'YYYY-MM-DD') AS play_date, created_at
FROM activities ORDER BY created_at`

// All returns every stored record ordered by creation time.
func (p *Postgres) All(ctx context.Context) ([]activity.Record, error) {
	var out []activity.Record
	if err := p.db.SelectContext(ctx, &out, selectAll); err != nil {
		return nil, fmt.Errorf("select activities: %w", err)
	}
	return out, nil
}

const selectByDate = `
SELECT id, name, sport, location, district, play_time, to_char(play_date, 'YYYY-MM-DD') AS play_date, created_at
FROM activities WHERE play_date = $1 ORDER BY created_at`

// FindByDate returns records registered for the given date.
func (p *Postgres) FindByDate(ctx context.Context, date string) ([]activity.Record, error) {
	var out []activity.Record
	if err := p.db.SelectContext(ctx, &out, selectByDate, date); err != nil {
		return nil, fmt.Errorf("select activities by date: %w", err)
	}
	return out, nil
}

// Stats aggregates totals and per-sport/per-district counts.
func (p *Postgres) Stats(ctx context.Context, today string) (activity.Stats, error) {
	stats := activity.Stats{
		Sports:    make(map[string]int),
		Districts: make(map[string]int),
	}

	if err := p.db.GetContext(ctx, &stats.Total, `SELECT count(*) FROM activities`); err != nil {
		return stats, fmt.Errorf("count activities: %w", err)
	}
	if err := p.db.GetContext(ctx, &stats.TodayCount, `SELECT count(*) FROM activities WHERE play_date = $1`, today); err != nil {
		return stats, fmt.Errorf("count today activities: %w", err)
	}

	type bucket struct {
		Key   string `db:"key"`
		Count int    `db:"count"`
	}

	var sports []bucket
	if err := p.db.SelectContext(ctx, &sports, `SELECT sport AS key, count(*) AS count FROM activities GROUP BY sport`); err != nil {
		return stats, fmt.Errorf("count by sport: %w", err)
	}
	for _, b := range sports {
		stats.Sports[b.Key] = b.Count
	}

	var districts []bucket
	if err := p.db.SelectContext(ctx, &districts, `SELECT district AS key, count(*) AS count FROM activities GROUP BY district`); err != nil {
		return stats, fmt.Errorf("count by district: %w", err)
	}
	for _, b := range districts {
		stats.Districts[b.Key] = b.Count
	}

	return stats, nil
}

// Name identifies the backend kind.
func (p *Postgres) Name() string { return "postgres" }

// Close closes the underlying connection pool.
func (p *Postgres) Close() error { return p.db.Close() }
