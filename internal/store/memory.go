package store

import (
	"context"
	"sync"

	"github.com/hksports/sportsbuddy/internal/activity"
)

// Memory is an in-memory Backend used when no database is reachable.
// Records do not survive restarts.
type Memory struct {
	mu      sync.RWMutex
	records []activity.Record
}

// NewMemory constructs an empty in-memory backend.
func NewMemory() *Memory {
	return &Memory{}
}

// Insert appends the record.
func (m *Memory) Insert(_ context.Context, rec activity.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, rec)
	return nil
}

// All returns a copy of every stored record in insertion order.
func (m *Memory) All(_ context.Context) ([]activity.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]activity.Record, len(m.records))
	copy(out, m.records)
	return out, nil
}

// FindByDate returns records registered for the given date.
func (m *Memory) FindByDate(_ context.Context, date string) ([]activity.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []activity.Record
	for _, rec := range m.records {
		if rec.Date == date {
			out = append(out, rec)
		}
	}
	return out, nil
}

// Stats aggregates counts over all stored records.
func (m *Memory) Stats(_ context.Context, today string) (activity.Stats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := activity.Stats{
		Total:     len(m.records),
		Sports:    make(map[string]int),
		Districts: make(map[string]int),
	}
	for _, rec := range m.records {
		stats.Sports[rec.Sport]++
		stats.Districts[rec.District]++
		if rec.Date == today {
			stats.TodayCount++
		}
	}
	return stats, nil
}

// Name identifies the backend kind.
func (m *Memory) Name() string { return "memory" }

// Close is a no-op for the in-memory backend.
func (m *Memory) Close() error { return nil }
