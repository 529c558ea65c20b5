package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hksports/sportsbuddy/internal/activity"
)

func TestMemoryInsertAndAll(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Insert(ctx, activity.Record{ID: "1", Sport: "Tennis", Date: "2026-03-14"}))
	require.NoError(t, m.Insert(ctx, activity.Record{ID: "2", Sport: "Running", Date: "2026-03-15"}))

	all, err := m.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "1", all[0].ID)

	// Mutating the returned slice must not affect the store.
	all[0].Sport = "Chess"
	again, err := m.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Tennis", again[0].Sport)
}

func TestMemoryFindByDate(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	require.NoError(t, m.Insert(ctx, activity.Record{ID: "1", Date: "2026-03-14"}))
	require.NoError(t, m.Insert(ctx, activity.Record{ID: "2", Date: "2026-03-15"}))

	got, err := m.FindByDate(ctx, "2026-03-15")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestMemoryStats(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	require.NoError(t, m.Insert(ctx, activity.Record{Sport: "Tennis", District: "Wan Chai", Date: "2026-03-14"}))
	require.NoError(t, m.Insert(ctx, activity.Record{Sport: "Tennis", District: "Eastern", Date: "2026-03-13"}))

	stats, err := m.Stats(ctx, "2026-03-14")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.TodayCount)
	assert.Equal(t, 2, stats.Sports["Tennis"])
	assert.Equal(t, 1, stats.Districts["Wan Chai"])
}
