package activity_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hksports/sportsbuddy/core/logger"
	"github.com/hksports/sportsbuddy/internal/activity"
	"github.com/hksports/sportsbuddy/internal/store"
)

func TestMain(m *testing.M) {
	_ = logger.InitLogger(nil)
	os.Exit(m.Run())
}

var testNow = time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)

func newTestService() *activity.Service {
	return activity.NewService(store.NewMemory()).WithClock(func() time.Time { return testNow })
}

func save(t *testing.T, svc *activity.Service, name, sport, location, district string) activity.Record {
	t.Helper()
	rec, err := svc.Save(context.Background(), activity.Record{
		Name:     name,
		Sport:    sport,
		Location: location,
		District: district,
		Time:     "18:30",
	})
	require.NoError(t, err)
	return rec
}

func TestSaveFillsDefaults(t *testing.T) {
	svc := newTestService()

	rec, err := svc.Save(context.Background(), activity.Record{
		Name:  "Bob",
		Sport: "Tennis",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, activity.UnknownDistrict, rec.District)
	assert.Equal(t, "2026-03-14", rec.Date)
	assert.Equal(t, testNow, rec.CreatedAt)
}

func TestFindTodayFiltersByDate(t *testing.T) {
	svc := newTestService()
	save(t, svc, "Bob", "Tennis", "Victoria Park", "Wan Chai")

	assert.Len(t, svc.FindToday(context.Background(), "", ""), 1)
}

func TestFindTodayOptionalFilters(t *testing.T) {
	svc := newTestService()
	save(t, svc, "Bob", "Tennis", "Victoria Park", "Wan Chai")
	save(t, svc, "Kim", "Running", "Bowen Road", "Wan Chai")

	results := svc.FindToday(context.Background(), "tennis", "")
	require.Len(t, results, 1)
	assert.Equal(t, "Bob", results[0].Name)

	results = svc.FindToday(context.Background(), "", "Wan Chai")
	assert.Len(t, results, 2)

	assert.Empty(t, svc.FindToday(context.Background(), "Tennis", "Eastern"))
}

func TestFindBuddiesExactBeatsPartial(t *testing.T) {
	svc := newTestService()
	save(t, svc, "Bob", "Basketball", "Victoria Park", "Wan Chai")
	save(t, svc, "Kim", "Beach Basketball", "Repulse Bay", "Southern")

	matches, _ := svc.FindBuddies(context.Background(), "basketball", "")
	require.Len(t, matches, 1)
	assert.Equal(t, "Bob", matches[0].Name)
}

func TestFindBuddiesPartialFallback(t *testing.T) {
	svc := newTestService()
	save(t, svc, "Kim", "Beach Basketball", "Repulse Bay", "Southern")

	matches, _ := svc.FindBuddies(context.Background(), "basketball", "")
	require.Len(t, matches, 1)
	assert.Equal(t, "Kim", matches[0].Name)
}

func TestFindBuddiesDistrictNarrowing(t *testing.T) {
	svc := newTestService()
	save(t, svc, "Bob", "Tennis", "Victoria Park", "Wan Chai")
	save(t, svc, "Kim", "Tennis", "Kowloon Park", "Yau Tsim Mong")

	matches, _ := svc.FindBuddies(context.Background(), "tennis", "wan chai")
	require.Len(t, matches, 1)
	assert.Equal(t, "Bob", matches[0].Name)
}

func TestFindBuddiesDistrictFilterDiscardedWhenEmpty(t *testing.T) {
	svc := newTestService()
	save(t, svc, "Bob", "Tennis", "Victoria Park", "Wan Chai")

	// A district with no hits should not hide the sport matches.
	matches, _ := svc.FindBuddies(context.Background(), "tennis", "Sha Tin")
	assert.Len(t, matches, 1)
}

func TestFindBuddiesUnknownDistrictIgnored(t *testing.T) {
	svc := newTestService()
	save(t, svc, "Bob", "Basketball", "Victoria Park", "Wan Chai")
	save(t, svc, "Kim", "Basketball", "Kowloon Park", "Yau Tsim Mong")

	matches, _ := svc.FindBuddies(context.Background(), "Basketball", activity.UnknownDistrict)
	assert.Len(t, matches, 2)
}

func TestFindBuddiesNoMatches(t *testing.T) {
	svc := newTestService()
	save(t, svc, "Bob", "Tennis", "Victoria Park", "Wan Chai")

	matches, counts := svc.FindBuddies(context.Background(), "curling", "")
	assert.Empty(t, matches)
	assert.Empty(t, counts)
}

func TestFindBuddiesCapAndLocationCounts(t *testing.T) {
	svc := newTestService()
	save(t, svc, "A", "Running", "Bowen Road", "Wan Chai")
	save(t, svc, "B", "Running", "Bowen Road", "Wan Chai")
	save(t, svc, "C", "Running", "Tai Po Waterfront", "Tai Po")
	save(t, svc, "D", "Running", "Victoria Park", "Wan Chai")

	matches, counts := svc.FindBuddies(context.Background(), "running", "")
	assert.Len(t, matches, 3)
	assert.Equal(t, map[string]int{
		"Bowen Road":        2,
		"Tai Po Waterfront": 1,
	}, counts)
}

func TestActivityStats(t *testing.T) {
	svc := newTestService()
	save(t, svc, "Bob", "Tennis", "Victoria Park", "Wan Chai")
	save(t, svc, "Kim", "Tennis", "Kowloon Park", "Yau Tsim Mong")
	save(t, svc, "Lee", "Running", "Bowen Road", "Wan Chai")

	stats := svc.ActivityStats(context.Background())
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 3, stats.TodayCount)
	assert.Equal(t, 2, stats.Sports["Tennis"])
	assert.Equal(t, 2, stats.Districts["Wan Chai"])
}

type failingStore struct{}

func (failingStore) Insert(context.Context, activity.Record) error { return errors.New("store down") }
func (failingStore) All(context.Context) ([]activity.Record, error) {
	return nil, errors.New("store down")
}
func (failingStore) FindByDate(context.Context, string) ([]activity.Record, error) {
	return nil, errors.New("store down")
}
func (failingStore) Stats(context.Context, string) (activity.Stats, error) {
	return activity.Stats{}, errors.New("store down")
}
func (failingStore) Name() string { return "failing" }

func TestReadsDegradeToEmptyOnStoreFailure(t *testing.T) {
	svc := activity.NewService(failingStore{})

	assert.Empty(t, svc.FindToday(context.Background(), "", ""))

	matches, counts := svc.FindBuddies(context.Background(), "tennis", "")
	assert.Empty(t, matches)
	assert.Empty(t, counts)

	stats := svc.ActivityStats(context.Background())
	assert.Zero(t, stats.Total)
}

func TestTopCounts(t *testing.T) {
	top := activity.TopCounts(map[string]int{
		"Tennis": 2, "Running": 5, "Badminton": 2, "Swimming": 1,
	}, 3)

	require.Len(t, top, 3)
	assert.Equal(t, "Running", top[0].Key)
	// Ties break alphabetically.
	assert.Equal(t, "Badminton", top[1].Key)
	assert.Equal(t, "Tennis", top[2].Key)
}
