package activity

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"log/slog"

	"github.com/hksports/sportsbuddy/core/logger"
)

// Store is the persistence boundary the service depends on.
type Store interface {
	Insert(ctx context.Context, rec Record) error
	All(ctx context.Context) ([]Record, error)
	FindByDate(ctx context.Context, date string) ([]Record, error)
	Stats(ctx context.Context, today string) (Stats, error)
	Name() string
}

// maxBuddyMatches caps the number of matches shown for a buddy search.
const maxBuddyMatches = 3

// Service implements activity registration, buddy search and statistics.
type Service struct {
	store Store
	now   func() time.Time
}

// NewService builds a Service on top of the given store.
func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// WithClock overrides the time source, used by tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Backend reports the name of the underlying store.
func (s *Service) Backend() string {
	return s.store.Name()
}

// Save assigns an ID and creation time, fills a missing district, and persists the record.
func (s *Service) Save(ctx context.Context, rec Record) (Record, error) {
	rec.ID = uuid.NewString()
	rec.CreatedAt = s.now()
	if strings.TrimSpace(rec.Date) == "" {
		rec.Date = s.now().Format(DateLayout)
	}
	if strings.TrimSpace(rec.District) == "" {
		rec.District = UnknownDistrict
	}

	if err := s.store.Insert(ctx, rec); err != nil {
		logger.DB.Error("save activity failed",
			slog.String("event", "activity.save"),
			slog.String("sport", rec.Sport),
			slog.String("err", err.Error()),
		)
		return Record{}, err
	}

	logger.DB.Info("activity saved",
		slog.String("event", "activity.save"),
		slog.String("sport", rec.Sport),
		slog.String("district", rec.District),
		slog.String("backend", s.store.Name()),
	)
	return rec, nil
}

// FindToday returns activities registered for the current date, optionally
// narrowed by exact sport and district match. Read failures degrade to an
// empty list so a broken store never breaks the conversation.
func (s *Service) FindToday(ctx context.Context, sport, district string) []Record {
	recs, err := s.store.FindByDate(ctx, s.now().Format(DateLayout))
	if err != nil {
		logger.DB.Error("find today failed",
			slog.String("event", "activity.find_today"),
			slog.String("err", err.Error()),
		)
		return nil
	}
	var out []Record
	for _, rec := range recs {
		if sport != "" && !strings.EqualFold(rec.Sport, sport) {
			continue
		}
		if district != "" && !strings.EqualFold(rec.District, district) {
			continue
		}
		// Storage IDs are internal; callers only see the announcement.
		rec.ID = ""
		out = append(out, rec)
	}
	return out
}

// FindBuddies searches for people playing the given sport, optionally narrowed
// by district. Exact sport matches win over substring matches; a district
// filter that would empty the result set is ignored. Matches are capped and
// accompanied by per-location player counts. Like all reads, failures degrade
// to empty results.
func (s *Service) FindBuddies(ctx context.Context, sport, district string) ([]Record, map[string]int) {
	all, err := s.store.All(ctx)
	if err != nil {
		logger.DB.Error("buddy search failed",
			slog.String("event", "activity.find_buddies"),
			slog.String("err", err.Error()),
		)
		return nil, map[string]int{}
	}

	sportLower := strings.ToLower(strings.TrimSpace(sport))

	var exact, partial []Record
	for _, rec := range all {
		recSport := strings.ToLower(rec.Sport)
		if recSport == sportLower {
			exact = append(exact, rec)
		} else if sportLower != "" && strings.Contains(recSport, sportLower) {
			partial = append(partial, rec)
		}
	}
	matches := exact
	if len(matches) == 0 {
		matches = partial
	}

	districtLower := strings.ToLower(strings.TrimSpace(district))
	if districtLower != "" && districtLower != "unknown" {
		var narrowed []Record
		for _, rec := range matches {
			if strings.Contains(strings.ToLower(rec.District), districtLower) {
				narrowed = append(narrowed, rec)
			}
		}
		if len(narrowed) > 0 {
			matches = narrowed
		}
	}

	if len(matches) > maxBuddyMatches {
		matches = matches[:maxBuddyMatches]
	}
	for i := range matches {
		matches[i].ID = ""
	}

	counts := make(map[string]int)
	for _, rec := range matches {
		loc := rec.Location
		if loc == "" {
			loc = "Unknown location"
		}
		counts[loc]++
	}

	logger.DB.Info("buddy search",
		slog.String("event", "activity.find_buddies"),
		slog.String("sport", sport),
		slog.String("district", district),
		slog.Int("matches", len(matches)),
	)
	return matches, counts
}

// ActivityStats aggregates totals for the /stats command.
// A failed read yields zeroed stats.
func (s *Service) ActivityStats(ctx context.Context) Stats {
	stats, err := s.store.Stats(ctx, s.now().Format(DateLayout))
	if err != nil {
		logger.DB.Error("stats failed",
			slog.String("event", "activity.stats"),
			slog.String("err", err.Error()),
		)
		return Stats{}
	}
	return stats
}

// TopCounts returns up to n entries of the map sorted by descending count.
// Ties are broken alphabetically to keep output stable.
func TopCounts(counts map[string]int, n int) []struct {
	Key   string
	Count int
} {
	type kv = struct {
		Key   string
		Count int
	}
	out := make([]kv, 0, len(counts))
	for k, v := range counts {
		out = append(out, kv{Key: k, Count: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
