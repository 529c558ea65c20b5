package bot

import (
	"fmt"
	"strings"

	"github.com/hksports/sportsbuddy/core/telegram/format"
	"github.com/hksports/sportsbuddy/internal/activity"
)

func renderTodayList(results []activity.Record) string {
	if len(results) == 0 {
		return "Sorry, I couldn't find anyone playing sports right now. Be the first by using /sport_now!"
	}

	var b strings.Builder
	b.WriteString("Here are people playing sports today:\n\n")
	for _, rec := range results {
		fmt.Fprintf(&b, "- %s is playing %s at %s in %s (%s)\n\n",
			rec.Name, rec.Sport, rec.Time, rec.Location, rec.District)
	}
	b.WriteString("Send them a message to join!")
	return b.String()
}

func renderMatches(sport string, matches []activity.Record, counts map[string]int) string {
	if len(matches) == 0 {
		return fmt.Sprintf(
			"I couldn't find anyone playing %s right now. Try registering yourself with /sport_now so others can find you!",
			sport)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Here are people playing %s:\n\n", sport)
	for _, rec := range matches {
		fmt.Fprintf(&b, "• %s is playing %s at %s in %s, %s\n",
			rec.Name, rec.Sport, rec.Time, rec.Location, rec.District)
	}

	b.WriteString("\nPlayer count by location:\n")
	for _, entry := range activity.TopCounts(counts, len(counts)) {
		fmt.Fprintf(&b, "• %s: %d player(s)\n", entry.Key, entry.Count)
	}
	return b.String()
}

func renderStats(stats activity.Stats) string {
	var b strings.Builder
	b.WriteString("📊 *Sports Activity Statistics*\n\n")
	fmt.Fprintf(&b, "Total activities recorded: %d\n", stats.Total)
	fmt.Fprintf(&b, "Activities today: %d\n\n", stats.TodayCount)

	if len(stats.Sports) > 0 {
		b.WriteString("*Most popular sports:*\n")
		for _, entry := range activity.TopCounts(stats.Sports, 5) {
			// Sport names can be user-typed via the "Other" escape.
			fmt.Fprintf(&b, "- %s: %d activities\n", format.EscapeMD(entry.Key), entry.Count)
		}
		b.WriteString("\n")
	}

	if len(stats.Districts) > 0 {
		b.WriteString("*Most active districts:*\n")
		for _, entry := range activity.TopCounts(stats.Districts, 5) {
			fmt.Fprintf(&b, "- %s: %d activities\n", format.EscapeMD(entry.Key), entry.Count)
		}
	}
	return b.String()
}
