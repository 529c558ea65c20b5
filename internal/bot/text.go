package bot

import (
	"fmt"
	"strings"
	"time"

	"log/slog"

	"github.com/hksports/sportsbuddy/core/logger"
	tghelpers "github.com/hksports/sportsbuddy/core/telegram/helpers"
	"github.com/hksports/sportsbuddy/internal/dialog"
	"github.com/hksports/sportsbuddy/internal/extract"
	"github.com/hksports/sportsbuddy/internal/intent"

	tele "gopkg.in/telebot.v4"
)

// handleFreeText routes messages outside an active dialogue: the classifier
// picks an intent and the message either starts a registration, runs a buddy
// search, or gets a general answer.
func (a *App) handleFreeText(c tele.Context) error {
	message := c.Text()
	ctx := tghelpers.BuildContext(c)

	res := a.classifier.Classify(ctx, message)

	switch res.Intent {
	case intent.SportNow:
		return a.startFromIntent(c, message, res.Extracted)
	case intent.FindBuddy:
		return a.findBuddiesFromText(c, message)
	default:
		return tghelpers.SendText(c, a.classifier.Answer(ctx, message))
	}
}

// startFromIntent begins a registration dialogue seeded with whatever slots
// the classifier extracted. A sport missing from the extraction is recovered
// by scanning the message for known sports.
func (a *App) startFromIntent(c tele.Context, message string, ext intent.Extracted) error {
	sport := ext.Sport
	if sport == "" {
		lower := strings.ToLower(message)
		for _, known := range dialog.CommonSports {
			if strings.Contains(lower, strings.ToLower(known)) {
				sport = known
				break
			}
		}
	}

	a.sessions.Start(c.Sender().ID, firstName(c), dialog.Prefill{
		Sport:    sport,
		Location: ext.Location,
		Time:     ext.Time,
	})

	logger.Dialog.Info("dialogue started from intent",
		slog.String("event", "dialog.start_from_intent"),
		slog.String("sport", sport),
	)

	prompt := fmt.Sprintf(
		"I see you want to play sports! What name would you like to use?\n"+
			"I'll use your Telegram name (%s) by default, but you can provide a different name if you prefer.",
		firstName(c))
	return tghelpers.SendText(c, prompt)
}

// findBuddiesFromText runs a buddy search narrowed by whatever sport and
// district the rule-based extractor can pull out of the message. With no
// recognisable sport it falls back to listing today's activities.
func (a *App) findBuddiesFromText(c tele.Context, message string) error {
	ctx := tghelpers.BuildContext(c)
	details := extract.SportNowInfo(message, time.Now())

	if details.Sport == extract.UnknownSport {
		return a.handleFindSportBuddy(c)
	}

	district := details.District
	if district == extract.UnknownDistrict {
		district = ""
	}

	matches, counts := a.activities.FindBuddies(ctx, details.Sport, district)
	return tghelpers.SendText(c, renderMatches(details.Sport, matches, counts))
}
