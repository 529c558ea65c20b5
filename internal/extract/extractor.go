// Package extract implements the rule-based fallback for pulling sport
// details out of a free-text message when the language model is unavailable
// or returns nothing usable.
package extract

import (
	"strings"
	"time"
)

// Defaults used when a slot cannot be extracted.
const (
	UnknownSport    = "Unknown Sport"
	UnknownLocation = "Unknown Location"
	UnknownDistrict = "Unknown District"
)

// Details holds the slots recognised in a message.
type Details struct {
	Sport    string
	Time     string
	Location string
	District string
	Date     string
}

var commonSports = []string{
	"basketball", "football", "soccer", "tennis", "badminton",
	"running", "swimming", "volleyball", "table tennis",
}

var timeIndicators = []string{"at ", "from ", "starting at ", "begin at "}

var locationIndicators = []string{" in ", " at "}

var knownDistricts = []string{
	"central", "wan chai", "causeway bay", "north point",
	"tsim sha tsui", "mong kok", "sham shui po", "sha tin",
	"tai po", "tuen mun",
}

// SportNowInfo extracts sport, time, location and district from a message.
// Unrecognised slots fall back to defaults; time defaults to the current
// clock reading and date to today.
func SportNowInfo(message string, now time.Time) Details {
	info := Details{
		Sport:    UnknownSport,
		Time:     now.Format("15:04"),
		Location: UnknownLocation,
		District: UnknownDistrict,
		Date:     now.Format("2006-01-02"),
	}

	lower := strings.ToLower(message)

	for _, sport := range commonSports {
		if strings.Contains(lower, sport) {
			info.Sport = titleCase(sport)
			break
		}
	}

	for _, indicator := range timeIndicators {
		if idx := strings.Index(lower, indicator); idx >= 0 {
			rest := lower[idx+len(indicator):]
			if fields := strings.Fields(rest); len(fields) > 0 {
				info.Time = fields[0]
				break
			}
		}
	}

	for _, indicator := range locationIndicators {
		if idx := strings.Index(message, indicator); idx >= 0 {
			rest := message[idx+len(indicator):]
			// Take the location up to the first period.
			if dot := strings.Index(rest, "."); dot >= 0 {
				rest = rest[:dot]
			}
			info.Location = strings.TrimSpace(rest)
			break
		}
	}

	locationLower := strings.ToLower(info.Location)
	for _, district := range knownDistricts {
		if strings.Contains(locationLower, district) {
			info.District = titleCase(district)
			break
		}
	}

	return info
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
