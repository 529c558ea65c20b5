package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2026, 3, 14, 18, 5, 0, 0, time.UTC)

func TestSportNowInfo(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want Details
	}{
		{
			name: "full message",
			msg:  "I'm playing basketball at 7pm in Central Park. See you there",
			want: Details{
				Sport:    "Basketball",
				Time:     "7pm",
				Location: "Central Park",
				District: "Central",
				Date:     "2026-03-14",
			},
		},
		{
			name: "multi word sport",
			msg:  "anyone up for table tennis tonight",
			want: Details{
				Sport:    "Table Tennis",
				Time:     "18:05",
				Location: UnknownLocation,
				District: UnknownDistrict,
				Date:     "2026-03-14",
			},
		},
		{
			name: "district from location",
			msg:  "Swimming from 09:30 in Mong Kok sports centre",
			want: Details{
				Sport:    "Swimming",
				Time:     "09:30",
				Location: "Mong Kok sports centre",
				District: "Mong Kok",
				Date:     "2026-03-14",
			},
		},
		{
			name: "no recognisable slots",
			msg:  "hello bot",
			want: Details{
				Sport:    UnknownSport,
				Time:     "18:05",
				Location: UnknownLocation,
				District: UnknownDistrict,
				Date:     "2026-03-14",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SportNowInfo(tt.msg, testNow)
			assert.Equal(t, tt.want.Sport, got.Sport)
			assert.Equal(t, tt.want.Location, got.Location)
			assert.Equal(t, tt.want.District, got.District)
			assert.Equal(t, tt.want.Date, got.Date)
		})
	}
}

func TestSportNowInfoTimeIndicators(t *testing.T) {
	got := SportNowInfo("running starting at 06:00 tomorrow", testNow)
	// "at " matches before "starting at " in indicator order.
	assert.Equal(t, "06:00", got.Time)

	got = SportNowInfo("badminton from 20:00", testNow)
	assert.Equal(t, "20:00", got.Time)

	got = SportNowInfo("badminton later today", testNow)
	assert.Equal(t, "18:05", got.Time)
}

func TestSportNowInfoLocationStopsAtPeriod(t *testing.T) {
	got := SportNowInfo("Tennis at Happy Valley courts. Bring rackets", testNow)
	assert.Equal(t, "Happy Valley courts", got.Location)
}

func TestSportNowInfoFirstSportWins(t *testing.T) {
	got := SportNowInfo("football or basketball, whatever", testNow)
	// List order decides: basketball precedes football.
	assert.Equal(t, "Basketball", got.Sport)
}
