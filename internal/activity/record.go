package activity

import "time"

// DateLayout is the wire format for activity dates.
const DateLayout = "2006-01-02"

// UnknownDistrict marks records registered without a recognised district.
const UnknownDistrict = "Unknown"

// Record describes a single registered sport activity.
type Record struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Sport     string    `db:"sport"`
	Location  string    `db:"location"`
	District  string    `db:"district"`
	Time      string    `db:"play_time"`
	Date      string    `db:"play_date"`
	CreatedAt time.Time `db:"created_at"`
}

// Stats aggregates recorded activities for the /stats command.
type Stats struct {
	Total      int
	TodayCount int
	Sports     map[string]int
	Districts  map[string]int
}
