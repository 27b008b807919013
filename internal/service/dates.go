package service

import (
	"strings"
	"time"
)

// NotProvided is the placeholder the sheet uses for missing values.
const NotProvided = "N/A"

// The sheet publishes dates as dd/mm/yyyy; ISO values occasionally leak in
// from manual edits. The Brazilian layout is tried first because a value
// like 05/01/2025 is ambiguous and the feed is day-first.
var dateLayouts = []string{
	"02/01/2006",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate interprets a date cell from the sheet. ok is false for empty
// cells, the N/A placeholder, and anything that is not a real calendar date
// in one of the accepted layouts.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == NotProvided {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DaysBetween returns the signed number of calendar days from start to end.
// An empty end means "now". ok is false when either side does not parse.
// Negative results are meaningful: for an expected delivery date they mean
// the date has already passed.
func DaysBetween(start, end string, now time.Time) (int, bool) {
	from, ok := ParseDate(start)
	if !ok {
		return 0, false
	}
	to := now
	if end != "" {
		if to, ok = ParseDate(end); !ok {
			return 0, false
		}
	}
	return daysApart(from, to), true
}

// daysApart truncates both instants to their calendar day before
// subtracting, so time of day never shifts the count.
func daysApart(from, to time.Time) int {
	from = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	to = time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}
