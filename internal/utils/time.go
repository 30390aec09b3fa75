package utils

import (
	"time"

	"github.com/julianstephens/stillday/internal/constants"
)

// DayKey returns the date key (YYYY-MM-DD) for the given instant. Keys are
// formatted in UTC so that "today" and "tomorrow" stay consistent with the
// fixed-offset arithmetic in NextDayKey across DST transitions.
func DayKey(t time.Time) string {
	return t.UTC().Format(constants.DateFormat)
}

// NextDayKey returns the date key one day after the given instant. The
// offset is a fixed 86,400,000 ms, not calendar-day arithmetic; combined
// with UTC formatting this always lands on the next UTC day.
func NextDayKey(t time.Time) string {
	return DayKey(t.Add(24 * time.Hour))
}

// ParseDayKey parses a date key, reporting whether it is well-formed.
func ParseDayKey(key string) (time.Time, error) {
	return time.Parse(constants.DateFormat, key)
}

// ValidDayKey reports whether the string is a well-formed date key.
func ValidDayKey(key string) bool {
	_, err := ParseDayKey(key)
	return err == nil
}
