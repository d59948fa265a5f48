package dateutil

import (
	"errors"
	"time"
)

// DateParamLayout is the wire format for date query parameters.
const DateParamLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

// OrdinalSuffix returns the suffix for a day number (1st, 2nd, 3rd, 4th, etc.).
// Days 11-13 always take "th".
func OrdinalSuffix(day int) string {
	if day > 3 && day < 21 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// FormatDateWithOrdinal formats a date as e.g. "6th Jan 2026".
func FormatDateWithOrdinal(t time.Time) string {
	day := t.Format("2")
	return day + OrdinalSuffix(t.Day()) + t.Format(" Jan 2006")
}

// DayBounds returns the inclusive start and end of the calendar day
// containing t, in t's own location. Using the date's location rather
// than UTC keeps workouts on the right day for users near timezone edges.
func DayBounds(t time.Time) (time.Time, time.Time) {
	year, month, day := t.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	end := time.Date(year, month, day, 23, 59, 59, int(999*time.Millisecond), t.Location())
	return start, end
}

// ParseDateParam parses a YYYY-MM-DD query parameter in local time.
// An empty value defaults to the current date; anything unparseable is
// rejected rather than silently falling back.
func ParseDateParam(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}

	t, err := time.ParseInLocation(DateParamLayout, value, time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}

	return t, nil
}
