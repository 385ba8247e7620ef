package timeutil

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// DateLayout is the calendar-date form used by query windows.
const DateLayout = "2006-01-02"

var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	DateLayout,
}

// ParseISO parses an ISO-8601 timestamp. A trailing "Z" is UTC, timestamps
// without an offset are read as UTC, and a bare date means midnight.
func ParseISO(value string) (time.Time, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid ISO-8601 timestamp %q", value)
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", value)
	}
	return t, nil
}

// ParseWindowEnd parses the upper bound of a departure window. A bare date
// covers that whole day, so it becomes the last instant before midnight.
func ParseWindowEnd(value string) (time.Time, error) {
	t, err := ParseISO(value)
	if err != nil {
		return time.Time{}, err
	}
	if _, dateErr := ParseDate(value); dateErr == nil {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}

// TransitDays is the whole number of days between two ISO timestamps,
// rounded up and never negative. Unparseable input yields 0.
func TransitDays(etd, eta string) int {
	dep, err := ParseISO(etd)
	if err != nil {
		return 0
	}
	arr, err := ParseISO(eta)
	if err != nil {
		return 0
	}
	days := math.Ceil(arr.Sub(dep).Seconds() / 86400)
	if days < 0 {
		return 0
	}
	return int(days)
}
