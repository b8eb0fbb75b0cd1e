package helpers

import (
	"fmt"
	"time"
)

// dateLayouts are the accepted input formats for date fields, in the order
// they are tried. The dashboard submits plain dates; API clients may send
// full timestamps.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

// ParseDate parses a date or timestamp string. An empty input yields the
// zero time without error.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}
