package types

import (
	"fmt"
	"time"
)

// Timestamp layouts observed in stored records. Values with an explicit
// offset (or trailing "Z", meaning UTC) come first; timezone-naive values
// are taken as UTC.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseTime parses a stored timestamp and normalizes it to UTC so that
// aware and naive values compare against the same clock.
func ParseTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp: %q", s)
}
