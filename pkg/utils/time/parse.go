// ABOUTME: Time parsing utilities for timestamps returned by upstream APIs
// ABOUTME: Tries a list of layouts and normalizes the result to UTC

package time

import (
	"strings"
	"time"
)

// DefaultLayouts covers the timestamp shapes seen in Pinterest payloads.
// Layouts without a zone are read as UTC.
var DefaultLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseUTC parses value with the first matching layout. With no layouts
// given, DefaultLayouts is used.
func ParseUTC(value string, layouts ...string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	if len(layouts) == 0 {
		layouts = DefaultLayouts
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
