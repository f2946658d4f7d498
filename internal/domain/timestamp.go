package domain

import (
	"fmt"
	"time"
)

// timestampLayout matches naive UTC ISO-8601 with microseconds, the format
// existing session records were written with.
const timestampLayout = "2006-01-02T15:04:05.000000"

// FormatTimestamp renders t as a naive UTC ISO-8601 string.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// ParseTimestamp accepts RFC 3339 timestamps and naive ISO-8601 ones, which are read as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return t, nil
}
