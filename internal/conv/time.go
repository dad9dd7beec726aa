package conv

import (
	"fmt"
	"time"
)

// timeLayout is the single on-wire representation for timestamps.
const timeLayout = time.RFC3339Nano

// FormatTime renders t in the canonical wire form (RFC 3339, UTC).
func FormatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// FormatTimePtr renders t, or returns "" for nil.
func FormatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return FormatTime(*t)
}

// ParseTime parses a canonical wire timestamp. It accepts any RFC 3339
// string, with or without fractional seconds.
func ParseTime(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", value, err)
	}
	return t, nil
}

// ParseTimePtr parses value into a *time.Time, mapping "" to nil.
func ParseTimePtr(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := ParseTime(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
