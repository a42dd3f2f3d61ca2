// ABOUTME: Locale-aware date/time rendering shared by every display surface.
// ABOUTME: All views render sheet timestamps identically through DateTime.
package format

import (
	"fmt"
	"time"
)

const (
	// StorageLayout is the minute-precision wall-clock format sheets store.
	StorageLayout = "2006-01-02T15:04"
	// DisplayLayout is the ja-JP display format.
	DisplayLayout = "2006/01/02 15:04"
)

// parseLayouts are the accepted input formats, most specific first.
var parseLayouts = []string{
	StorageLayout,
	"2006-01-02 15:04",
	"2006-01-02",
	time.RFC3339,
}

// ParseDateTime parses a sheet timestamp or user-supplied time string.
func ParseDateTime(s string) (time.Time, error) {
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format: %q", s)
}

// DateTime renders a stored timestamp for display as YYYY/MM/DD HH:mm.
// Empty input renders empty; unparseable input is passed through so bad
// data stays visible rather than vanishing.
func DateTime(s string) string {
	if s == "" {
		return ""
	}
	t, err := ParseDateTime(s)
	if err != nil {
		return s
	}
	return t.Format(DisplayLayout)
}

// NowMinute returns the current local wall-clock truncated to the minute,
// in storage format.
func NowMinute() string {
	return time.Now().Format(StorageLayout)
}
