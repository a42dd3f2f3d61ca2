// ABOUTME: Tests for date/time parsing and display rendering.
// ABOUTME: Validates accepted layouts and the pass-through rule for bad data.
package format

import (
	"testing"
	"time"
)

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2024-07-15T13:00", time.Date(2024, 7, 15, 13, 0, 0, 0, time.UTC)},
		{"2024-07-15 13:00", time.Date(2024, 7, 15, 13, 0, 0, 0, time.UTC)},
		{"2024-07-15", time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		got, err := ParseDateTime(tt.input)
		if err != nil {
			t.Errorf("ParseDateTime(%q) failed: %v", tt.input, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseDateTime(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}

	if _, err := ParseDateTime("next tuesday"); err == nil {
		t.Error("expected error for unrecognized format")
	}
}

func TestDateTime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"storage format", "2024-07-15T13:00", "2024/07/15 13:00"},
		{"date only", "2024-07-16", "2024/07/16 00:00"},
		{"empty stays empty", "", ""},
		{"unparseable passes through", "garbage", "garbage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DateTime(tt.input); got != tt.want {
				t.Errorf("DateTime(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNowMinute(t *testing.T) {
	got := NowMinute()
	if _, err := time.Parse(StorageLayout, got); err != nil {
		t.Errorf("NowMinute() = %q, not in storage layout: %v", got, err)
	}
}
