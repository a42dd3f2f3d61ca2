// ABOUTME: Tests for CLI rendering helpers.
// ABOUTME: Validates padding, truncation, and optional value formatting.
package main

import (
	"testing"

	"github.com/harperreed/setuplog/internal/models"
)

func TestTruncate(t *testing.T) {
	if got := truncate("short", 16); got != "short" {
		t.Errorf("truncate = %q, want unchanged", got)
	}
	if got := truncate("a very long session name", 10); got != "a very ..." {
		t.Errorf("truncate = %q", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 5); got != "ab   " {
		t.Errorf("padRight = %q", got)
	}
	if got := padRight("abcdef", 3); got != "abcdef" {
		t.Errorf("padRight should not cut: %q", got)
	}
}

func TestOptional(t *testing.T) {
	if got := optional(nil, "°C"); got != "-" {
		t.Errorf("optional(nil) = %q, want -", got)
	}
	if got := optional(models.Float(28), "°C"); got != "28°C" {
		t.Errorf("optional = %q, want 28°C", got)
	}
	if got := optional(models.Float(192.5), " kPa"); got != "192.5 kPa" {
		t.Errorf("optional = %q", got)
	}
}

func TestValueOrDash(t *testing.T) {
	if got := valueOrDash(""); got != "-" {
		t.Errorf("valueOrDash = %q, want -", got)
	}
	if got := valueOrDash("晴れ"); got != "晴れ" {
		t.Errorf("valueOrDash = %q", got)
	}
}
