// ABOUTME: Tests for the deterministic advisor.
// ABOUTME: Validates advice composition and insight thresholds.
package advisor

import (
	"strings"
	"testing"

	"github.com/harperreed/setuplog/internal/models"
)

func sessionAt(airTemp float64) *models.SetupSheet {
	s := &models.SetupSheet{
		Environment: models.Environment{AirTemp: models.Float(airTemp)},
	}
	s.Normalize()
	return s
}

func TestAdvice(t *testing.T) {
	s := &models.SetupSheet{
		TrackName:   "富士スピードウェイ",
		DriverNotes: models.DriverNotes{FreeText: "出口でアンダーステア"},
	}

	got := Advice(s)
	if !strings.Contains(got, "富士スピードウェイ") {
		t.Error("advice should mention the track")
	}
	if !strings.Contains(got, "出口でアンダーステア") {
		t.Error("advice should quote the driver notes")
	}

	if Advice(nil) != "" {
		t.Error("nil sheet should yield empty advice")
	}
}

func TestInsightsHotTrack(t *testing.T) {
	hot := []*models.SetupSheet{sessionAt(32), sessionAt(33), sessionAt(31)}
	insights := Insights(hot)
	if len(insights) != 1 || insights[0].Type != InsightWarning {
		t.Fatalf("expected one warning for hot sessions, got %v", insights)
	}

	mild := []*models.SetupSheet{sessionAt(24), sessionAt(25), sessionAt(26)}
	if got := Insights(mild); len(got) != 0 {
		t.Errorf("expected no insights for mild sessions, got %v", got)
	}

	// Fewer than three sessions never warns, however hot.
	few := []*models.SetupSheet{sessionAt(40), sessionAt(41)}
	if got := Insights(few); len(got) != 0 {
		t.Errorf("expected no insights for two sessions, got %v", got)
	}
}

func TestInsightsOnlyRecentFive(t *testing.T) {
	// Five mild recent sessions; a scorching sixth must not count.
	sheets := []*models.SetupSheet{
		sessionAt(20), sessionAt(20), sessionAt(20), sessionAt(20), sessionAt(20),
		sessionAt(60),
	}
	if got := Insights(sheets); len(got) != 0 {
		t.Errorf("expected older sessions to be ignored, got %v", got)
	}
}

func TestInsightsBalanceTendency(t *testing.T) {
	latest := sessionAt(20)
	u := models.BalanceUnder
	latest.DriverNotes.CornerBalance = models.CornerBalance{
		LowSpeed: models.PhaseBalance{Entry: u, Mid: u, Exit: u},
		MidSpeed: models.PhaseBalance{Entry: u, Mid: u},
	}
	latest.Normalize()

	insights := Insights([]*models.SetupSheet{latest})
	if len(insights) != 1 || insights[0].Type != InsightInfo {
		t.Fatalf("expected one info insight, got %v", insights)
	}
	if !strings.Contains(insights[0].Message, "アンダーステア") {
		t.Errorf("message = %s, want understeer notice", insights[0].Message)
	}

	o := models.BalanceOver
	latest.DriverNotes.CornerBalance = models.CornerBalance{
		LowSpeed: models.PhaseBalance{Entry: o, Mid: o, Exit: o},
		MidSpeed: models.PhaseBalance{Entry: o, Mid: o},
	}
	latest.Normalize()
	insights = Insights([]*models.SetupSheet{latest})
	if len(insights) != 1 || !strings.Contains(insights[0].Message, "オーバーステア") {
		t.Fatalf("expected oversteer notice, got %v", insights)
	}
}

func TestInsightsEmptyCollection(t *testing.T) {
	if got := Insights(nil); len(got) != 0 {
		t.Errorf("expected no insights for empty collection, got %v", got)
	}
}
