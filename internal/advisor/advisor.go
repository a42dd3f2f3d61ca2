// ABOUTME: Deterministic setup advice and fleet insights.
// ABOUTME: Placeholder advisor; no external AI service is involved.
package advisor

import (
	"fmt"

	"github.com/harperreed/setuplog/internal/metrics"
	"github.com/harperreed/setuplog/internal/models"
)

// minInsightSessions is how many recent sessions the temperature insight
// needs before it says anything.
const minInsightSessions = 3

// hotTrackThreshold is the mean recent air temperature (°C) above which
// the hot-track warning fires.
const hotTrackThreshold = 30.0

// Advice builds the canned setup suggestion for a sheet from its track
// and the driver's free-text notes.
func Advice(sheet *models.SetupSheet) string {
	if sheet == nil {
		return ""
	}
	return fmt.Sprintf(
		"%sの特性と、ドライバーメモの「%s」を考慮すると、フロントのスタビライザーを一段階柔らかくすることで、ターンイン時のアンダーステアが改善される可能性があります。",
		sheet.TrackName, sheet.DriverNotes.FreeText)
}

// InsightType distinguishes warnings from advisory notices.
type InsightType string

const (
	InsightWarning InsightType = "warning"
	InsightInfo    InsightType = "info"
)

// Insight is one observation over the recent session history.
type Insight struct {
	Type    InsightType
	Message string
}

// Insights analyzes the collection (most recent first) and returns
// performance observations: a hot-track warning over the last five
// sessions and a balance tendency notice for the latest one.
func Insights(sheets []*models.SetupSheet) []Insight {
	var insights []Insight

	recent := sheets
	if len(recent) > 5 {
		recent = recent[:5]
	}
	var temps []float64
	for _, s := range recent {
		if s.Environment.AirTemp != nil {
			temps = append(temps, *s.Environment.AirTemp)
		} else {
			temps = append(temps, 0)
		}
	}
	if stats := metrics.SeriesStats(temps); stats.Count >= minInsightSessions && stats.Mean > hotTrackThreshold {
		insights = append(insights, Insight{
			Type:    InsightWarning,
			Message: "高温環境でのセッションが続いています。タイヤ圧の調整を検討してください。",
		})
	}

	if len(sheets) > 0 {
		summary := metrics.CornerBalanceSummary(sheets[0].DriverNotes.CornerBalance)
		if summary.UnderCount > 4 {
			insights = append(insights, Insight{
				Type:    InsightInfo,
				Message: "アンダーステア傾向が見られます。フロントの設定を見直すことをお勧めします。",
			})
		} else if summary.OverCount > 4 {
			insights = append(insights, Insight{
				Type:    InsightInfo,
				Message: "オーバーステア傾向が見られます。リアの設定を見直すことをお勧めします。",
			})
		}
	}

	return insights
}
