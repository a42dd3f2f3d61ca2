// ABOUTME: Pure derived statistics over setup sheets.
// ABOUTME: Averages, deltas, trends, corner-balance classification, series stats.
package metrics

import (
	"math"

	"github.com/harperreed/setuplog/internal/models"
)

// Epsilon is the shared significance threshold for trend indicators and
// comparison highlighting. Tuning constant; changing it moves user-visible
// classification boundaries.
const Epsilon = 0.1

// coerce maps "not recorded" to 0 for arithmetic. Callers needing to
// distinguish absence from a true zero must check presence first.
func coerce(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// AveragePressure returns the mean of the four position values, missing
// positions counting as 0. A nil set averages to 0.
func AveragePressure(p *models.PressureSet) float64 {
	if p == nil {
		return 0
	}
	return (coerce(p.FL) + coerce(p.FR) + coerce(p.RL) + coerce(p.RR)) / 4
}

// PressureDelta returns after minus before per wheel position. Positive
// deltas mean pressure increased over the session.
func PressureDelta(before, after *models.PressureSet) map[models.WheelPos]float64 {
	deltas := make(map[models.WheelPos]float64, len(models.AllWheelPositions))
	for _, pos := range models.AllWheelPositions {
		deltas[pos] = coerce(after.At(pos)) - coerce(before.At(pos))
	}
	return deltas
}

// TrendDirection indicates how a value moved between two sessions.
type TrendDirection string

const (
	TrendFlat TrendDirection = "flat"
	TrendUp   TrendDirection = "up"
	TrendDown TrendDirection = "down"
)

// Trend is the movement of a value from the previous session to the
// current one.
type Trend struct {
	Direction TrendDirection
	Magnitude float64
}

// TrendOf compares current against previous. Either value absent, or a
// difference below Epsilon, reads as flat; this tie-break keeps indicators
// from flickering on near-equal values.
func TrendOf(current, previous *float64) Trend {
	if current == nil || previous == nil {
		return Trend{Direction: TrendFlat}
	}
	diff := *current - *previous
	if math.Abs(diff) < Epsilon {
		return Trend{Direction: TrendFlat, Magnitude: diff}
	}
	if diff > 0 {
		return Trend{Direction: TrendUp, Magnitude: diff}
	}
	return Trend{Direction: TrendDown, Magnitude: diff}
}

// BalanceClassification summarizes a sheet's corner-balance grid.
type BalanceClassification string

const (
	ClassificationNeutral    BalanceClassification = "neutral"
	ClassificationMixed      BalanceClassification = "mixed"
	ClassificationUndersteer BalanceClassification = "understeer tendency"
	ClassificationOversteer  BalanceClassification = "oversteer tendency"
)

// BalanceSummary holds the flattened counts and overall classification of
// a corner-balance grid.
type BalanceSummary struct {
	Classification BalanceClassification
	UnderCount     int
	OverCount      int
}

// CornerBalanceSummary flattens the nine cells into under/over counts and
// classifies the tendency. A side must lead by strictly more than two
// cells to count as a tendency; that margin suppresses noise from one or
// two isolated outlier cells.
func CornerBalanceSummary(cb models.CornerBalance) BalanceSummary {
	var under, over int
	for _, cell := range cb.Cells() {
		switch cell {
		case models.BalanceUnder:
			under++
		case models.BalanceOver:
			over++
		}
	}

	summary := BalanceSummary{UnderCount: under, OverCount: over}
	switch {
	case under > over+2:
		summary.Classification = ClassificationUndersteer
	case over > under+2:
		summary.Classification = ClassificationOversteer
	case under > 0 || over > 0:
		summary.Classification = ClassificationMixed
	default:
		summary.Classification = ClassificationNeutral
	}
	return summary
}

// Stats summarizes a numeric series for trend-chart display. Count is the
// number of valid points; callers must guard Count == 0 and render a
// placeholder instead of the zero values.
type Stats struct {
	Min   float64
	Max   float64
	Mean  float64
	Count int
}

// SeriesStats computes min/max/mean over the valid points of a series.
// NaN entries are skipped.
func SeriesStats(points []float64) Stats {
	var s Stats
	var sum float64
	for _, p := range points {
		if math.IsNaN(p) {
			continue
		}
		if s.Count == 0 {
			s.Min, s.Max = p, p
		} else {
			s.Min = math.Min(s.Min, p)
			s.Max = math.Max(s.Max, p)
		}
		sum += p
		s.Count++
	}
	if s.Count > 0 {
		s.Mean = sum / float64(s.Count)
	}
	return s
}

// HasSignificantDifference reports whether the values spread by more than
// Epsilon, with absent values coerced to 0. Fewer than two values never
// differ. Used to highlight divergent rows in comparison views.
func HasSignificantDifference(values []*float64) bool {
	if len(values) < 2 {
		return false
	}
	min, max := coerce(values[0]), coerce(values[0])
	for _, v := range values[1:] {
		f := coerce(v)
		min = math.Min(min, f)
		max = math.Max(max, f)
	}
	return max-min > Epsilon
}
