// ABOUTME: Tests for derived statistics over setup sheets.
// ABOUTME: Validates averages, deltas, trends, and balance classification.
package metrics

import (
	"math"
	"testing"

	"github.com/harperreed/setuplog/internal/models"
)

func TestAveragePressure(t *testing.T) {
	f := models.Float

	full := &models.PressureSet{FL: f(195), FR: f(195), RL: f(190), RR: f(190)}
	if got := AveragePressure(full); got != 192.5 {
		t.Errorf("AveragePressure = %v, want 192.5", got)
	}

	partial := &models.PressureSet{FL: f(200)}
	if got := AveragePressure(partial); got != 50 {
		t.Errorf("AveragePressure with one wheel = %v, want 50", got)
	}

	if got := AveragePressure(&models.PressureSet{}); got != 0 {
		t.Errorf("AveragePressure of empty set = %v, want 0", got)
	}
	if got := AveragePressure(nil); got != 0 {
		t.Errorf("AveragePressure of nil = %v, want 0", got)
	}
}

func TestPressureDelta(t *testing.T) {
	f := models.Float
	before := &models.PressureSet{FL: f(195), FR: f(195), RL: f(190), RR: f(190)}
	after := &models.PressureSet{FL: f(225), FR: f(228), RL: f(220), RR: f(222)}

	deltas := PressureDelta(before, after)
	if deltas[models.WheelFL] != 30 {
		t.Errorf("delta fl = %v, want 30", deltas[models.WheelFL])
	}
	if deltas[models.WheelFR] != 33 {
		t.Errorf("delta fr = %v, want 33", deltas[models.WheelFR])
	}
	if deltas[models.WheelRR] != 32 {
		t.Errorf("delta rr = %v, want 32", deltas[models.WheelRR])
	}

	// Unrecorded sides coerce to zero.
	sparse := PressureDelta(&models.PressureSet{}, &models.PressureSet{FL: f(10)})
	if sparse[models.WheelFL] != 10 {
		t.Errorf("sparse delta fl = %v, want 10", sparse[models.WheelFL])
	}
	if sparse[models.WheelRR] != 0 {
		t.Errorf("sparse delta rr = %v, want 0", sparse[models.WheelRR])
	}
}

func TestTrendOf(t *testing.T) {
	f := models.Float
	tests := []struct {
		name          string
		current       *float64
		previous      *float64
		wantDirection TrendDirection
		wantMagnitude float64
	}{
		{"below epsilon reads flat", f(30.05), f(30.0), TrendFlat, 0.05},
		{"up past epsilon", f(30.2), f(30.0), TrendUp, 0.2},
		{"down past epsilon", f(29.8), f(30.0), TrendDown, -0.2},
		{"missing current", nil, f(30.0), TrendFlat, 0},
		{"missing previous", f(30.0), nil, TrendFlat, 0},
		{"equal values", f(30.0), f(30.0), TrendFlat, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TrendOf(tt.current, tt.previous)
			if got.Direction != tt.wantDirection {
				t.Errorf("Direction = %s, want %s", got.Direction, tt.wantDirection)
			}
			if math.Abs(got.Magnitude-tt.wantMagnitude) > 1e-9 {
				t.Errorf("Magnitude = %v, want %v", got.Magnitude, tt.wantMagnitude)
			}
		})
	}
}

func grid(cells [9]models.Balance) models.CornerBalance {
	return models.CornerBalance{
		LowSpeed:  models.PhaseBalance{Entry: cells[0], Mid: cells[1], Exit: cells[2]},
		MidSpeed:  models.PhaseBalance{Entry: cells[3], Mid: cells[4], Exit: cells[5]},
		HighSpeed: models.PhaseBalance{Entry: cells[6], Mid: cells[7], Exit: cells[8]},
	}
}

func TestCornerBalanceSummary(t *testing.T) {
	n, u, o := models.BalanceNeutral, models.BalanceUnder, models.BalanceOver

	tests := []struct {
		name      string
		cells     [9]models.Balance
		want      BalanceClassification
		wantUnder int
		wantOver  int
	}{
		{"all neutral", [9]models.Balance{n, n, n, n, n, n, n, n, n}, ClassificationNeutral, 0, 0},
		{"four under is a tendency", [9]models.Balance{u, u, u, u, n, n, n, n, n}, ClassificationUndersteer, 4, 0},
		{"three under is only mixed", [9]models.Balance{u, u, u, n, n, n, n, n, n}, ClassificationMixed, 3, 0},
		{"two under reads mixed", [9]models.Balance{u, u, n, n, n, n, n, n, n}, ClassificationMixed, 2, 0},
		{"four over is a tendency", [9]models.Balance{o, o, o, o, n, n, n, n, n}, ClassificationOversteer, 0, 4},
		{"lead of exactly two is mixed", [9]models.Balance{u, u, u, o, n, n, n, n, n}, ClassificationMixed, 3, 1},
		{"lead of three is a tendency", [9]models.Balance{u, u, u, u, o, n, n, n, n}, ClassificationUndersteer, 4, 1},
		{"single over reads mixed", [9]models.Balance{n, n, n, n, n, o, n, n, n}, ClassificationMixed, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CornerBalanceSummary(grid(tt.cells))
			if got.Classification != tt.want {
				t.Errorf("Classification = %s, want %s", got.Classification, tt.want)
			}
			if got.UnderCount != tt.wantUnder || got.OverCount != tt.wantOver {
				t.Errorf("counts = %d/%d, want %d/%d", got.UnderCount, got.OverCount, tt.wantUnder, tt.wantOver)
			}
		})
	}
}

func TestSeriesStats(t *testing.T) {
	s := SeriesStats([]float64{28, 24, 31})
	if s.Count != 3 {
		t.Errorf("Count = %d, want 3", s.Count)
	}
	if s.Min != 24 || s.Max != 31 {
		t.Errorf("Min/Max = %v/%v, want 24/31", s.Min, s.Max)
	}
	if math.Abs(s.Mean-27.666666666666668) > 1e-9 {
		t.Errorf("Mean = %v", s.Mean)
	}

	withNaN := SeriesStats([]float64{10, math.NaN(), 20})
	if withNaN.Count != 2 || withNaN.Mean != 15 {
		t.Errorf("NaN entries should be skipped: Count=%d Mean=%v", withNaN.Count, withNaN.Mean)
	}

	empty := SeriesStats(nil)
	if empty.Count != 0 {
		t.Errorf("empty series Count = %d, want 0", empty.Count)
	}
}

func TestHasSignificantDifference(t *testing.T) {
	f := models.Float
	tests := []struct {
		name   string
		values []*float64
		want   bool
	}{
		{"spread past epsilon", []*float64{f(195), f(195.2)}, true},
		{"spread within epsilon", []*float64{f(195), f(195.05)}, false},
		{"spread of exactly epsilon", []*float64{f(195), f(195.1)}, false},
		{"single value", []*float64{f(195)}, false},
		{"empty", nil, false},
		{"nil coerces to zero", []*float64{nil, f(0.05)}, false},
		{"nil against a real value", []*float64{nil, f(195)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasSignificantDifference(tt.values); got != tt.want {
				t.Errorf("HasSignificantDifference = %v, want %v", got, tt.want)
			}
		})
	}
}
