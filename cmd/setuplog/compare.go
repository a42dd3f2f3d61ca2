// ABOUTME: CLI command for side-by-side comparison of up to four sheets.
// ABOUTME: Renders a rounded table; rows with significant spread are marked.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/setuplog/internal/format"
	"github.com/harperreed/setuplog/internal/metrics"
	"github.com/harperreed/setuplog/internal/models"
	"github.com/harperreed/setuplog/internal/session"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:     "compare <id> <id> [id] [id]",
	Aliases: []string{"cmp", "diff"},
	Short:   "Compare setup sheets side by side",
	Long: `Compare two to four setup sheets side by side. Passing more than four
keeps the last four (oldest picks are dropped first).

Rows whose values spread by more than 0.1 are marked with * so divergent
settings stand out.

EXAMPLES:

  setuplog compare fuji suzuka
  setuplog compare abc123 def456 ghi789 jkl012`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var selector session.Selector
		for _, arg := range args {
			sheet, err := repo.GetSheet(arg)
			if err != nil {
				return fmt.Errorf("sheet not found: %s", arg)
			}
			selector.Toggle(sheet.ID)
		}

		sheets := selector.Resolve(store)
		if len(sheets) < 2 {
			return fmt.Errorf("need at least two distinct sheets to compare")
		}

		renderComparison(sheets)
		return nil
	},
}

// compareRow is one table row: a label, one raw value per sheet, and the
// numeric values (absent allowed) used for the significance check.
type compareRow struct {
	label   string
	values  []string
	numeric []*float64
}

func renderComparison(sheets []*models.SetupSheet) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)

	header := table.Row{"Field"}
	for i := range sheets {
		header = append(header, fmt.Sprintf("Session %d", i+1))
	}
	t.AppendHeader(header)

	for _, row := range buildCompareRows(sheets) {
		label := row.label
		if metrics.HasSignificantDifference(row.numeric) {
			label = color.YellowString("%s *", label)
		}
		r := table.Row{label}
		for _, v := range row.values {
			r = append(r, v)
		}
		t.AppendRow(r)
	}

	t.Render()
}

func buildCompareRows(sheets []*models.SetupSheet) []compareRow {
	rows := []compareRow{
		textRow("Date", sheets, func(s *models.SetupSheet) string { return format.DateTime(s.DateTime) }),
		textRow("Track", sheets, func(s *models.SetupSheet) string { return s.TrackName }),
		textRow("Vehicle", sheets, func(s *models.SetupSheet) string { return s.Vehicle }),
		textRow("Session", sheets, func(s *models.SetupSheet) string { return valueOrDash(s.SessionType) }),
		textRow("Weather", sheets, func(s *models.SetupSheet) string { return valueOrDash(s.Environment.Weather) }),
		numericRow("Air °C", sheets, func(s *models.SetupSheet) *float64 { return s.Environment.AirTemp }),
		numericRow("Track °C", sheets, func(s *models.SetupSheet) *float64 { return s.Environment.TrackTemp }),
		numericRow("Humidity %", sheets, func(s *models.SetupSheet) *float64 { return s.Environment.Humidity }),
		numericRow("Fuel L", sheets, func(s *models.SetupSheet) *float64 { return s.SetupBefore.Fuel }),
	}

	for _, pos := range models.AllWheelPositions {
		pos := pos
		rows = append(rows, numericRow(
			fmt.Sprintf("Cold %s", strings.ToUpper(string(pos))), sheets,
			func(s *models.SetupSheet) *float64 { return s.SetupBefore.Tires.Pressure.At(pos) }))
	}
	for _, pos := range models.AllWheelPositions {
		pos := pos
		rows = append(rows, numericRow(
			fmt.Sprintf("Hot %s", strings.ToUpper(string(pos))), sheets,
			func(s *models.SetupSheet) *float64 { return s.SetupAfter.Tires.Pressure.At(pos) }))
	}

	rows = append(rows, textRow("Balance", sheets, func(s *models.SetupSheet) string {
		return string(metrics.CornerBalanceSummary(s.DriverNotes.CornerBalance).Classification)
	}))

	return rows
}

func textRow(label string, sheets []*models.SetupSheet, pick func(*models.SetupSheet) string) compareRow {
	row := compareRow{label: label}
	for _, s := range sheets {
		row.values = append(row.values, pick(s))
	}
	return row
}

func numericRow(label string, sheets []*models.SetupSheet, pick func(*models.SetupSheet) *float64) compareRow {
	row := compareRow{label: label}
	for _, s := range sheets {
		v := pick(s)
		row.values = append(row.values, optional(v, ""))
		row.numeric = append(row.numeric, v)
	}
	return row
}

func init() {
	rootCmd.AddCommand(compareCmd)
}
