// ABOUTME: CLI command for showing one setup sheet in full.
// ABOUTME: Renders conditions, pressures with deltas, suspension, and notes.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/setuplog/internal/format"
	"github.com/harperreed/setuplog/internal/metrics"
	"github.com/harperreed/setuplog/internal/models"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:     "show <id>",
	Aliases: []string{"view"},
	Short:   "Show a setup sheet",
	Long: `Show one setup sheet in full: session header, conditions, cold/hot
tire pressures with signed deltas, suspension (when the vehicle supports
it), and driver notes with the corner-balance grid.

Temperature and pressure trends are shown against the previous session
when one exists. A value that was never recorded renders as "-", not 0.

EXAMPLES:

  setuplog show session-20240715-fuji-01
  setuplog show fuji                        # Unique fragment works too`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sheet, err := repo.GetSheet(args[0])
		if err != nil {
			return fmt.Errorf("sheet not found: %s", args[0])
		}

		printSheet(sheet, previousOf(sheet))
		return nil
	},
}

// previousOf finds the next older session in the store's collection.
func previousOf(sheet *models.SetupSheet) *models.SetupSheet {
	sheets := store.Sheets()
	for i, s := range sheets {
		if s.ID == sheet.ID && i+1 < len(sheets) {
			return sheets[i+1]
		}
	}
	return nil
}

// optional renders an optional numeric field: "-" when not recorded.
func optional(v *float64, unit string) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%g%s", *v, unit)
}

// trendMark renders a trend indicator against the previous session.
func trendMark(current, previous *float64, unit string) string {
	t := metrics.TrendOf(current, previous)
	switch t.Direction {
	case metrics.TrendUp:
		return color.RedString(" ↑%+.1f%s", t.Magnitude, unit)
	case metrics.TrendDown:
		return color.BlueString(" ↓%.1f%s", t.Magnitude, unit)
	default:
		return ""
	}
}

func printSheet(sheet, previous *models.SetupSheet) {
	faint := color.New(color.Faint)
	title := color.New(color.Bold, color.FgCyan)

	title.Printf("%s / %s\n", sheet.TrackName, sheet.Vehicle)
	fmt.Printf("%s  %s  %s\n", faint.Sprint(sheet.ID), format.DateTime(sheet.DateTime), sheet.SessionType)
	if sheet.Driver != "" {
		fmt.Printf("Driver: %s\n", sheet.Driver)
	}

	env := sheet.Environment
	var prevEnv *models.Environment
	if previous != nil {
		prevEnv = &previous.Environment
	}
	fmt.Println()
	title.Println("Conditions")
	fmt.Printf("  Weather %s  Humidity %s  Pressure %s\n",
		valueOrDash(env.Weather), optional(env.Humidity, "%"), optional(env.Pressure, "hPa"))
	fmt.Printf("  Air %s%s  Track %s%s\n",
		optional(env.AirTemp, "°C"), envTrend(prevEnv, env.AirTemp, func(e *models.Environment) *float64 { return e.AirTemp }),
		optional(env.TrackTemp, "°C"), envTrend(prevEnv, env.TrackTemp, func(e *models.Environment) *float64 { return e.TrackTemp }))

	fmt.Println()
	title.Println("Tires")
	fmt.Printf("  %s %s  mileage %s\n",
		valueOrDash(sheet.SetupBefore.Tires.Brand),
		valueOrDash(sheet.SetupBefore.Tires.Compound),
		optional(sheet.SetupBefore.Tires.Mileage, "km"))
	deltas := metrics.PressureDelta(&sheet.SetupBefore.Tires.Pressure, &sheet.SetupAfter.Tires.Pressure)
	fmt.Println("  Pos  Cold     Hot      Δ")
	for _, pos := range models.AllWheelPositions {
		cold := sheet.SetupBefore.Tires.Pressure.At(pos)
		hot := sheet.SetupAfter.Tires.Pressure.At(pos)
		fmt.Printf("  %s  %s %s %s\n",
			strings.ToUpper(string(pos)),
			padRight(optional(cold, ""), 8),
			padRight(optional(hot, ""), 8),
			deltaMark(cold, hot, deltas[pos]))
	}
	avgCold := metrics.AveragePressure(&sheet.SetupBefore.Tires.Pressure)
	avgHot := metrics.AveragePressure(&sheet.SetupAfter.Tires.Pressure)
	fmt.Printf("  avg  %.1f → %.1f kPa\n", avgCold, avgHot)

	fmt.Println()
	title.Println("Engine / Fuel")
	fmt.Printf("  Oil %s %s  oil mileage %s  fuel %s\n",
		valueOrDash(sheet.SetupBefore.Engine.OilBrand),
		valueOrDash(sheet.SetupBefore.Engine.OilViscosity),
		optional(sheet.SetupBefore.Engine.OilMileage, "km"),
		optional(sheet.SetupBefore.Fuel, "L"))

	if models.HasSuspension(sheet.Vehicle) && sheet.SetupBefore.Suspension != nil {
		susp := sheet.SetupBefore.Suspension
		fmt.Println()
		title.Println("Suspension")
		fmt.Printf("  Ride height  front %s  rear %s\n",
			optional(susp.RideHeight.Front, "mm"), optional(susp.RideHeight.Rear, "mm"))
		for _, pos := range models.AllWheelPositions {
			d := susp.Dampers.At(pos)
			fmt.Printf("  %s  bump %s  rebound %s\n",
				strings.ToUpper(string(pos)), optional(d.Bump, ""), optional(d.Rebound, ""))
		}
	}

	fmt.Println()
	title.Println("Driver Notes")
	summary := metrics.CornerBalanceSummary(sheet.DriverNotes.CornerBalance)
	fmt.Printf("  Balance: %s (under %d / over %d)\n", summary.Classification, summary.UnderCount, summary.OverCount)
	fmt.Println("            entry     mid       exit")
	for _, band := range models.AllSpeedBands {
		row := sheet.DriverNotes.CornerBalance.Band(band)
		fmt.Printf("  %s %s %s %s\n",
			padRight(string(band), 10),
			padRight(string(row.Entry), 9),
			padRight(string(row.Mid), 9),
			padRight(string(row.Exit), 9))
	}
	if sheet.DriverNotes.FreeText != "" {
		fmt.Printf("  %s\n", sheet.DriverNotes.FreeText)
	}
}

func valueOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func envTrend(prev *models.Environment, current *float64, pick func(*models.Environment) *float64) string {
	if prev == nil {
		return ""
	}
	return trendMark(current, pick(prev), "°C")
}

// deltaMark colors a pressure delta: red for an increase (hotter), blue
// for a decrease. No delta is shown when either side is unrecorded.
func deltaMark(cold, hot *float64, delta float64) string {
	if cold == nil || hot == nil {
		return "-"
	}
	if delta > 0 {
		return color.RedString("%+.0f", delta)
	}
	if delta < 0 {
		return color.BlueString("%.0f", delta)
	}
	return "±0"
}

func init() {
	rootCmd.AddCommand(showCmd)
}
