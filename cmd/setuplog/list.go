// ABOUTME: CLI command for listing setup sheets.
// ABOUTME: Supports filtering by vehicle/track and limiting results.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/setuplog/internal/format"
	"github.com/harperreed/setuplog/internal/metrics"
	"github.com/harperreed/setuplog/internal/storage"
	"github.com/spf13/cobra"
)

var (
	listVehicle string
	listTrack   string
	listLimit   int
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List setup sheets",
	Long: `List recent setup sheets, most recent session first.

OUTPUT FORMAT:

  Each line shows: ID  DATE  TRACK  VEHICLE  SESSION  COLD→HOT kPa  BALANCE

  Any unique fragment of the ID works with show, edit, copy, and delete.

EXAMPLES:

  setuplog list                        # Show last 20 sessions
  setuplog list --vehicle Roadster     # Only Roadster sessions
  setuplog list --track 鈴鹿サーキット  # Only Suzuka sessions
  setuplog list -n 50                  # Show more`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var filter *storage.SheetFilter
		if listVehicle != "" || listTrack != "" {
			filter = &storage.SheetFilter{Vehicle: listVehicle, TrackName: listTrack}
		}

		sheets, err := repo.ListSheets(filter, listLimit)
		if err != nil {
			return fmt.Errorf("failed to list sheets: %w", err)
		}

		if len(sheets) == 0 {
			fmt.Println("No sheets found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, s := range sheets {
			cold := metrics.AveragePressure(&s.SetupBefore.Tires.Pressure)
			hot := metrics.AveragePressure(&s.SetupAfter.Tires.Pressure)
			summary := metrics.CornerBalanceSummary(s.DriverNotes.CornerBalance)

			fmt.Printf("%s %s %s %s %s %.0f→%.0f kPa %s\n",
				faint.Sprint(s.ID),
				faint.Sprint(format.DateTime(s.DateTime)),
				padRight(s.TrackName, 12),
				padRight(s.Vehicle, 12),
				padRight(truncate(s.SessionType, 16), 16),
				cold, hot,
				faint.Sprint(summary.Classification))
		}

		return nil
	},
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	listCmd.Flags().StringVar(&listVehicle, "vehicle", "", "filter by vehicle")
	listCmd.Flags().StringVar(&listTrack, "track", "", "filter by track")
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 20, "max number of results")
	rootCmd.AddCommand(listCmd)
}
