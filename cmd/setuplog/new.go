// ABOUTME: CLI command for creating a blank setup sheet.
// ABOUTME: Applies optional header fields through the draft lifecycle.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/setuplog/internal/models"
	"github.com/spf13/cobra"
)

var (
	newVehicle string
	newTrack   string
	newDriver  string
	newSession string
)

var newCmd = &cobra.Command{
	Use:     "new",
	Aliases: []string{"add", "n"},
	Short:   "Create a new setup sheet",
	Long: `Create a new setup sheet from the blank template, dated now, and make
it the selected session.

EXAMPLES:

  setuplog new
  setuplog new --vehicle "RS3 LMS TCR" --track 富士スピードウェイ
  setuplog new --driver "山田 太郎" --session "Practice 1"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if newVehicle != "" && !models.IsValidVehicle(newVehicle) {
			return fmt.Errorf("unknown vehicle: %s (known: %v)", newVehicle, models.VehicleList)
		}

		created := store.CreateNew(nil)

		fields := map[string]string{
			"vehicle":     newVehicle,
			"trackName":   newTrack,
			"driver":      newDriver,
			"sessionType": newSession,
		}
		for path, value := range fields {
			if value == "" {
				continue
			}
			if err := store.EditDraftField(path, value); err != nil {
				return err
			}
		}
		store.Save()

		sheet := store.Sheet(created.ID)
		if err := repo.SaveSheet(sheet); err != nil {
			return fmt.Errorf("failed to save sheet: %w", err)
		}

		color.Green("✓ Created %s", sheet.SessionType)
		fmt.Printf("  %s %s @ %s\n",
			color.New(color.Faint).Sprint(sheet.ID),
			sheet.Vehicle, sheet.TrackName)

		return nil
	},
}

func init() {
	newCmd.Flags().StringVar(&newVehicle, "vehicle", "", "vehicle name")
	newCmd.Flags().StringVar(&newTrack, "track", "", "track name")
	newCmd.Flags().StringVar(&newDriver, "driver", "", "driver name")
	newCmd.Flags().StringVar(&newSession, "session", "", "session type")
	rootCmd.AddCommand(newCmd)
}
