// ABOUTME: CLI command for duplicating a setup sheet.
// ABOUTME: The copy gets a fresh id, the current time, and a suffixed session type.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var copyCmd = &cobra.Command{
	Use:     "copy <id>",
	Aliases: []string{"cp", "duplicate"},
	Short:   "Copy a setup sheet",
	Long: `Create a new setup sheet as a deep copy of an existing one. The copy
gets a fresh id, the current date/time, and its session type marked as a
copy; everything else carries over for incremental tweaking.

EXAMPLES:

  setuplog copy session-20240715-fuji-01
  setuplog copy fuji                       # Unique fragment works too`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		base, err := repo.GetSheet(args[0])
		if err != nil {
			return fmt.Errorf("sheet not found: %s", args[0])
		}

		created := store.CreateNew(base)
		if err := repo.SaveSheet(created); err != nil {
			return fmt.Errorf("failed to save sheet: %w", err)
		}

		color.Green("✓ Copied %s", base.SessionType)
		fmt.Printf("  %s → %s\n",
			color.New(color.Faint).Sprint(base.ID),
			color.New(color.Faint).Sprint(created.ID))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(copyCmd)
}
