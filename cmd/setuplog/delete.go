// ABOUTME: CLI command for deleting setup sheets.
// ABOUTME: Prompts for confirmation unless --force is given.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var deleteForce bool

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a setup sheet",
	Long: `Delete a setup sheet by its ID or a unique ID fragment.

After deletion the most recent remaining session becomes the selected
one.

EXAMPLES:

  setuplog delete session-20240715-fuji-01
  setuplog rm fuji --force                  # Skip confirmation

CAUTION:

  This permanently deletes the sheet. There is no undo.
  If the fragment matches multiple sheets, an error is returned.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sheet, err := repo.GetSheet(args[0])
		if err != nil {
			return fmt.Errorf("sheet not found: %s", args[0])
		}

		if !deleteForce {
			fmt.Printf("Delete %s (%s @ %s)? [y/N] ", sheet.ID, sheet.SessionType, sheet.TrackName)
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.ToLower(strings.TrimSpace(answer)) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		store.Select(sheet.ID)
		store.DeleteSelected()
		if err := repo.DeleteSheet(sheet.ID); err != nil {
			return fmt.Errorf("failed to delete sheet: %w", err)
		}

		color.Yellow("✗ Deleted %s", sheet.SessionType)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(sheet.ID))
		if next := store.SelectedID(); next != "" {
			fmt.Printf("  selected: %s\n", color.New(color.Faint).Sprint(next))
		}

		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "delete without confirmation")
	rootCmd.AddCommand(deleteCmd)
}
