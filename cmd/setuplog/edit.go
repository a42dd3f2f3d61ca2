// ABOUTME: CLI command for editing setup sheet fields by path.
// ABOUTME: Runs the select/edit/save draft lifecycle; --dry-run reverts instead.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/setuplog/internal/models"
	"github.com/spf13/cobra"
)

var (
	editSets   []string
	editDryRun bool
)

var editCmd = &cobra.Command{
	Use:     "edit <id>",
	Aliases: []string{"set"},
	Short:   "Edit setup sheet fields",
	Long: `Edit fields of a setup sheet by dot-delimited path. Edits are applied
to a draft and committed together; --dry-run shows whether the edits
would change anything and then discards them.

Numeric fields accept raw input; empty or non-numeric input clears the
field back to "not recorded". Corner-balance cells accept neutral, under,
or over.

FIELD PATHS (examples):

  environment.airTemp                      air temperature (°C)
  setupBefore.tires.pressure.fl            cold front-left pressure (kPa)
  setupAfter.tires.pressure.rr             hot rear-right pressure (kPa)
  setupBefore.suspension.dampers.fl.bump   damper clicks
  driverNotes.cornerBalance.lowSpeed.entry neutral|under|over
  driverNotes.freeText                     free-text notes

Run 'setuplog edit --paths' for the full list.

EXAMPLES:

  setuplog edit fuji --set environment.airTemp=28 --set environment.weather=晴れ
  setuplog edit fuji --set setupBefore.tires.pressure.fl=195
  setuplog edit fuji --set driverNotes.cornerBalance.midSpeed.exit=over
  setuplog edit fuji --set environment.airTemp=30 --dry-run`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if showPaths, _ := cmd.Flags().GetBool("paths"); showPaths {
			printFieldPaths()
			return nil
		}
		if len(args) == 0 {
			return fmt.Errorf("sheet id required")
		}
		if len(editSets) == 0 {
			return fmt.Errorf("nothing to edit: pass at least one --set path=value")
		}

		sheet, err := repo.GetSheet(args[0])
		if err != nil {
			return fmt.Errorf("sheet not found: %s", args[0])
		}

		store.Select(sheet.ID)
		for _, assignment := range editSets {
			path, value, found := strings.Cut(assignment, "=")
			if !found {
				return fmt.Errorf("invalid --set %q: expected path=value", assignment)
			}
			if err := store.EditDraftField(path, value); err != nil {
				return err
			}
		}

		if !store.IsDirty() {
			fmt.Println("No changes.")
			return nil
		}

		if editDryRun {
			store.Revert()
			color.Yellow("Dry run: %d edit(s) would change the sheet; discarded.", len(editSets))
			return nil
		}

		store.Save()
		if err := repo.SaveSheet(store.Sheet(sheet.ID)); err != nil {
			return fmt.Errorf("failed to save sheet: %w", err)
		}

		color.Green("✓ Saved %d edit(s)", len(editSets))
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(sheet.ID))
		return nil
	},
}

func printFieldPaths() {
	fmt.Println("Addressable field paths:")
	for _, p := range models.KnownFieldPaths() {
		fmt.Printf("  %s\n", p)
	}
}

func init() {
	editCmd.Flags().StringArrayVar(&editSets, "set", nil, "field assignment path=value (repeatable)")
	editCmd.Flags().BoolVar(&editDryRun, "dry-run", false, "apply edits to the draft, report, then discard")
	editCmd.Flags().Bool("paths", false, "list all addressable field paths")
	rootCmd.AddCommand(editCmd)
}
