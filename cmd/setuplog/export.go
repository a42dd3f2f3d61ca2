// ABOUTME: CLI commands for exporting and importing setup sheet data.
// ABOUTME: Supports JSON and YAML, to a file or stdout.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/setuplog/internal/storage"
	"github.com/spf13/cobra"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export all setup sheets",
	Long: `Export all setup sheets to JSON or YAML. Without a file argument the
export is written to stdout.

EXAMPLES:

  setuplog export                       # JSON to stdout
  setuplog export sheets.json           # JSON to a file
  setuplog export sheets.yaml -o yaml   # YAML to a file`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := repo.GetAllData()
		if err != nil {
			return fmt.Errorf("failed to export data: %w", err)
		}

		out, err := storage.MarshalExport(data, exportFormat)
		if err != nil {
			return err
		}

		if len(args) == 0 {
			fmt.Println(string(out))
			return nil
		}

		if err := os.WriteFile(args[0], out, 0600); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		color.Green("✓ Exported %d sheet(s) to %s", len(data.Sheets), args[0])
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import setup sheets from an export file",
	Long: `Import setup sheets from a JSON or YAML export file. Sheets sharing an
id with an existing sheet are replaced.

EXAMPLES:

  setuplog import sheets.json
  setuplog import sheets.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		data, err := storage.UnmarshalExport(raw)
		if err != nil {
			return err
		}

		if err := repo.ImportData(data); err != nil {
			return fmt.Errorf("failed to import data: %w", err)
		}
		color.Green("✓ Imported %d sheet(s)", len(data.Sheets))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "o", "json", "export format: json or yaml")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
