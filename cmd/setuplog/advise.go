// ABOUTME: CLI command for the deterministic setup advisor.
// ABOUTME: Prints advice for one sheet plus insights over recent sessions.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/setuplog/internal/advisor"
	"github.com/harperreed/setuplog/internal/models"
	"github.com/spf13/cobra"
)

var adviseCmd = &cobra.Command{
	Use:     "advise [id]",
	Aliases: []string{"advice"},
	Short:   "Get setup advice for a session",
	Long: `Print setup advice for a sheet (the latest session when no id is
given), followed by insights over the recent session history: a warning
when recent sessions ran hot, and a notice when the latest corner-balance
grid leans heavily to understeer or oversteer.

The advisor is a deterministic placeholder; no external AI service is
contacted.

EXAMPLES:

  setuplog advise           # Advice for the latest session
  setuplog advise fuji      # Advice for a specific session`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var sheet *models.SetupSheet
		if len(args) == 1 {
			var err error
			sheet, err = repo.GetSheet(args[0])
			if err != nil {
				return fmt.Errorf("sheet not found: %s", args[0])
			}
		} else {
			sheets := store.Sheets()
			if len(sheets) == 0 {
				fmt.Println("No sessions logged yet.")
				return nil
			}
			sheet = sheets[0]
		}

		title := color.New(color.Bold, color.FgMagenta)
		title.Println("AI セットアップアドバイザー")
		fmt.Printf("  %s\n", advisor.Advice(sheet))

		insights := advisor.Insights(store.Sheets())
		if len(insights) > 0 {
			fmt.Println()
			title.Println("パフォーマンス分析")
			for _, insight := range insights {
				switch insight.Type {
				case advisor.InsightWarning:
					fmt.Printf("  %s %s\n", color.YellowString("⚠"), insight.Message)
				default:
					fmt.Printf("  %s %s\n", color.CyanString("💡"), insight.Message)
				}
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(adviseCmd)
}
