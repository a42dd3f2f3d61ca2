// ABOUTME: Root Cobra command for setuplog CLI.
// ABOUTME: Opens storage, seeds it on first run, and builds the session store.
package main

import (
	"fmt"

	"github.com/harperreed/setuplog/internal/config"
	"github.com/harperreed/setuplog/internal/seed"
	"github.com/harperreed/setuplog/internal/session"
	"github.com/harperreed/setuplog/internal/storage"
	"github.com/spf13/cobra"
)

var (
	cfg   *config.Config
	repo  storage.Repository
	store *session.Store
)

var rootCmd = &cobra.Command{
	Use:   "setuplog",
	Short: "Motorsport setup sheet logger",
	Long: `Setuplog is a CLI tool for logging and comparing vehicle setup sheets
across track sessions.

WHAT IT TRACKS PER SESSION:

  Conditions     weather, air/track temperature, humidity, air pressure
  Tires          brand, compound, mileage, cold and hot pressures per wheel
  Engine & fuel  oil brand/viscosity/mileage, fuel load
  Suspension     ride height and damper clicks (vehicles that support it)
  Driver notes   free text plus a 3x3 understeer/oversteer corner-balance grid

QUICK START:

  $ setuplog list                                 # Recent sessions
  $ setuplog show fuji                            # Full sheet by id fragment
  $ setuplog new --track 鈴鹿サーキット             # Blank session
  $ setuplog copy fuji                            # Duplicate a session
  $ setuplog edit abc123 --set environment.airTemp=28
  $ setuplog compare abc123 def456                # Side-by-side diff

ADVISOR:

  $ setuplog advise            # Setup advice for the latest session

MCP INTEGRATION:

  Run 'setuplog mcp' to start the Model Context Protocol server for use
  with Claude Desktop or other MCP-compatible AI assistants:

  {
    "mcpServers": {
      "setuplog": { "command": "setuplog", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Sheets are stored locally (SQLite by default, Badger optional) under
  ~/.local/share/setuplog. Two reference sessions are seeded on first run.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip storage init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}

		sheets, err := repo.ListSheets(nil, 0)
		if err != nil {
			return fmt.Errorf("failed to load sheets: %w", err)
		}

		// First run: seed the reference sessions
		if len(sheets) == 0 {
			for _, s := range seed.Sheets() {
				if err := repo.SaveSheet(s); err != nil {
					return fmt.Errorf("failed to seed data: %w", err)
				}
			}
			sheets = seed.Sheets()
		}

		store = session.NewStore(sheets)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
