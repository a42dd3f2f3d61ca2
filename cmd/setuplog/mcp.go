// ABOUTME: CLI command for running the MCP server.
// ABOUTME: Serves setup sheet tools and resources over stdio.
package main

import (
	"fmt"

	"github.com/harperreed/setuplog/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server on stdio.

TOOLS:

  list_sheets, get_sheet, create_sheet, copy_sheet,
  update_sheet_field, delete_sheet, get_advice

RESOURCES:

  setuplog://recent    Last 10 sessions with derived stats
  setuplog://latest    The full most recent setup sheet
  setuplog://summary   Session count, latest stats, insights

Add to your Claude Desktop config:

  {
    "mcpServers": {
      "setuplog": { "command": "setuplog", "args": ["mcp"] }
    }
  }`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(repo)
		if err != nil {
			return fmt.Errorf("failed to create MCP server: %w", err)
		}
		return server.Serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
