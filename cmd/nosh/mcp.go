// ABOUTME: CLI command starting the MCP server over stdio.
// ABOUTME: Exposes the tracker's tools to MCP-compatible AI assistants.
package main

import (
	"fmt"

	"github.com/harperreed/nosh/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server on stdio.

Tools exposed: log_food, get_day, delete_entry, get_range, get_profile,
set_profile. Add to your assistant config:

  {
    "mcpServers": {
      "nosh": { "command": "nosh", "args": ["mcp"] }
    }
  }`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(logStore, profileStore)
		if err != nil {
			return fmt.Errorf("failed to create MCP server: %w", err)
		}
		return server.Serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
