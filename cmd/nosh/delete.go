// ABOUTME: CLI command for deleting food log entries by ID.
// ABOUTME: Deletion is idempotent; unknown IDs are not an error.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm", "del"},
	Short:   "Delete a food log entry",
	Long: `Delete a food log entry by its full ID.

Deleting an ID that doesn't exist is a no-op. When the last entry of a
date is deleted, the date disappears from range queries.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := logStore.DeleteEntry(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to delete entry: %w", err)
		}
		color.Green("✓ Deleted %s", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
