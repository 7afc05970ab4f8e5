// ABOUTME: Root Cobra command for nosh CLI.
// ABOUTME: Opens the storage backend in PersistentPreRunE and closes it after.
package main

import (
	"fmt"

	"github.com/harperreed/nosh/internal/config"
	"github.com/harperreed/nosh/internal/foodlog"
	"github.com/harperreed/nosh/internal/profile"
	"github.com/harperreed/nosh/internal/storage"
	"github.com/spf13/cobra"
)

var (
	blob         storage.Blob
	logStore     *foodlog.Store
	profileStore *profile.Store
)

var rootCmd = &cobra.Command{
	Use:   "nosh",
	Short: "Personal nutrition and calorie tracker",
	Long: `Nosh is a CLI tool for tracking food, calories, and macros against
metabolic goals computed from your profile.

QUICK START:

  $ nosh profile set --age 40 --gender male --weight 80 --height 180 \
      --activity moderate --goal lose     # Set up your profile
  $ nosh log "oatmeal" 300 10 54 5 --meal breakfast
  $ nosh today                            # Calories consumed/remaining
  $ nosh range 2024-01-01 2024-01-31      # Per-day history

GOALS:

  Your profile derives BMI, BMR (Mifflin-St Jeor), TDEE, a calorie budget,
  and protein/carb/fat gram targets. Logged entries are aggregated per day
  against those targets.

LOOKUP:

  $ nosh lookup "greek yogurt"   # Search Open Food Facts (per 100g)
  $ nosh lookup banana --log     # Log the top result directly

MCP INTEGRATION:

  Run 'nosh mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants:

  {
    "mcpServers": {
      "nosh": { "command": "nosh", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Entries are stored per date in a local badger database at
  ~/.local/share/nosh (override with NOSH_DATA_DIR or the config file).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Commands that don't touch storage
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		blob, err = cfg.OpenBlob()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		logStore = foodlog.New(blob)
		profileStore = profile.New(blob)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if blob != nil {
			return blob.Close()
		}
		return nil
	},
}
