// ABOUTME: CLI command converting a step count to calories and distance.
// ABOUTME: Uses profile weight/height when available, flags otherwise.
package main

import (
	"fmt"
	"strconv"

	"github.com/harperreed/nosh/internal/metabolic"
	"github.com/spf13/cobra"
)

var (
	stepsWeight float64
	stepsHeight float64
)

var stepsCmd = &cobra.Command{
	Use:   "steps <count>",
	Short: "Estimate calories burned and distance for a step count",
	Long: `Estimate calories burned and distance walked for a step count.
Weight and height come from your profile when set; flags override.

Examples:
  nosh steps 10000
  nosh steps 10000 --weight 85`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		steps, err := strconv.Atoi(args[0])
		if err != nil || steps < 0 {
			return fmt.Errorf("invalid step count: %s", args[0])
		}

		weight, height := stepsWeight, stepsHeight
		if weight == 0 || height == 0 {
			p, err := profileStore.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load profile: %w", err)
			}
			if p != nil {
				if weight == 0 {
					weight = p.WeightKg
				}
				if height == 0 {
					height = p.HeightCm
				}
			}
		}

		fmt.Printf("%d steps ≈ %.0f kcal, %.2f km\n",
			steps,
			metabolic.CaloriesBurned(steps, weight),
			metabolic.StepsToDistance(steps, height))
		return nil
	},
}

func init() {
	stepsCmd.Flags().Float64Var(&stepsWeight, "weight", 0, "weight in kg (default: profile, then 70)")
	stepsCmd.Flags().Float64Var(&stepsHeight, "height", 0, "height in cm (default: profile, then 170)")
	rootCmd.AddCommand(stepsCmd)
}
