// ABOUTME: CLI command recommending daily water intake.
// ABOUTME: Scales with body weight and the profile's activity level.
package main

import (
	"fmt"

	"github.com/harperreed/nosh/internal/metabolic"
	"github.com/harperreed/nosh/internal/models"
	"github.com/spf13/cobra"
)

var waterWeight float64

// waterMultipliers scales the base intake by activity level.
var waterMultipliers = map[models.ActivityLevel]float64{
	models.ActivitySedentary:  1.0,
	models.ActivityLight:      1.1,
	models.ActivityModerate:   1.2,
	models.ActivityActive:     1.3,
	models.ActivityVeryActive: 1.4,
}

var waterCmd = &cobra.Command{
	Use:   "water",
	Short: "Recommend daily water intake",
	Long: `Recommend daily water intake in liters, from body weight scaled by
your profile's activity level. Use --weight without a profile.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		weight := waterWeight
		mult := 1.0

		p, err := profileStore.Load(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}
		if p != nil {
			if weight == 0 {
				weight = p.WeightKg
			}
			if m, ok := waterMultipliers[p.ActivityLevel]; ok {
				mult = m
			}
		}
		if weight == 0 {
			return fmt.Errorf("no weight available: set a profile or pass --weight")
		}

		fmt.Printf("Recommended water intake: %.1f L/day\n",
			metabolic.WaterIntake(weight, mult))
		return nil
	},
}

func init() {
	waterCmd.Flags().Float64Var(&waterWeight, "weight", 0, "weight in kg (default: profile)")
	rootCmd.AddCommand(waterCmd)
}
