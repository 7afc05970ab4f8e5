// ABOUTME: Version command for nosh CLI.
// ABOUTME: Prints the build version string.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the nosh version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("nosh %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
