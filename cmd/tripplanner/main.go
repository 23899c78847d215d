// Package main is the tripplanner command: an interactive itinerary builder plus
// one-shot planning and catalog commands.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:          "tripplanner",
	Short:        "India travel itinerary builder",
	Long:         "Recommends a day-by-day itinerary by matching a destination and interests against an activity catalog.",
	SilenceUsage: true,
	RunE:         runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/tripplanner/config.yaml if not provided)")
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
