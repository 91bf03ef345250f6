package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "copper",
	Short: "Coppermetrics - LME copper settlement analytics",
	Long: `Coppermetrics CLI

Calendar-pattern analytics over daily LME copper cash settlement prices:
monthly and weekly seasonality, weekday patterns, ranked pricing
strategies, trend and cycle detection, volatility profiling.

Usage:
  go run ./cmd/copper [command]

Examples:
  go run ./cmd/copper analyze
  go run ./cmd/copper analyze 2023-01-01 2024-12-31
  go run ./cmd/copper api
  go run ./cmd/copper scheduler start`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
