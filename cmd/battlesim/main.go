package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool
	version = "dev" // Will be set by build flags
)

var rootCmd = &cobra.Command{
	Use:   "battlesim",
	Short: "Monte-Carlo combat simulator for Hearthstone-Battlegrounds-style auto-battlers",
	Long: `battlesim plays out two snapshot boards against each other thousands of
times under controlled randomness and reports win/tie/loss statistics, damage
distributions, and (optionally) the best reordering of one side's minions.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./battlesim.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(optimizeCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(infoCmd)
}

// Commands are defined in separate files:
// - runCmd in run.go
// - optimizeCmd in optimize.go
// - replCmd in repl.go
// - infoCmd in info.go

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
