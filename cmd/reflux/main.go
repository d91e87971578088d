// Package main is the entry point for the reflux CLI.
//
// reflux can be used either as a library (SDK) or as a standalone binary
// that runs YAML scenario files through the built-in lesson reducers.
// This CLI provides the standalone binary approach.
//
// Usage:
//
//	reflux run -c scenario.yaml      # Run a scenario
//	reflux run -c scenario.yaml -w   # Re-run whenever the file changes
//	reflux validate -c scenario.yaml # Validate a scenario
//	reflux version                   # Show version info
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set at build time via ldflags.
// Example: go build -ldflags "-X main.version=1.0.0"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCmd is the base command when called without subcommands.
// It just displays help - actual functionality is in subcommands.
var rootCmd = &cobra.Command{
	Use:   "reflux",
	Short: "A unidirectional state container walkthrough runner",
	Long: `reflux runs YAML scenario files through a unidirectional state
container: each scenario picks a built-in reducer and a sequence of
actions, and the CLI dispatches them through a store, logging every
transition and printing the final state.

Quick start:
  1. Create a scenario file (counter.yaml)
  2. Run: reflux run -c counter.yaml

Example scenario:
  name: counter walkthrough
  reducer: counter
  actions:
    - type: INCREASE_COUNT
    - type: INCREASE_COUNT`,
	// No Run/RunE means this just shows help when called without subcommands
}

// Execute runs the root command.
// This is the main entry point called from main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error, just exit with code 1
		os.Exit(1)
	}
}

func main() {
	Execute()
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version, commit hash, and build date of this reflux binary.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("reflux %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
	},
}

func init() {
	// Register subcommands with root
	rootCmd.AddCommand(versionCmd)
}
