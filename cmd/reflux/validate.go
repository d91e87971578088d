package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkling/reflux/config"
)

// validateCmd validates a scenario file without running it.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a scenario file",
	Long: `Validate a reflux scenario file without running it.

This command parses the YAML, expands environment variables in payloads,
and validates all fields. It's useful for CI pipelines or pre-commit checks.

Exit codes:
  0 - Scenario is valid
  1 - Scenario is invalid (error details printed to stderr)

Example:
  reflux validate -c counter.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringP("config", "c", "", "path to scenario file (required)")
	_ = validateCmd.MarkFlagRequired("config")
}

func runValidate(cmd *cobra.Command, args []string) error {
	scenarioFile, _ := cmd.Flags().GetString("config")
	sc, err := config.Load(scenarioFile)
	if err != nil {
		return fmt.Errorf("invalid scenario: %w", err)
	}

	fmt.Printf("Scenario is valid!\n")
	fmt.Printf("  Name:       %s\n", sc.Name)
	fmt.Printf("  Reducer:    %s\n", sc.Reducer)
	fmt.Printf("  Dispatches: %d actions x %d repeats = %d total\n",
		len(sc.Actions), sc.Repeat, sc.TotalDispatches())

	return nil
}
