package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LakshyaPrd/cv-screening-new/internal/dictionaries"
	"github.com/LakshyaPrd/cv-screening-new/internal/evaluation"
	"github.com/LakshyaPrd/cv-screening-new/internal/observability"
	"github.com/LakshyaPrd/cv-screening-new/internal/types"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Derive experience metrics from an extracted profile",
	Long:  "Evaluate reads an extracted profile JSON file and derives total/regional experience years, seniority tier, large-organization flag, and per-tool software experience.",
	RunE:  runEvaluate,
}

var (
	evaluateProfileFile string
	evaluateOutFile     string
)

func init() {
	evaluateCmd.Flags().StringVarP(&evaluateProfileFile, "profile", "p", "", "Path to extracted profile JSON file (required)")
	evaluateCmd.Flags().StringVarP(&evaluateOutFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	_ = evaluateCmd.MarkFlagRequired("profile")

	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(evaluateProfileFile)
	if err != nil {
		return fmt.Errorf("failed to read profile file: %w", err)
	}

	var profile types.ExtractedProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return fmt.Errorf("failed to parse profile JSON: %w", err)
	}

	aggregator := evaluation.NewAggregator(dictionaries.Default())
	experience := aggregator.Aggregate(&profile)

	if flagVerbose {
		observability.NewPrinter(os.Stderr).PrintExperience(&experience)
	}

	jsonBytes, err := json.MarshalIndent(experience, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal experience metrics: %w", err)
	}

	if evaluateOutFile != "" {
		if err := os.WriteFile(evaluateOutFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Experience metrics written to %s\n", evaluateOutFile)
		return nil
	}

	fmt.Fprintln(os.Stdout, string(jsonBytes))
	return nil
}
