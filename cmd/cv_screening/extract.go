package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LakshyaPrd/cv-screening-new/internal/db"
	"github.com/LakshyaPrd/cv-screening-new/internal/dictionaries"
	"github.com/LakshyaPrd/cv-screening-new/internal/evaluation"
	"github.com/LakshyaPrd/cv-screening-new/internal/extraction"
	"github.com/LakshyaPrd/cv-screening-new/internal/ingestion"
	"github.com/LakshyaPrd/cv-screening-new/internal/llm"
	"github.com/LakshyaPrd/cv-screening-new/internal/observability"
	"github.com/LakshyaPrd/cv-screening-new/internal/pipeline"
	"github.com/LakshyaPrd/cv-screening-new/internal/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract a structured candidate profile from CV text",
	Long:  "Extract parses a CV text file into a structured profile using the rule-based parser, optionally assisted by the AI extractor, and derives experience metrics.",
	RunE:  runExtract,
}

var (
	extractCVFile  string
	extractOutFile string
	extractUseAI   bool
	extractAPIKey  string
	extractSave    bool
	extractDBURL   string
)

func init() {
	extractCmd.Flags().StringVarP(&extractCVFile, "cv", "c", "", "Path to CV text file (required)")
	extractCmd.Flags().StringVarP(&extractOutFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	extractCmd.Flags().BoolVar(&extractUseAI, "use-ai", false, "Enable the AI extraction strategy")
	extractCmd.Flags().StringVar(&extractAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	extractCmd.Flags().BoolVar(&extractSave, "save", false, "Persist the extracted profile as a candidate")
	extractCmd.Flags().StringVar(&extractDBURL, "db-url", "", "Database URL (required with --save)")
	_ = extractCmd.MarkFlagRequired("cv")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := buildLogger()
	defer func() { _ = logger.Sync() }()

	text, err := ingestion.ReadCVText(extractCVFile)
	if err != nil {
		return err
	}

	ctx := context.Background()
	dicts := dictionaries.Default()
	ruleParser := extraction.NewParser(dicts)

	var aiStrategy pipeline.Extractor
	if extractUseAI || cfg.UseAI {
		apiKey := resolveAPIKey(extractAPIKey, cfg)
		if apiKey == "" {
			return fmt.Errorf("API key is required for AI extraction (set GEMINI_API_KEY or use --api-key)")
		}
		client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()

		aiStrategy = pipeline.NewAIExtractor(client, logger).
			WithTier(tierFromConfig(cfg)).
			WithTimeout(cfg.AITimeout())
	}

	profile := pipeline.New(ruleParser, aiStrategy, logger).Parse(ctx, text)

	aggregator := evaluation.NewAggregator(dicts)
	enriched := &types.EnrichedProfile{
		ExtractedProfile: *profile,
		Experience:       aggregator.Aggregate(profile),
	}

	if flagVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintProfile(profile)
		printer.PrintExperience(&enriched.Experience)
	}

	jsonBytes, err := json.MarshalIndent(enriched, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	if extractOutFile != "" {
		if err := os.WriteFile(extractOutFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Profile written to %s\n", extractOutFile)
	} else {
		fmt.Fprintln(os.Stdout, string(jsonBytes))
	}

	if extractSave {
		dbURL := resolveDatabaseURL(extractDBURL, cfg)
		if dbURL == "" {
			return fmt.Errorf("DATABASE_URL required with --save")
		}
		database, err := db.Connect(ctx, dbURL)
		if err != nil {
			return err
		}
		defer database.Close()

		id, err := database.SaveCandidate(ctx, profile)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Candidate saved: %s\n", id)
	}

	return nil
}
