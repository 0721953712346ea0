package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/LakshyaPrd/cv-screening-new/internal/config"
	"github.com/LakshyaPrd/cv-screening-new/internal/db"
	"github.com/LakshyaPrd/cv-screening-new/internal/dictionaries"
	"github.com/LakshyaPrd/cv-screening-new/internal/matching"
	"github.com/LakshyaPrd/cv-screening-new/internal/observability"
	"github.com/LakshyaPrd/cv-screening-new/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score candidate profiles against a job requirement",
	Long:  "Match scores one or more extracted profiles against a weighted job requirement, producing per-category scores and a plain-language justification for each candidate.",
	RunE:  runMatch,
}

var (
	matchJobFile  string
	matchProfiles []string
	matchJobID    string
	matchDBURL    string
	matchOutFile  string
)

func init() {
	matchCmd.Flags().StringVarP(&matchJobFile, "job", "j", "", "Path to job requirement JSON file")
	matchCmd.Flags().StringSliceVarP(&matchProfiles, "profile", "p", nil, "Extracted profile JSON files or directories (repeatable)")
	matchCmd.Flags().StringVar(&matchJobID, "job-id", "", "Stored job ID to match all stored candidates against")
	matchCmd.Flags().StringVar(&matchDBURL, "db-url", "", "Database URL (required with --job-id)")
	matchCmd.Flags().StringVarP(&matchOutFile, "out", "o", "", "Path to output JSON file (default: stdout)")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	useDatabase := matchJobID != ""
	useFiles := matchJobFile != "" || len(matchProfiles) > 0

	if useDatabase && useFiles {
		return fmt.Errorf("cannot use --job-id with --job/--profile flags")
	}
	if !useDatabase && !useFiles {
		return fmt.Errorf("must provide either --job-id or --job with --profile")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := buildLogger()
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	scorer := matching.NewScorer(dictionaries.Default())
	batcher := matching.NewBatchMatcher(scorer, logger).WithConcurrency(cfg.BatchConcurrency)

	if useFiles {
		if matchJobFile == "" || len(matchProfiles) == 0 {
			return fmt.Errorf("file mode requires both --job and at least one --profile")
		}
		return runMatchFiles(ctx, batcher)
	}
	return runMatchDatabase(ctx, cfg, batcher)
}

func runMatchFiles(ctx context.Context, batcher *matching.BatchMatcher) error {
	job, err := loadJobFile(matchJobFile)
	if err != nil {
		return err
	}

	paths, err := expandProfilePaths(matchProfiles)
	if err != nil {
		return err
	}

	candidates := make([]matching.Candidate, 0, len(paths))
	for _, path := range paths {
		profile, err := loadProfileFile(path)
		if err != nil {
			return err
		}
		candidates = append(candidates, matching.Candidate{ID: uuid.New(), Profile: profile})
	}

	report, err := batcher.MatchAll(ctx, uuid.New(), job, candidates)
	if err != nil {
		return err
	}
	markShortlisted(report.Results, job)

	if flagVerbose {
		printer := observability.NewPrinter(os.Stderr)
		for _, result := range report.Results {
			printer.PrintMatchResult(result, job)
		}
	}

	return writeMatchReport(report, job)
}

func runMatchDatabase(ctx context.Context, cfg config.Config, batcher *matching.BatchMatcher) error {
	jobID, err := uuid.Parse(matchJobID)
	if err != nil {
		return fmt.Errorf("invalid job-id: %w", err)
	}

	dbURL := resolveDatabaseURL(matchDBURL, cfg)
	if dbURL == "" {
		return fmt.Errorf("DATABASE_URL required with --job-id")
	}

	database, err := db.Connect(ctx, dbURL)
	if err != nil {
		return err
	}
	defer database.Close()

	stored, err := database.GetJobRequirement(ctx, jobID)
	if err != nil {
		return err
	}
	if stored == nil {
		return fmt.Errorf("job requirement not found: %s", jobID)
	}

	rows, err := database.ListCandidates(ctx)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no candidates stored")
	}

	candidates := make([]matching.Candidate, 0, len(rows))
	for _, row := range rows {
		candidates = append(candidates, matching.Candidate{ID: row.ID, Profile: row.Profile})
	}

	report, err := batcher.MatchAll(ctx, jobID, stored.Requirement, candidates)
	if err != nil {
		return err
	}
	markShortlisted(report.Results, stored.Requirement)

	if err := database.ReplaceMatchesForJob(ctx, jobID, report.Results); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Matched %d candidates (%d failed) for job %s\n",
		report.Processed, report.Failed, jobID)
	return writeMatchReport(report, stored.Requirement)
}

// markShortlisted applies the job's minimum score threshold
func markShortlisted(results []*types.MatchResult, job *types.JobRequirement) {
	for _, result := range results {
		result.Shortlisted = result.MeetsThreshold(job)
	}
}

func writeMatchReport(report *matching.BatchReport, job *types.JobRequirement) error {
	out := struct {
		Job       string               `json:"job_title"`
		Processed int                  `json:"processed"`
		Failed    int                  `json:"failed"`
		Results   []*types.MatchResult `json:"results"`
	}{
		Job:       job.Title,
		Processed: report.Processed,
		Failed:    report.Failed,
		Results:   report.Results,
	}

	jsonBytes, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal match report: %w", err)
	}

	if matchOutFile != "" {
		if err := os.WriteFile(matchOutFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Match report written to %s\n", matchOutFile)
		return nil
	}

	fmt.Fprintln(os.Stdout, string(jsonBytes))
	return nil
}

// expandProfilePaths resolves directories to the JSON files inside them
func expandProfilePaths(inputs []string) ([]string, error) {
	var paths []string
	for _, input := range inputs {
		info, err := os.Stat(input)
		if err != nil {
			return nil, fmt.Errorf("profile path %s: %w", input, err)
		}
		if !info.IsDir() {
			paths = append(paths, input)
			continue
		}
		matches, err := filepath.Glob(filepath.Join(input, "*.json"))
		if err != nil {
			return nil, err
		}
		paths = append(paths, matches...)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no profile files found")
	}
	return paths, nil
}

func loadProfileFile(path string) (*types.ExtractedProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
	}
	var profile types.ExtractedProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}
	return &profile, nil
}
