package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LakshyaPrd/cv-screening-new/internal/db"
	"github.com/LakshyaPrd/cv-screening-new/internal/ingestion"
	"github.com/LakshyaPrd/cv-screening-new/internal/schemas"
	"github.com/LakshyaPrd/cv-screening-new/internal/types"
)

var jobCmd = &cobra.Command{
	Use:   "job",
	Short: "Create and validate job requirements",
	Long:  "Job creates a weighted job requirement from a JSON file or a fetched posting URL, validates the weight-sum invariant, and optionally persists it.",
	RunE:  runJob,
}

var (
	jobFile    string
	jobTitle   string
	jobFromURL string
	jobOutFile string
	jobSave    bool
	jobDBURL   string
)

func init() {
	jobCmd.Flags().StringVarP(&jobFile, "file", "f", "", "Path to job requirement JSON file")
	jobCmd.Flags().StringVar(&jobTitle, "title", "", "Job title (required with --from-url)")
	jobCmd.Flags().StringVar(&jobFromURL, "from-url", "", "Fetch the job description from a posting URL")
	jobCmd.Flags().StringVarP(&jobOutFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	jobCmd.Flags().BoolVar(&jobSave, "save", false, "Persist the job requirement")
	jobCmd.Flags().StringVar(&jobDBURL, "db-url", "", "Database URL (required with --save)")

	rootCmd.AddCommand(jobCmd)
}

func runJob(_ *cobra.Command, _ []string) error {
	if jobFile == "" && jobFromURL == "" {
		return fmt.Errorf("must provide --file or --from-url")
	}
	if jobFile != "" && jobFromURL != "" {
		return fmt.Errorf("--file and --from-url are mutually exclusive")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx := context.Background()

	var job *types.JobRequirement
	if jobFile != "" {
		job, err = loadJobFile(jobFile)
		if err != nil {
			return err
		}
	} else {
		if jobTitle == "" {
			return fmt.Errorf("--title is required with --from-url")
		}
		description, err := ingestion.FetchJobPosting(ctx, jobFromURL, nil)
		if err != nil {
			return err
		}
		job = types.NewJobRequirement(jobTitle)
		job.Description = description
	}

	if err := job.Validate(); err != nil {
		return err
	}

	jsonBytes, err := json.MarshalIndent(job, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal job requirement: %w", err)
	}

	if jobOutFile != "" {
		if err := os.WriteFile(jobOutFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Job requirement written to %s\n", jobOutFile)
	} else {
		fmt.Fprintln(os.Stdout, string(jsonBytes))
	}

	if jobSave {
		dbURL := resolveDatabaseURL(jobDBURL, cfg)
		if dbURL == "" {
			return fmt.Errorf("DATABASE_URL required with --save")
		}
		database, err := db.Connect(ctx, dbURL)
		if err != nil {
			return err
		}
		defer database.Close()

		id, err := database.SaveJobRequirement(ctx, job)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Job requirement saved: %s\n", id)
	}

	return nil
}

// loadJobFile reads, schema-validates, and decodes a job requirement file.
// Files without explicit weights get the default split.
func loadJobFile(path string) (*types.JobRequirement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}

	if err := schemas.ValidateJobRequirement(string(data)); err != nil {
		var loadErr *schemas.SchemaLoadError
		if errors.As(err, &loadErr) {
			fmt.Fprintf(os.Stderr, "Warning: could not schema-validate job file: %v\n", err)
		} else {
			return nil, fmt.Errorf("job file does not validate: %w", err)
		}
	}

	job := types.NewJobRequirement("")
	if err := json.Unmarshal(data, job); err != nil {
		return nil, fmt.Errorf("failed to parse job JSON: %w", err)
	}
	return job, nil
}
