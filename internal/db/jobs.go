package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/LakshyaPrd/cv-screening-new/internal/types"
)

// StoredJob is a persisted job requirement
type StoredJob struct {
	ID          uuid.UUID
	Requirement *types.JobRequirement
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SaveJobRequirement validates and stores a job requirement, returning its ID.
// Requirements that fail validation are rejected before any write.
func (db *DB) SaveJobRequirement(ctx context.Context, job *types.JobRequirement) (uuid.UUID, error) {
	if err := job.Validate(); err != nil {
		return uuid.Nil, err
	}

	jobJSON, err := json.Marshal(job)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal job requirement: %w", err)
	}

	id := uuid.New()
	_, err = db.pool.Exec(ctx,
		`INSERT INTO job_requirements (id, title, requirement)
		 VALUES ($1, $2, $3)`,
		id, job.Title, jobJSON,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save job requirement: %w", err)
	}
	return id, nil
}

// UpdateJobRequirement replaces a stored requirement's fields. The weight-sum
// invariant is enforced here as at creation.
func (db *DB) UpdateJobRequirement(ctx context.Context, id uuid.UUID, job *types.JobRequirement) error {
	if err := job.Validate(); err != nil {
		return err
	}

	jobJSON, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job requirement: %w", err)
	}

	tag, err := db.pool.Exec(ctx,
		`UPDATE job_requirements SET title = $1, requirement = $2, updated_at = NOW() WHERE id = $3`,
		job.Title, jobJSON, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update job requirement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("job requirement %s not found", id)
	}
	return nil
}

// GetJobRequirement retrieves a job requirement by ID. Returns nil when not found.
func (db *DB) GetJobRequirement(ctx context.Context, id uuid.UUID) (*StoredJob, error) {
	var stored StoredJob
	var jobJSON []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, requirement, created_at, updated_at FROM job_requirements WHERE id = $1`,
		id,
	).Scan(&stored.ID, &jobJSON, &stored.CreatedAt, &stored.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job requirement: %w", err)
	}

	if err := json.Unmarshal(jobJSON, &stored.Requirement); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job requirement: %w", err)
	}
	return &stored, nil
}

// ListJobRequirements returns all stored job requirements, newest first
func (db *DB) ListJobRequirements(ctx context.Context) ([]StoredJob, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, requirement, created_at, updated_at FROM job_requirements ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list job requirements: %w", err)
	}
	defer rows.Close()

	var jobs []StoredJob
	for rows.Next() {
		var stored StoredJob
		var jobJSON []byte
		if err := rows.Scan(&stored.ID, &jobJSON, &stored.CreatedAt, &stored.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan job requirement: %w", err)
		}
		if err := json.Unmarshal(jobJSON, &stored.Requirement); err != nil {
			return nil, fmt.Errorf("failed to unmarshal job requirement: %w", err)
		}
		jobs = append(jobs, stored)
	}
	return jobs, rows.Err()
}
