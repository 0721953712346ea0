// Package db provides PostgreSQL persistence for candidates, job
// requirements, and match results.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Migrate creates the screening tables when they do not exist yet
func (db *DB) Migrate(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS candidates (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL DEFAULT '',
			profile JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS job_requirements (
			id UUID PRIMARY KEY,
			title TEXT NOT NULL,
			requirement JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS match_results (
			id UUID PRIMARY KEY,
			candidate_id UUID NOT NULL REFERENCES candidates(id),
			job_id UUID NOT NULL REFERENCES job_requirements(id),
			total_score DOUBLE PRECISION NOT NULL,
			skill_score DOUBLE PRECISION NOT NULL,
			role_score DOUBLE PRECISION NOT NULL,
			tool_score DOUBLE PRECISION NOT NULL,
			experience_score DOUBLE PRECISION NOT NULL,
			portfolio_score DOUBLE PRECISION NOT NULL,
			quality_score DOUBLE PRECISION NOT NULL,
			matched_skills TEXT[] NOT NULL DEFAULT '{}',
			missing_skills TEXT[] NOT NULL DEFAULT '{}',
			matched_tools TEXT[] NOT NULL DEFAULT '{}',
			missing_tools TEXT[] NOT NULL DEFAULT '{}',
			role_match TEXT NOT NULL,
			justification TEXT NOT NULL DEFAULT '',
			is_shortlisted BOOLEAN NOT NULL DEFAULT FALSE,
			is_rejected BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (candidate_id, job_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_match_results_job ON match_results(job_id, total_score DESC)`,
	}

	for _, stmt := range statements {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
