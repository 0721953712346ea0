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

// Candidate is a stored candidate row with its extracted profile
type Candidate struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Profile   *types.ExtractedProfile
	CreatedAt time.Time
}

// SaveCandidate stores an extracted profile and returns the new candidate ID
func (db *DB) SaveCandidate(ctx context.Context, profile *types.ExtractedProfile) (uuid.UUID, error) {
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal profile: %w", err)
	}

	id := uuid.New()
	_, err = db.pool.Exec(ctx,
		`INSERT INTO candidates (id, name, email, profile)
		 VALUES ($1, $2, $3, $4)`,
		id, profile.Name, profile.Email, profileJSON,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save candidate: %w", err)
	}
	return id, nil
}

// GetCandidate retrieves a candidate by ID. Returns nil when not found.
func (db *DB) GetCandidate(ctx context.Context, id uuid.UUID) (*Candidate, error) {
	var candidate Candidate
	var profileJSON []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, email, profile, created_at FROM candidates WHERE id = $1`,
		id,
	).Scan(&candidate.ID, &candidate.Name, &candidate.Email, &profileJSON, &candidate.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}

	if err := json.Unmarshal(profileJSON, &candidate.Profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal candidate profile: %w", err)
	}
	return &candidate, nil
}

// ListCandidates returns all stored candidates, newest first
func (db *DB) ListCandidates(ctx context.Context) ([]Candidate, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, name, email, profile, created_at FROM candidates ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []Candidate
	for rows.Next() {
		var candidate Candidate
		var profileJSON []byte
		if err := rows.Scan(&candidate.ID, &candidate.Name, &candidate.Email, &profileJSON, &candidate.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		if err := json.Unmarshal(profileJSON, &candidate.Profile); err != nil {
			return nil, fmt.Errorf("failed to unmarshal candidate profile: %w", err)
		}
		candidates = append(candidates, candidate)
	}
	return candidates, rows.Err()
}
