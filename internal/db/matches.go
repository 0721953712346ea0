package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/LakshyaPrd/cv-screening-new/internal/types"
)

// ReplaceMatchesForJob applies a re-run of matching as a full replace: prior
// results for the job are deleted and the new batch inserted in one
// transaction, so at most one result exists per (candidate, job) pair.
func (db *DB) ReplaceMatchesForJob(ctx context.Context, jobID uuid.UUID, results []*types.MatchResult) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx,
		`DELETE FROM match_results WHERE job_id = $1`, jobID); err != nil {
		return fmt.Errorf("failed to clear prior matches: %w", err)
	}

	for _, result := range results {
		_, err := tx.Exec(ctx,
			`INSERT INTO match_results (
				id, candidate_id, job_id,
				total_score, skill_score, role_score, tool_score,
				experience_score, portfolio_score, quality_score,
				matched_skills, missing_skills, matched_tools, missing_tools,
				role_match, justification, is_shortlisted, is_rejected, created_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`,
			result.ID, result.CandidateID, result.JobID,
			result.TotalScore, result.SkillScore, result.RoleScore, result.ToolScore,
			result.ExperienceScore, result.PortfolioScore, result.QualityScore,
			result.MatchedSkills, result.MissingSkills, result.MatchedTools, result.MissingTools,
			string(result.RoleMatch), result.Justification, result.Shortlisted, result.Rejected, result.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert match for candidate %s: %w", result.CandidateID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit matches: %w", err)
	}
	return nil
}

// ListMatchesForJob returns a job's match results ordered by total score
func (db *DB) ListMatchesForJob(ctx context.Context, jobID uuid.UUID) ([]*types.MatchResult, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, candidate_id, job_id,
			total_score, skill_score, role_score, tool_score,
			experience_score, portfolio_score, quality_score,
			matched_skills, missing_skills, matched_tools, missing_tools,
			role_match, justification, is_shortlisted, is_rejected, created_at
		 FROM match_results WHERE job_id = $1 ORDER BY total_score DESC`,
		jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	defer rows.Close()

	var results []*types.MatchResult
	for rows.Next() {
		var result types.MatchResult
		var roleMatch string
		if err := rows.Scan(
			&result.ID, &result.CandidateID, &result.JobID,
			&result.TotalScore, &result.SkillScore, &result.RoleScore, &result.ToolScore,
			&result.ExperienceScore, &result.PortfolioScore, &result.QualityScore,
			&result.MatchedSkills, &result.MissingSkills, &result.MatchedTools, &result.MissingTools,
			&roleMatch, &result.Justification, &result.Shortlisted, &result.Rejected, &result.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan match result: %w", err)
		}
		result.RoleMatch = types.RoleMatchType(roleMatch)
		results = append(results, &result)
	}
	return results, rows.Err()
}

// SetShortlisted flags or unflags a match as shortlisted
func (db *DB) SetShortlisted(ctx context.Context, matchID uuid.UUID, shortlisted bool) error {
	return db.setFlag(ctx, matchID, "is_shortlisted", shortlisted)
}

// SetRejected flags or unflags a match as rejected
func (db *DB) SetRejected(ctx context.Context, matchID uuid.UUID, rejected bool) error {
	return db.setFlag(ctx, matchID, "is_rejected", rejected)
}

func (db *DB) setFlag(ctx context.Context, matchID uuid.UUID, column string, value bool) error {
	tag, err := db.pool.Exec(ctx,
		fmt.Sprintf(`UPDATE match_results SET %s = $1 WHERE id = $2`, column),
		value, matchID)
	if err != nil {
		return fmt.Errorf("failed to update match %s: %w", matchID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("match %s not found", matchID)
	}
	return nil
}
