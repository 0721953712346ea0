package types

import (
	"time"

	"github.com/google/uuid"
)

// RoleMatchType describes how the role category matched
type RoleMatchType string

// Role match outcomes
const (
	RoleMatchExact          RoleMatchType = "exact"
	RoleMatchEquivalent     RoleMatchType = "equivalent"
	RoleMatchNone           RoleMatchType = "no_match"
	RoleMatchNoRequirements RoleMatchType = "no_requirements"
)

// CategoryScore holds one category's weighted score alongside its budget
type CategoryScore struct {
	Weighted float64 `json:"weighted"`
	Max      float64 `json:"max"`
}

// MatchResult represents the outcome of scoring one candidate profile against
// one job requirement. It is created once per (candidate, job) pair and never
// mutates the profile or the requirement.
type MatchResult struct {
	ID          uuid.UUID `json:"match_id,omitempty"`
	CandidateID uuid.UUID `json:"candidate_id,omitempty"`
	JobID       uuid.UUID `json:"job_id,omitempty"`

	TotalScore      float64 `json:"total_score"`
	SkillScore      float64 `json:"skill_score"`
	RoleScore       float64 `json:"role_score"`
	ToolScore       float64 `json:"tool_score"`
	ExperienceScore float64 `json:"experience_score"`
	PortfolioScore  float64 `json:"portfolio_score"`
	QualityScore    float64 `json:"quality_score"`

	MatchedSkills []string `json:"matched_skills,omitempty"`
	MissingSkills []string `json:"missing_skills,omitempty"`
	MatchedTools  []string `json:"matched_tools,omitempty"`
	MissingTools  []string `json:"missing_tools,omitempty"`

	RoleMatch     RoleMatchType `json:"role_match"`
	Justification string        `json:"justification"`

	Shortlisted bool `json:"is_shortlisted"`
	Rejected    bool `json:"is_rejected"`

	CreatedAt time.Time `json:"created_at,omitempty"`
}

// MeetsThreshold reports whether the total score clears the job's minimum
func (m *MatchResult) MeetsThreshold(job *JobRequirement) bool {
	return m.TotalScore >= float64(job.MinimumScoreThreshold)
}
