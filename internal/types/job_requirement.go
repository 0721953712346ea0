package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Default category weights applied when a job requirement specifies none.
// They sum to 100 by construction.
const (
	DefaultSkillWeight      = 40
	DefaultRoleWeight       = 20
	DefaultToolWeight       = 15
	DefaultExperienceWeight = 15
	DefaultPortfolioWeight  = 10
	DefaultQualityWeight    = 5

	DefaultMinimumScoreThreshold = 50
)

// JobRequirement represents a job's weighted matching requirements.
// The six category weights must sum to exactly 100; Validate enforces this at
// creation/update time so the scorer never sees an invalid requirement.
type JobRequirement struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description,omitempty"`

	MustHaveSkills   []string `json:"must_have_skills,omitempty"`
	NiceToHaveSkills []string `json:"nice_to_have_skills,omitempty"`
	RequiredTools    []string `json:"required_tools,omitempty"`
	RoleKeywords     []string `json:"role_keywords,omitempty"`

	SkillWeight      int `json:"skill_weight" validate:"gte=0,lte=100"`
	RoleWeight       int `json:"role_weight" validate:"gte=0,lte=100"`
	ToolWeight       int `json:"tool_weight" validate:"gte=0,lte=100"`
	ExperienceWeight int `json:"experience_weight" validate:"gte=0,lte=100"`
	PortfolioWeight  int `json:"portfolio_weight" validate:"gte=0,lte=100"`
	QualityWeight    int `json:"quality_weight" validate:"gte=0,lte=100"`

	MinimumScoreThreshold int `json:"minimum_score_threshold" validate:"gte=0,lte=100"`
}

var jobValidator = validator.New()

// NewJobRequirement returns a job requirement with the default weight split
func NewJobRequirement(title string) *JobRequirement {
	return &JobRequirement{
		Title:                 title,
		SkillWeight:           DefaultSkillWeight,
		RoleWeight:            DefaultRoleWeight,
		ToolWeight:            DefaultToolWeight,
		ExperienceWeight:      DefaultExperienceWeight,
		PortfolioWeight:       DefaultPortfolioWeight,
		QualityWeight:         DefaultQualityWeight,
		MinimumScoreThreshold: DefaultMinimumScoreThreshold,
	}
}

// WeightSum returns the sum of the six category weights
func (j *JobRequirement) WeightSum() int {
	return j.SkillWeight + j.RoleWeight + j.ToolWeight +
		j.ExperienceWeight + j.PortfolioWeight + j.QualityWeight
}

// Validate checks field constraints and the weight-sum invariant.
// A requirement that fails validation must never reach the scorer.
func (j *JobRequirement) Validate() error {
	if err := jobValidator.Struct(j); err != nil {
		return fmt.Errorf("invalid job requirement: %w", err)
	}
	if sum := j.WeightSum(); sum != 100 {
		return &WeightSumError{Sum: sum}
	}
	return nil
}

// WeightSumError reports category weights that do not sum to 100
type WeightSumError struct {
	Sum int
}

func (e *WeightSumError) Error() string {
	return fmt.Sprintf("category weights must sum to 100, got %d", e.Sum)
}
