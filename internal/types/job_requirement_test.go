package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJobRequirementDefaultsSumToHundred(t *testing.T) {
	job := NewJobRequirement("BIM Modeler")

	assert.Equal(t, 100, job.WeightSum())
	assert.Equal(t, DefaultMinimumScoreThreshold, job.MinimumScoreThreshold)
	require.NoError(t, job.Validate())
}

func TestValidateRejectsWeightSumMismatch(t *testing.T) {
	job := NewJobRequirement("BIM Modeler")
	job.SkillWeight = 50

	err := job.Validate()

	require.Error(t, err)
	var weightErr *WeightSumError
	require.ErrorAs(t, err, &weightErr)
	assert.Equal(t, 110, weightErr.Sum)
	assert.Contains(t, err.Error(), "must sum to 100")
}

func TestValidateRequiresTitle(t *testing.T) {
	job := NewJobRequirement("")

	assert.Error(t, job.Validate())
}

func TestValidateRejectsOutOfRangeWeight(t *testing.T) {
	job := NewJobRequirement("BIM Modeler")
	job.SkillWeight = 120
	job.RoleWeight = -20

	assert.Error(t, job.Validate())
}

func TestValidateAcceptsCustomSplit(t *testing.T) {
	job := NewJobRequirement("BIM Modeler")
	job.SkillWeight = 60
	job.RoleWeight = 0
	job.ToolWeight = 20
	job.ExperienceWeight = 10
	job.PortfolioWeight = 5
	job.QualityWeight = 5

	assert.NoError(t, job.Validate())
}
