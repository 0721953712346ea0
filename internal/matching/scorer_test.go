package matching

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LakshyaPrd/cv-screening-new/internal/dictionaries"
	"github.com/LakshyaPrd/cv-screening-new/internal/types"
)

func testScorer() *Scorer {
	return NewScorer(dictionaries.Default())
}

func TestScoreSkillsPartialMustHaveCurve(t *testing.T) {
	profile := &types.ExtractedProfile{Skills: []string{"revit"}}
	job := types.NewJobRequirement("BIM Modeler")
	job.MustHaveSkills = []string{"revit", "autocad"}
	job.NiceToHaveSkills = []string{"lumion"}

	result := testScorer().Score(profile, job)

	// 75% of the 40-point budget is 30; one of two matches earns
	// 30 * (0.85 + 0.15*0.5) = 27.75, and the unmet nice-to-have adds nothing
	assert.InDelta(t, 27.75, result.SkillScore, 0.001)
	assert.Equal(t, []string{"revit"}, result.MatchedSkills)
	assert.Equal(t, []string{"autocad"}, result.MissingSkills)
}

func TestScoreSkillsEmptyRequirementsAwardFullBudget(t *testing.T) {
	profile := &types.ExtractedProfile{}
	job := types.NewJobRequirement("Open Role")

	result := testScorer().Score(profile, job)

	assert.InDelta(t, float64(job.SkillWeight), result.SkillScore, 0.001)
}

func TestScoreSkillsAllMatchedEarnsFullBudget(t *testing.T) {
	profile := &types.ExtractedProfile{Skills: []string{"Revit", "AutoCAD"}}
	job := types.NewJobRequirement("BIM Modeler")
	job.MustHaveSkills = []string{"revit", "autocad"}

	result := testScorer().Score(profile, job)

	assert.InDelta(t, float64(job.SkillWeight), result.SkillScore, 0.001)
	assert.Empty(t, result.MissingSkills)
}

func TestScoreSkillsMatchedListCoversBothTiers(t *testing.T) {
	profile := &types.ExtractedProfile{Skills: []string{"revit", "lumion"}}
	job := types.NewJobRequirement("BIM Modeler")
	job.MustHaveSkills = []string{"revit", "autocad"}
	job.NiceToHaveSkills = []string{"lumion", "enscape"}

	result := testScorer().Score(profile, job)

	assert.Equal(t, []string{"lumion", "revit"}, result.MatchedSkills)
	assert.Equal(t, []string{"autocad"}, result.MissingSkills)
	// The justification count stays keyed to must-haves
	assert.Contains(t, result.Justification, "Matches 1 of 2 required skills")
}

func TestScoreRoleExactKeyword(t *testing.T) {
	profile := &types.ExtractedProfile{CurrentPosition: "Senior BIM Architect"}
	job := types.NewJobRequirement("BIM Architect")
	job.RoleKeywords = []string{"bim architect"}

	result := testScorer().Score(profile, job)

	assert.Equal(t, types.RoleMatchExact, result.RoleMatch)
	assert.InDelta(t, float64(job.RoleWeight), result.RoleScore, 0.001)
}

func TestScoreRoleEquivalentTitle(t *testing.T) {
	profile := &types.ExtractedProfile{CurrentPosition: "BIM Coordinator"}
	job := types.NewJobRequirement("BIM Manager")
	job.RoleKeywords = []string{"bim manager"}

	result := testScorer().Score(profile, job)

	assert.Equal(t, types.RoleMatchEquivalent, result.RoleMatch)
	assert.InDelta(t, float64(job.RoleWeight)*0.75, result.RoleScore, 0.001)
}

func TestScoreRoleNoMatchScoresZero(t *testing.T) {
	profile := &types.ExtractedProfile{CurrentPosition: "Accountant"}
	job := types.NewJobRequirement("BIM Manager")
	job.RoleKeywords = []string{"bim manager"}

	result := testScorer().Score(profile, job)

	assert.Equal(t, types.RoleMatchNone, result.RoleMatch)
	assert.Zero(t, result.RoleScore)
}

func TestScoreRoleNoKeywordsAwardsFullBudget(t *testing.T) {
	profile := &types.ExtractedProfile{}
	job := types.NewJobRequirement("Generalist")

	result := testScorer().Score(profile, job)

	assert.Equal(t, types.RoleMatchNoRequirements, result.RoleMatch)
	assert.InDelta(t, float64(job.RoleWeight), result.RoleScore, 0.001)
}

func TestScoreToolsEmptyRequirementsAwardFullBudget(t *testing.T) {
	profile := &types.ExtractedProfile{}
	job := types.NewJobRequirement("Open Role")

	result := testScorer().Score(profile, job)

	assert.InDelta(t, float64(job.ToolWeight), result.ToolScore, 0.001)
}

func TestScoreToolsPartialMatchCurve(t *testing.T) {
	profile := &types.ExtractedProfile{Tools: []string{"navisworks"}}
	job := types.NewJobRequirement("Coordinator")
	job.RequiredTools = []string{"navisworks", "revit"}

	result := testScorer().Score(profile, job)

	// 15 * (0.90 + 0.10*0.5) = 14.25
	assert.InDelta(t, 14.25, result.ToolScore, 0.001)
	assert.Equal(t, []string{"navisworks"}, result.MatchedTools)
	assert.Equal(t, []string{"revit"}, result.MissingTools)
}

func TestScoreExperienceNeverZero(t *testing.T) {
	job := types.NewJobRequirement("Any Role")

	withHistory := testScorer().Score(&types.ExtractedProfile{
		WorkHistory: []types.WorkHistoryEntry{{JobTitle: "Engineer"}},
	}, job)
	withoutHistory := testScorer().Score(&types.ExtractedProfile{}, job)

	assert.InDelta(t, float64(job.ExperienceWeight), withHistory.ExperienceScore, 0.001)
	assert.InDelta(t, float64(job.ExperienceWeight)*0.70, withoutHistory.ExperienceScore, 0.001)
}

func TestScorePortfolioZeroWithoutSignals(t *testing.T) {
	profile := &types.ExtractedProfile{RawText: "general background text"}
	job := types.NewJobRequirement("Designer")
	job.MustHaveSkills = []string{"revit"}

	result := testScorer().Score(profile, job)

	assert.Zero(t, result.PortfolioScore)
}

func TestScorePortfolioBasePlusRatioBonus(t *testing.T) {
	profile := &types.ExtractedProfile{
		RawText:       "Delivered Revit models for metro stations",
		PortfolioURLs: []string{"https://portfolio.example.com"},
	}
	job := types.NewJobRequirement("Designer")
	job.MustHaveSkills = []string{"revit", "autocad"}

	result := testScorer().Score(profile, job)

	// 10 * 0.80 + 10 * 0.20 * (1/2) = 9.0
	assert.InDelta(t, 9.0, result.PortfolioScore, 0.001)
}

func TestScoreQualityFullWithCompleteContacts(t *testing.T) {
	job := types.NewJobRequirement("Any Role")

	complete := testScorer().Score(&types.ExtractedProfile{
		Email: "a@b.com", Phone: "+971501234567",
	}, job)
	partial := testScorer().Score(&types.ExtractedProfile{Email: "a@b.com"}, job)

	assert.InDelta(t, float64(job.QualityWeight), complete.QualityScore, 0.001)
	assert.InDelta(t, float64(job.QualityWeight)*0.90, partial.QualityScore, 0.001)
}

func TestScoreTotalWithinBounds(t *testing.T) {
	profile := &types.ExtractedProfile{
		Skills:      []string{"revit", "autocad", "bim coordination"},
		Tools:       []string{"navisworks", "revit"},
		Email:       "candidate@example.com",
		Phone:       "+971501234567",
		RawText:     "Senior BIM Architect with Revit and Navisworks experience",
		WorkHistory: []types.WorkHistoryEntry{{JobTitle: "BIM Architect"}},
	}
	job := types.NewJobRequirement("BIM Architect")
	job.MustHaveSkills = []string{"revit"}
	job.RequiredTools = []string{"navisworks"}
	job.RoleKeywords = []string{"bim architect"}

	result := testScorer().Score(profile, job)

	assert.GreaterOrEqual(t, result.TotalScore, 0.0)
	assert.LessOrEqual(t, result.TotalScore, 100.0)
	assert.Greater(t, result.TotalScore, 85.0)
	assert.Contains(t, result.Justification, "✓ Matches 1 of 1 required skills")
}

func TestScoreDeterministicForSamePair(t *testing.T) {
	profile := &types.ExtractedProfile{
		Skills: []string{"revit"},
		Tools:  []string{"navisworks"},
	}
	job := types.NewJobRequirement("BIM Modeler")
	job.MustHaveSkills = []string{"revit", "autocad"}
	job.RequiredTools = []string{"navisworks"}

	scorer := testScorer()
	first := scorer.Score(profile, job)
	second := scorer.Score(profile, job)

	assert.Equal(t, first.TotalScore, second.TotalScore)
	assert.Equal(t, first.SkillScore, second.SkillScore)
	assert.Equal(t, first.Justification, second.Justification)
}

func TestScoreForPairStampsIdentifiers(t *testing.T) {
	candidateID := uuid.New()
	jobID := uuid.New()
	job := types.NewJobRequirement("Any Role")

	result := testScorer().ScoreForPair(candidateID, jobID, &types.ExtractedProfile{}, job)

	require.NotEqual(t, uuid.Nil, result.ID)
	assert.Equal(t, candidateID, result.CandidateID)
	assert.Equal(t, jobID, result.JobID)
}
