package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LakshyaPrd/cv-screening-new/internal/dictionaries"
	"github.com/LakshyaPrd/cv-screening-new/internal/extraction"
	"github.com/LakshyaPrd/cv-screening-new/internal/types"
)

// stubExtractor returns a canned profile or error
type stubExtractor struct {
	profile *types.ExtractedProfile
	err     error
}

func (s *stubExtractor) Name() string { return "stub" }

func (s *stubExtractor) Extract(ctx context.Context, text string) (*types.ExtractedProfile, error) {
	return s.profile, s.err
}

const pipelineSample = `Ahmed Hassan
ahmed.hassan@example.com | +971 50 123 4567

Senior BIM Engineer with experience in Revit and Navisworks coordination.
`

func ruleParser() *extraction.Parser {
	return extraction.NewParser(dictionaries.Default())
}

func TestParseRuleOnlyWithoutAI(t *testing.T) {
	p := New(ruleParser(), nil, nil)

	profile := p.Parse(context.Background(), pipelineSample)

	require.NotNil(t, profile)
	assert.Equal(t, types.SourceRuleBased, profile.Source)
	assert.Equal(t, "ahmed.hassan@example.com", profile.Email)
}

func TestParseFallsBackWhenAIFails(t *testing.T) {
	ai := &stubExtractor{err: errors.New("quota exceeded")}
	p := New(ruleParser(), ai, nil)

	profile := p.Parse(context.Background(), pipelineSample)

	require.NotNil(t, profile)
	assert.Equal(t, types.SourceRuleBased, profile.Source)
	assert.Equal(t, "ahmed.hassan@example.com", profile.Email)
}

func TestParseMergesAIWithRuleBasedContacts(t *testing.T) {
	ai := &stubExtractor{profile: &types.ExtractedProfile{
		Name:   "Ahmed Hassan",
		Email:  "wrong@wrong.example",
		Phone:  "000",
		Skills: []string{"bim coordination", "revit"},
		Source: types.SourceAI,
	}}
	p := New(ruleParser(), ai, nil)

	profile := p.Parse(context.Background(), pipelineSample)

	require.NotNil(t, profile)
	assert.Equal(t, types.SourceHybrid, profile.Source)
	assert.Equal(t, "Ahmed Hassan", profile.Name)
	// Contacts always come from the rule-based path
	assert.Equal(t, "ahmed.hassan@example.com", profile.Email)
	assert.NotEqual(t, "000", profile.Phone)
}

func TestParseMergedSkillsAreUnion(t *testing.T) {
	ai := &stubExtractor{profile: &types.ExtractedProfile{
		Skills: []string{"BIM Coordination", "clash detection"},
		Source: types.SourceAI,
	}}
	p := New(ruleParser(), ai, nil)

	profile := p.Parse(context.Background(), pipelineSample)

	assert.Contains(t, profile.Skills, "bim coordination")
	assert.Contains(t, profile.Skills, "clash detection")
	// Rule-based path found revit in the sample text
	assert.Contains(t, profile.Skills, "revit")
}

func TestParseNeverFailsOnArbitraryText(t *testing.T) {
	p := New(ruleParser(), nil, nil)

	profile := p.Parse(context.Background(), "%%% not a cv at all &&&")

	require.NotNil(t, profile)
	assert.Equal(t, types.StatusLowConfidence, profile.Status)
}

func TestParseStampsConfidence(t *testing.T) {
	p := New(ruleParser(), nil, nil)

	profile := p.Parse(context.Background(), pipelineSample)

	assert.Positive(t, profile.Confidence)
	assert.NotEmpty(t, profile.Status)
}
