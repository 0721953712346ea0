// Package pipeline composes the rule-based parser and the AI extractor into
// a single extraction entry point with confidence scoring.
package pipeline

import (
	"context"

	"go.uber.org/zap"

	"github.com/LakshyaPrd/cv-screening-new/internal/extraction"
	"github.com/LakshyaPrd/cv-screening-new/internal/types"
)

// Extractor is an extraction strategy. Implementations may fail; the
// pipeline handles fallback.
type Extractor interface {
	// Name identifies the strategy for logging
	Name() string
	// Extract parses raw CV text into a structured profile
	Extract(ctx context.Context, text string) (*types.ExtractedProfile, error)
}

// Pipeline orchestrates extraction. Contacts and tools always come from the
// rule-based path; when the AI strategy is configured and succeeds, its
// fields are used verbatim with skills merged as the union of both paths.
// Parse never fails: every AI error degrades to the rule-based result.
type Pipeline struct {
	rule   *extraction.Parser
	ai     Extractor
	logger *zap.Logger
}

// New builds a pipeline. ai may be nil, in which case extraction is purely
// rule-based.
func New(rule *extraction.Parser, ai Extractor, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{rule: rule, ai: ai, logger: logger}
}

// Parse extracts a profile from raw CV text. The worst case, arbitrary text
// matching no pattern, still returns a profile with whatever contacts and
// tools were found.
func (p *Pipeline) Parse(ctx context.Context, text string) *types.ExtractedProfile {
	ruleProfile := p.rule.Parse(text)

	profile := ruleProfile
	if p.ai != nil {
		aiProfile, err := p.ai.Extract(ctx, text)
		if err != nil {
			p.logger.Warn("ai extraction unavailable, using rule-based profile",
				zap.String("strategy", p.ai.Name()),
				zap.Error(err))
		} else {
			profile = merge(ruleProfile, aiProfile)
		}
	}

	ApplyConfidence(profile)
	p.logger.Info("profile extracted",
		zap.String("source", string(profile.Source)),
		zap.Int("confidence", profile.Confidence),
		zap.String("status", profile.Status),
		zap.Int("work_entries", len(profile.WorkHistory)),
		zap.Int("skills", len(profile.Skills)))
	return profile
}

// merge combines the two paths: AI fields win verbatim, except contacts and
// tools which always come from the rule-based path, and skills which are the
// union of both.
func merge(rule, ai *types.ExtractedProfile) *types.ExtractedProfile {
	merged := *ai

	merged.Email = rule.Email
	merged.Phone = rule.Phone
	merged.LinkedIn = rule.LinkedIn
	merged.PortfolioURLs = rule.PortfolioURLs
	merged.Tools = rule.Tools

	merged.Skills = extraction.NormalizeTerms(append(append([]string{}, ai.Skills...), rule.Skills...))

	if merged.SubDiscipline == "" {
		merged.SubDiscipline = rule.SubDiscipline
	}

	merged.Source = types.SourceHybrid
	return &merged
}
