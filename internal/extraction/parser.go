package extraction

import (
	"strings"

	"github.com/LakshyaPrd/cv-screening-new/internal/dictionaries"
	"github.com/LakshyaPrd/cv-screening-new/internal/types"
)

// Parser is the rule-based CV parser. It composes the contact extractor, the
// section segmenter, and the field parsers into a single pass over raw text.
// Parse never fails: fields that match nothing stay empty.
type Parser struct {
	dicts        *dictionaries.Dictionaries
	skillMatcher *TermMatcher
	toolMatcher  *TermMatcher
}

// NewParser builds a rule-based parser over the given dictionaries
func NewParser(dicts *dictionaries.Dictionaries) *Parser {
	return &Parser{
		dicts:        dicts,
		skillMatcher: NewTermMatcher(dicts.Skills),
		toolMatcher:  NewTermMatcher(dicts.Tools),
	}
}

// Parse extracts a full profile from raw CV text using pattern rules and
// dictionary lookups only.
func (p *Parser) Parse(text string) *types.ExtractedProfile {
	lines := CleanLines(text)
	segments := Segment(lines)
	contacts := ExtractContacts(text)

	educationLines := segments.EducationLines
	if len(educationLines) == 0 {
		// No education header found; probe all lines for degree keywords.
		educationLines = lines
	}

	profile := &types.ExtractedProfile{
		Name:            ExtractName(lines),
		Email:           contacts.Email,
		Phone:           contacts.Phone,
		LinkedIn:        contacts.LinkedIn,
		PortfolioURLs:   contacts.PortfolioURLs,
		Summary:         ExtractSummary(lines),
		CurrentPosition: ExtractPosition(lines),
		Discipline:      DetectDiscipline(text, p.dicts.DisciplineKeywords, p.dicts.DisciplineOrder),
		SubDiscipline:   DetectSubDiscipline(text),
		WorkHistory:     ParseExperience(segments.ExperienceBlocks),
		Projects:        ParseProjects(segments.ProjectBlocks),
		Education:       ParseEducation(educationLines, p.dicts.RelevantFields),
		Skills:          p.skillMatcher.Match(text),
		Tools:           p.toolMatcher.Match(text),
		Certifications:  ExtractCertifications(text),
		Source:          types.SourceRuleBased,
		RawText:         text,
	}

	return profile
}

// MatchSkills returns the dictionary skills present in text
func (p *Parser) MatchSkills(text string) []string {
	return p.skillMatcher.Match(text)
}

// MatchTools returns the dictionary tools present in text
func (p *Parser) MatchTools(text string) []string {
	return p.toolMatcher.Match(text)
}

// NormalizeTerms lower-cases, trims, and deduplicates a term list, preserving
// first-seen order.
func NormalizeTerms(terms []string) []string {
	seen := make(map[string]struct{}, len(terms))
	out := make([]string, 0, len(terms))
	for _, term := range terms {
		normalized := strings.ToLower(strings.TrimSpace(term))
		if normalized == "" {
			continue
		}
		if _, dup := seen[normalized]; dup {
			continue
		}
		seen[normalized] = struct{}{}
		out = append(out, normalized)
	}
	return out
}
