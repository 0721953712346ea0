// Package matching implements the weighted six-category scoring engine that
// ranks candidate profiles against job requirements.
package matching

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/LakshyaPrd/cv-screening-new/internal/dictionaries"
	"github.com/LakshyaPrd/cv-screening-new/internal/types"
)

// Generous-curve scoring constants. Any nonzero match ratio earns the base
// fraction of the sub-budget, with the remainder scaled by the ratio, so
// scoring rewards presence over completeness. These values are policy and
// must stay exactly as documented for output compatibility.
const (
	// Must-have skills take 75% of the skill budget, nice-to-have the rest
	mustHaveShare   = 0.75
	niceToHaveShare = 0.25

	mustHaveBase  = 0.85
	mustHaveBonus = 0.15

	niceToHaveBase  = 0.90
	niceToHaveBonus = 0.10

	toolBase  = 0.90
	toolBonus = 0.10

	// Equivalent role titles earn a reduced share of the role budget
	equivalentRoleShare = 0.75

	// Candidates with no parsed experience still earn most of the budget
	noExperienceShare = 0.70

	portfolioBase  = 0.80
	portfolioBonus = 0.20

	qualityBase = 0.90
)

// Scorer computes match results. Aside from the injected dictionaries it is
// stateless: scoring the same pair twice yields identical results.
type Scorer struct {
	dicts *dictionaries.Dictionaries
}

// NewScorer returns a match scorer using the given dictionaries for
// role-equivalent lookups
func NewScorer(dicts *dictionaries.Dictionaries) *Scorer {
	return &Scorer{dicts: dicts}
}

// Score evaluates one profile against one job requirement. The requirement
// must already be validated; Score assumes the six weights sum to 100.
func (s *Scorer) Score(profile *types.ExtractedProfile, job *types.JobRequirement) *types.MatchResult {
	result := &types.MatchResult{
		CreatedAt: time.Now().UTC(),
	}

	result.SkillScore = s.scoreSkills(profile, job, result)
	result.RoleScore = s.scoreRole(profile, job, result)
	result.ToolScore = s.scoreTools(profile, job, result)
	result.ExperienceScore = s.scoreExperience(profile, job)
	result.PortfolioScore = s.scorePortfolio(profile, job)
	result.QualityScore = s.scoreQuality(profile, job)

	result.TotalScore = clamp(
		result.SkillScore+result.RoleScore+result.ToolScore+
			result.ExperienceScore+result.PortfolioScore+result.QualityScore,
		0, 100)

	result.Justification = BuildJustification(profile, job, result)
	return result
}

// ScoreForPair is Score plus identifier stamping for persistence
func (s *Scorer) ScoreForPair(candidateID, jobID uuid.UUID, profile *types.ExtractedProfile, job *types.JobRequirement) *types.MatchResult {
	result := s.Score(profile, job)
	result.ID = uuid.New()
	result.CandidateID = candidateID
	result.JobID = jobID
	return result
}

// scoreSkills splits the skill budget into must-have and nice-to-have
// sub-budgets, each scored on its own generous curve. Empty requirement sets
// award their full sub-budget.
func (s *Scorer) scoreSkills(profile *types.ExtractedProfile, job *types.JobRequirement, result *types.MatchResult) float64 {
	budget := float64(job.SkillWeight)
	mustBudget := budget * mustHaveShare
	niceBudget := budget * niceToHaveShare

	candidate := termSet(profile.Skills)

	matched, missing := partition(job.MustHaveSkills, candidate)
	niceMatched, _ := partition(job.NiceToHaveSkills, candidate)

	// The reported match list covers both requirement tiers; missing skills
	// track must-haves only
	result.MatchedSkills = mergeTerms(matched, niceMatched)
	result.MissingSkills = missing

	mustScore := curveScore(len(matched), len(job.MustHaveSkills), mustBudget, mustHaveBase, mustHaveBonus)
	niceScore := curveScore(len(niceMatched), len(job.NiceToHaveSkills), niceBudget, niceToHaveBase, niceToHaveBonus)

	return clamp(mustScore+niceScore, 0, budget)
}

// scoreRole awards the full budget on an exact role-keyword hit in the
// candidate's free text, a reduced share on an equivalent-title hit, and the
// full budget when the job lists no role keywords.
func (s *Scorer) scoreRole(profile *types.ExtractedProfile, job *types.JobRequirement, result *types.MatchResult) float64 {
	budget := float64(job.RoleWeight)
	if len(job.RoleKeywords) == 0 {
		result.RoleMatch = types.RoleMatchNoRequirements
		return budget
	}

	text := strings.ToLower(profile.RawText + " " + profile.CurrentPosition)

	for _, keyword := range job.RoleKeywords {
		if keyword = normalizeTerm(keyword); keyword != "" && strings.Contains(text, keyword) {
			result.RoleMatch = types.RoleMatchExact
			return budget
		}
	}

	for _, keyword := range job.RoleKeywords {
		for _, equivalent := range s.dicts.EquivalentsFor(keyword) {
			if equivalent != "" && strings.Contains(text, equivalent) {
				result.RoleMatch = types.RoleMatchEquivalent
				return clamp(budget*equivalentRoleShare, 0, budget)
			}
		}
	}

	result.RoleMatch = types.RoleMatchNone
	return 0
}

// scoreTools applies the single-tier generous curve to required tools
func (s *Scorer) scoreTools(profile *types.ExtractedProfile, job *types.JobRequirement, result *types.MatchResult) float64 {
	budget := float64(job.ToolWeight)

	candidate := termSet(profile.Tools)
	matched, missing := partition(job.RequiredTools, candidate)
	result.MatchedTools = matched
	result.MissingTools = missing

	return clamp(curveScore(len(matched), len(job.RequiredTools), budget, toolBase, toolBonus), 0, budget)
}

// scoreExperience never scores zero: candidates with no parsed entries still
// earn 70% of the budget.
func (s *Scorer) scoreExperience(profile *types.ExtractedProfile, job *types.JobRequirement) float64 {
	budget := float64(job.ExperienceWeight)
	if len(profile.WorkHistory) > 0 {
		return budget
	}
	return clamp(budget*noExperienceShare, 0, budget)
}

// scorePortfolio awards the base share for any portfolio link or free-text
// keyword hit, plus a bonus proportional to the keyword match ratio against
// the union of role keywords and must-have skills.
func (s *Scorer) scorePortfolio(profile *types.ExtractedProfile, job *types.JobRequirement) float64 {
	budget := float64(job.PortfolioWeight)
	text := strings.ToLower(profile.RawText)

	keywords := make(map[string]struct{})
	for _, k := range job.RoleKeywords {
		if k = normalizeTerm(k); k != "" {
			keywords[k] = struct{}{}
		}
	}
	for _, k := range job.MustHaveSkills {
		if k = normalizeTerm(k); k != "" {
			keywords[k] = struct{}{}
		}
	}

	hits := 0
	for k := range keywords {
		if strings.Contains(text, k) {
			hits++
		}
	}

	if len(profile.PortfolioURLs) == 0 && hits == 0 {
		return 0
	}

	score := budget * portfolioBase
	if len(keywords) > 0 {
		ratio := float64(hits) / float64(len(keywords))
		score += budget * portfolioBonus * ratio
	}
	return clamp(score, 0, budget)
}

// scoreQuality awards 90% of the budget by default, raised to the full
// budget when both email and phone are present. Extraction confidence is
// deliberately not consulted here.
func (s *Scorer) scoreQuality(profile *types.ExtractedProfile, job *types.JobRequirement) float64 {
	budget := float64(job.QualityWeight)
	if profile.Email != "" && profile.Phone != "" {
		return budget
	}
	return clamp(budget*qualityBase, 0, budget)
}

// curveScore applies the generous curve: zero matches score zero, any match
// earns base plus a ratio-scaled bonus. An empty requirement set awards the
// full budget.
func curveScore(matched, required int, budget, base, bonus float64) float64 {
	if required == 0 {
		return budget
	}
	if matched == 0 {
		return 0
	}
	ratio := float64(matched) / float64(required)
	return budget * (base + bonus*ratio)
}

// partition splits job terms into those present in the candidate set and
// those missing, both normalized and sorted.
func partition(jobTerms []string, candidate map[string]struct{}) (matched, missing []string) {
	seen := make(map[string]struct{}, len(jobTerms))
	for _, term := range jobTerms {
		term = normalizeTerm(term)
		if term == "" {
			continue
		}
		if _, dup := seen[term]; dup {
			continue
		}
		seen[term] = struct{}{}
		if _, ok := candidate[term]; ok {
			matched = append(matched, term)
		} else {
			missing = append(missing, term)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)
	return matched, missing
}

// mergeTerms unions two normalized term lists into a sorted set
func mergeTerms(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	var out []string
	for _, term := range append(append([]string{}, a...), b...) {
		if _, dup := seen[term]; dup {
			continue
		}
		seen[term] = struct{}{}
		out = append(out, term)
	}
	sort.Strings(out)
	return out
}

func termSet(terms []string) map[string]struct{} {
	set := make(map[string]struct{}, len(terms))
	for _, term := range terms {
		if term = normalizeTerm(term); term != "" {
			set[term] = struct{}{}
		}
	}
	return set
}

func normalizeTerm(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
