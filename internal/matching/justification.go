package matching

import (
	"fmt"
	"strings"

	"github.com/LakshyaPrd/cv-screening-new/internal/types"
)

// listPreviewLimit caps how many terms a bullet names before collapsing the
// rest into an overflow count.
const listPreviewLimit = 3

// BuildJustification renders the human-readable bullet summary for a match
// result. Bullets appear in a fixed order and are omitted when their signal
// is empty; if nothing applies, a single fallback line is returned.
func BuildJustification(profile *types.ExtractedProfile, job *types.JobRequirement, result *types.MatchResult) string {
	var bullets []string

	// The matched count is keyed to must-haves even though MatchedSkills
	// carries both requirement tiers
	mustMatched := countMustHaveMatches(result.MatchedSkills, job.MustHaveSkills)
	if len(job.MustHaveSkills) > 0 && mustMatched > 0 {
		bullets = append(bullets, fmt.Sprintf("✓ Matches %d of %d required skills",
			mustMatched, len(job.MustHaveSkills)))
	}
	if len(result.MissingSkills) > 0 {
		bullets = append(bullets, fmt.Sprintf("✗ Missing required skills: %s",
			previewList(result.MissingSkills)))
	}

	switch result.RoleMatch {
	case types.RoleMatchExact:
		bullets = append(bullets, "✓ Role matches job title requirements")
	case types.RoleMatchEquivalent:
		bullets = append(bullets, "✓ Role matches an equivalent job title")
	}

	if len(result.MatchedTools) > 0 {
		bullets = append(bullets, fmt.Sprintf("✓ Proficient in required tools: %s",
			previewList(result.MatchedTools)))
	}
	if len(result.MissingTools) > 0 {
		bullets = append(bullets, fmt.Sprintf("✗ Missing required tools: %s",
			previewList(result.MissingTools)))
	}

	if n := len(profile.WorkHistory); n > 0 {
		noun := "entries"
		if n == 1 {
			noun = "entry"
		}
		bullets = append(bullets, fmt.Sprintf("✓ %d work experience %s listed", n, noun))
	}

	if refs := portfolioReferences(profile); refs > 0 {
		noun := "references"
		if refs == 1 {
			noun = "reference"
		}
		bullets = append(bullets, fmt.Sprintf("✓ %d portfolio %s found", refs, noun))
	}

	if profile.Email != "" && profile.Phone != "" {
		bullets = append(bullets, "✓ Complete contact information provided")
	}

	if len(bullets) == 0 {
		return "Minimal matching criteria found"
	}
	for i := range bullets {
		bullets[i] = "• " + bullets[i]
	}
	return strings.Join(bullets, "\n")
}

func countMustHaveMatches(matched, mustHave []string) int {
	must := termSet(mustHave)
	count := 0
	for _, term := range matched {
		if _, ok := must[term]; ok {
			count++
		}
	}
	return count
}

// previewList names up to listPreviewLimit terms, collapsing the remainder
// into "(+N more)".
func previewList(terms []string) string {
	if len(terms) <= listPreviewLimit {
		return strings.Join(terms, ", ")
	}
	return fmt.Sprintf("%s (+%d more)",
		strings.Join(terms[:listPreviewLimit], ", "), len(terms)-listPreviewLimit)
}

func portfolioReferences(profile *types.ExtractedProfile) int {
	return len(profile.PortfolioURLs) + len(profile.Projects)
}
