package evaluation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/LakshyaPrd/cv-screening-new/internal/dictionaries"
	"github.com/LakshyaPrd/cv-screening-new/internal/types"
)

// Default years assigned per proficiency tier when the text states none
const (
	defaultExpertYears       = 5.0
	defaultIntermediateYears = 3.0
	defaultBasicYears        = 1.0
)

// Aggregator derives experience metrics from an extracted profile
type Aggregator struct {
	dicts *dictionaries.Dictionaries
}

// NewAggregator builds an aggregator over the given dictionaries
func NewAggregator(dicts *dictionaries.Dictionaries) *Aggregator {
	return &Aggregator{dicts: dicts}
}

// Aggregate computes total and regional experience, the seniority tier, the
// large-organization flag, and per-tool software experience. Work history
// entries are annotated in place with their derived fields. Entries without
// a parseable start date contribute zero months and are never counted as
// regional.
func (a *Aggregator) Aggregate(profile *types.ExtractedProfile) types.AggregatedExperience {
	var totalMonths, regionalMonths int
	largeOrg := false

	for i := range profile.WorkHistory {
		entry := &profile.WorkHistory[i]
		entry.SeniorityTier = TierFromTitle(entry.JobTitle)

		months := a.entryMonths(entry)
		entry.DurationMonths = months
		totalMonths += months

		if months > 0 && a.isRegional(entry) {
			entry.Regional = true
			regionalMonths += months
		}

		if !largeOrg && a.isLargeOrg(entry) {
			largeOrg = true
		}
	}

	totalYears := roundYears(totalMonths)
	return types.AggregatedExperience{
		TotalYears:         totalYears,
		RegionalYears:      roundYears(regionalMonths),
		SeniorityTier:      a.dicts.SeniorityFor(totalYears),
		WorkedWithLargeOrg: largeOrg,
		Software:           a.softwareExperience(profile),
	}
}

func (a *Aggregator) entryMonths(entry *types.WorkHistoryEntry) int {
	start, ok := ParseFlexibleDate(entry.StartDate)
	if !ok {
		return 0
	}
	end, ok := ParseFlexibleDate(entry.EndDate)
	if !ok {
		// Open-ended entry with no end marker, treat as ongoing
		end, _ = ParseFlexibleDate("present")
	}
	return MonthsBetween(start, end)
}

func (a *Aggregator) isRegional(entry *types.WorkHistoryEntry) bool {
	text := strings.ToLower(entry.Text())
	for _, keyword := range a.dicts.RegionKeywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

func (a *Aggregator) isLargeOrg(entry *types.WorkHistoryEntry) bool {
	company := strings.ToLower(entry.Company)
	for _, employer := range a.dicts.LargeEmployers {
		if company != "" && strings.Contains(company, employer) {
			return true
		}
	}
	text := strings.ToLower(entry.Text())
	for _, phrase := range a.dicts.LargeOrgPhrases {
		if strings.Contains(text, phrase) {
			return true
		}
	}
	return false
}

// softwareExperience infers per-tool proficiency and years from the raw CV
// text. Proficiency comes from nearby qualifier keywords, defaulting to
// Intermediate; years come from an explicit "<N> years" statement near the
// tool name, else from the tier default.
func (a *Aggregator) softwareExperience(profile *types.ExtractedProfile) []types.SoftwareExperience {
	if len(profile.Tools) == 0 {
		return nil
	}

	text := strings.ToLower(profile.RawText)
	out := make([]types.SoftwareExperience, 0, len(profile.Tools))
	for _, tool := range profile.Tools {
		proficiency := a.proficiencyFor(text, strings.ToLower(tool))
		years, explicit := yearsNear(text, strings.ToLower(tool))
		if !explicit {
			switch proficiency {
			case types.ProficiencyExpert:
				years = defaultExpertYears
			case types.ProficiencyBasic:
				years = defaultBasicYears
			default:
				years = defaultIntermediateYears
			}
		}
		out = append(out, types.SoftwareExperience{
			Software:    tool,
			Proficiency: proficiency,
			Years:       years,
		})
	}
	return out
}

// contextWindow is how many characters around a tool mention are scanned for
// proficiency qualifiers and year counts.
const contextWindow = 80

func (a *Aggregator) proficiencyFor(text, tool string) string {
	context := contextAround(text, tool)
	if context == "" {
		return types.ProficiencyIntermediate
	}
	for _, kw := range a.dicts.ExpertKeywords {
		if strings.Contains(context, kw) {
			return types.ProficiencyExpert
		}
	}
	for _, kw := range a.dicts.BasicKeywords {
		if strings.Contains(context, kw) {
			return types.ProficiencyBasic
		}
	}
	return types.ProficiencyIntermediate
}

func contextAround(text, tool string) string {
	idx := strings.Index(text, tool)
	if idx < 0 {
		return ""
	}
	lo := idx - contextWindow
	if lo < 0 {
		lo = 0
	}
	hi := idx + len(tool) + contextWindow
	if hi > len(text) {
		hi = len(text)
	}
	return text[lo:hi]
}

// yearsNear finds an explicit "<N> years" or "<N>+ years" statement in the
// context window around the tool mention.
func yearsNear(text, tool string) (float64, bool) {
	context := contextAround(text, tool)
	if context == "" {
		return 0, false
	}
	m := yearsPattern.FindStringSubmatch(context)
	if m == nil {
		return 0, false
	}
	years, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return years, true
}

var yearsPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*\+?\s*(?:years?|yrs?)`)

// TierFromTitle infers a position's seniority tier from its job title.
// Unrecognized titles read as Mid-Level.
func TierFromTitle(title string) string {
	t := strings.ToLower(title)
	switch {
	case t == "":
		return ""
	case strings.Contains(t, "director") || strings.Contains(t, "manager") || strings.Contains(t, "head of"):
		return "Manager"
	case strings.Contains(t, "lead") || strings.Contains(t, "principal"):
		return "Lead"
	case strings.Contains(t, "senior") || strings.Contains(t, "sr."):
		return "Senior"
	case strings.Contains(t, "junior") || strings.Contains(t, "jr.") ||
		strings.Contains(t, "intern") || strings.Contains(t, "trainee") || strings.Contains(t, "graduate"):
		return "Junior"
	default:
		return "Mid-Level"
	}
}

// roundYears converts whole months to years rounded to one decimal place
func roundYears(months int) float64 {
	years := float64(months) / 12.0
	rounded, _ := strconv.ParseFloat(fmt.Sprintf("%.1f", years), 64)
	return rounded
}
