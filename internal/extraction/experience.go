package extraction

import (
	"strings"

	"github.com/LakshyaPrd/cv-screening-new/internal/types"
)

// minDescriptionWords is the minimum word count for a block line to be kept
// as a description line rather than dropped as layout noise.
const minDescriptionWords = 6

// headerLineWindow is how many leading block lines are probed for the
// title/company/date slots.
const headerLineWindow = 3

// maxTitleWords caps how long a line can be and still count as a job title
const maxTitleWords = 7

// ParseExperienceBlock parses a single segmented experience block into a work
// history entry. Slot rules apply in fixed priority order and first match
// wins: once a slot is filled no later candidate overwrites it. The bool
// result is false when the block has no parsable start date, in which case
// the entry must be discarded.
func ParseExperienceBlock(block []string) (types.WorkHistoryEntry, bool) {
	var entry types.WorkHistoryEntry
	if len(block) == 0 {
		return entry, false
	}

	// Priority 1: explicit "Title | Company" separator on the header line.
	header := block[0]
	if left, right, found := strings.Cut(header, "|"); found {
		entry.JobTitle = strings.TrimSpace(left)
		entry.Company = strings.TrimSpace(right)
	}

	window := min(len(block), headerLineWindow)

	// Priority 2: role-keyword line within the header window.
	if entry.JobTitle == "" {
		for _, line := range block[:window] {
			if containsAnyFold(line, roleKeywords) && len(strings.Fields(line)) <= maxTitleWords {
				entry.JobTitle = strings.TrimSpace(line)
				break
			}
		}
	}

	// Priority 3: company-keyword line within the header window.
	if entry.Company == "" {
		for _, line := range block[:window] {
			if containsAnyFold(line, companyKeywords) {
				entry.Company = strings.TrimSpace(line)
				break
			}
		}
	}

	// Priority 4: first date-range match fills start/end.
	for _, line := range block[:window] {
		if m := datePattern.FindStringSubmatch(line); m != nil {
			entry.StartDate = strings.TrimSpace(m[1])
			entry.EndDate = strings.TrimSpace(m[3])
			break
		}
	}

	// Remaining lines with enough words become description.
	for _, line := range block {
		if datePattern.MatchString(line) {
			continue
		}
		if line == entry.JobTitle || line == entry.Company {
			continue
		}
		if len(strings.Fields(line)) >= minDescriptionWords {
			entry.Description = append(entry.Description, line)
		}
	}

	return entry, entry.StartDate != ""
}

// ParseExperience parses all segmented experience blocks, discarding blocks
// without a start date.
func ParseExperience(blocks [][]string) []types.WorkHistoryEntry {
	var entries []types.WorkHistoryEntry
	for _, block := range blocks {
		if entry, ok := ParseExperienceBlock(block); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}
