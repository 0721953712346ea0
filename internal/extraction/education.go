package extraction

import (
	"regexp"
	"strings"

	"github.com/LakshyaPrd/cv-screening-new/internal/types"
)

var degreeKeywords = []string{
	"bachelor", "master", "phd", "doctorate", "diploma",
	"b.sc", "m.sc", "b.tech", "m.tech", "mba", "bba", "b.arch", "m.arch", "b.e",
}

var (
	yearPattern  = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	majorPattern = regexp.MustCompile(`(?i)(?:in|of)\s+([A-Za-z][A-Za-z\s]*?)(?:\s+from|\s+at|,|$)`)
	certPattern  = regexp.MustCompile(`(?i)(?:certified|certification|certificate)[:s]?\s+([A-Z][^\n,.]+?)(?:[,.]|$)`)
)

// ParseEducation extracts education entries from the education section lines.
// A line containing a degree keyword opens an entry; the following line is
// probed for the university and graduation year when the degree line itself
// carries neither.
func ParseEducation(lines []string, relevantFields []string) []types.EducationEntry {
	var entries []types.EducationEntry

	for i, line := range lines {
		lower := strings.ToLower(line)
		if !containsAnyFold(line, degreeKeywords) {
			continue
		}

		entry := types.EducationEntry{Degree: strings.TrimSpace(line)}

		if m := majorPattern.FindStringSubmatch(line); m != nil {
			entry.Major = strings.TrimSpace(m[1])
		}

		if year := yearPattern.FindString(line); year != "" {
			entry.GraduationYear = year
		} else if i+1 < len(lines) {
			entry.GraduationYear = yearPattern.FindString(lines[i+1])
		}

		if i+1 < len(lines) && !containsAnyFold(lines[i+1], degreeKeywords) {
			next := strings.TrimSpace(lines[i+1])
			// A year-only line is a date, not an institution.
			if next != entry.GraduationYear && len(strings.Fields(next)) >= 2 {
				entry.University = next
			}
		}

		for _, field := range relevantFields {
			if strings.Contains(lower, field) {
				entry.Relevant = true
				break
			}
		}

		entries = append(entries, entry)
	}

	return entries
}

// ExtractCertifications pulls certification phrases from the full raw text
func ExtractCertifications(text string) []string {
	var certs []string
	seen := make(map[string]struct{})
	for _, m := range certPattern.FindAllStringSubmatch(text, -1) {
		cert := strings.TrimSpace(m[1])
		if cert == "" {
			continue
		}
		key := strings.ToLower(cert)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		certs = append(certs, cert)
	}
	return certs
}
