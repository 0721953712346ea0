package extraction

import (
	"regexp"
	"strings"
)

// SectionKind identifies which named CV section the segmenter is inside
type SectionKind int

// Section kinds recognized by the segmenter
const (
	SectionNone SectionKind = iota
	SectionExperience
	SectionProjects
	SectionEducation
	SectionSkills
	SectionCertifications
)

// datePattern matches a date range like "Jan 2020 - Present" or "2017 – 2019".
// A line matching it starts a new experience block even without a header.
var datePattern = regexp.MustCompile(
	`(?i)((Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Sept|Oct|Nov|Dec)[a-z]*\s+\d{4}|\d{4})` +
		`\s*(?:[-–—]|to)+\s*` +
		`(Present|Current|Now|(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Sept|Oct|Nov|Dec)[a-z]*\s+\d{4}|\d{4})`)

// numberedMarker matches a numbered list item, e.g. "1. Riyadh Metro Station"
var numberedMarker = regexp.MustCompile(`^\d+[.)]\s+`)

var pageMarker = regexp.MustCompile(`^(--- Page|Page \d+)`)

// Role and company keywords drive the content heuristics when no section
// header is present.
var (
	roleKeywords = []string{
		"engineer", "manager", "modeler", "technician", "designer",
		"supervisor", "coordinator", "specialist", "architect", "draftsman",
	}
	companyKeywords = []string{
		"llc", "ltd", "private", "pvt", "consult", "consultancy", "contracting",
		"engineering", "infrastructure", "services", "global", "solutions",
	}
	buildingKeywords = []string{
		"hotel", "residence", "tower", "villa", "mall", "metro", "airport",
		"bridge", "complex", "station", "g+", "b+",
	}
	locationKeywords = []string{
		"uae", "dubai", "abu dhabi", "sharjah", "riyadh", "jeddah", "dammam",
		"neom", "ksa", "saudi", "qatar", "doha", "oman", "muscat", "bahrain",
		"kuwait", "gcc", "usa",
	}
)

// sectionHeaders maps whole-line header text to the section it opens
var sectionHeaders = map[string]SectionKind{
	"experience":              SectionExperience,
	"work experience":         SectionExperience,
	"employment history":      SectionExperience,
	"professional experience": SectionExperience,
	"career history":          SectionExperience,
	"projects":                SectionProjects,
	"key projects":            SectionProjects,
	"project experience":      SectionProjects,
	"education":               SectionEducation,
	"academic":                SectionEducation,
	"academic qualifications": SectionEducation,
	"qualifications":          SectionEducation,
	"skills":                  SectionSkills,
	"technical skills":        SectionSkills,
	"tools":                   SectionSkills,
	"software":                SectionSkills,
	"certifications":          SectionCertifications,
	"certificates":            SectionCertifications,
}

// Segments holds the output of one segmentation pass
type Segments struct {
	Lines            []string
	ExperienceBlocks [][]string
	ProjectBlocks    [][]string
	EducationLines   []string
}

// CleanLines strips blank lines, surrounding whitespace, and page-break
// markers, preserving the original line order.
func CleanLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || pageMarker.MatchString(line) {
			continue
		}
		out = append(out, line)
	}
	return out
}

// HeaderSection reports the section a whole-line header opens, if any
func HeaderSection(line string) (SectionKind, bool) {
	normalized := strings.ToLower(strings.TrimSpace(strings.Trim(line, ":")))
	kind, ok := sectionHeaders[normalized]
	return kind, ok
}

// startsExperienceBlock reports whether a line begins a new experience entry:
// either a date-range line, or a "Title | Company" style line mixing a role
// keyword with a separator token.
func startsExperienceBlock(line string) bool {
	if datePattern.MatchString(line) {
		return true
	}
	return hasSeparator(line) && containsAnyFold(line, roleKeywords)
}

// startsProjectBlock reports whether a line begins a new project entry: a
// numbered list marker, or a building keyword together with a location keyword.
func startsProjectBlock(line string) bool {
	if numberedMarker.MatchString(line) {
		return true
	}
	return containsAnyFold(line, buildingKeywords) && containsAnyFold(line, locationKeywords)
}

func hasSeparator(line string) bool {
	return strings.Contains(line, "|") ||
		strings.Contains(line, " - ") ||
		strings.Contains(line, " — ")
}

func containsAnyFold(line string, keywords []string) bool {
	lower := strings.ToLower(line)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Segment performs a single forward pass over the cleaned lines, accumulating
// contiguous blocks per section. A block starts when a line satisfies the
// section's start predicate; the current block is flushed whenever the
// segmentation mode changes.
func Segment(lines []string) *Segments {
	seg := &Segments{Lines: lines}

	section := SectionNone
	var current []string
	currentKind := SectionNone

	flush := func() {
		if len(current) == 0 {
			return
		}
		switch currentKind {
		case SectionExperience:
			seg.ExperienceBlocks = append(seg.ExperienceBlocks, current)
		case SectionProjects:
			seg.ProjectBlocks = append(seg.ProjectBlocks, current)
		}
		current = nil
	}

	for _, line := range lines {
		if kind, isHeader := HeaderSection(line); isHeader {
			flush()
			section = kind
			continue
		}

		switch section {
		case SectionProjects:
			if startsProjectBlock(line) {
				flush()
				currentKind = SectionProjects
				current = []string{line}
			} else if len(current) > 0 {
				current = append(current, line)
			}
		case SectionEducation:
			seg.EducationLines = append(seg.EducationLines, line)
		case SectionSkills, SectionCertifications:
			// Dictionary matching runs over the whole text; nothing to collect.
		default:
			// Experience section, or no section yet: content heuristics decide.
			if startsExperienceBlock(line) {
				flush()
				currentKind = SectionExperience
				current = []string{line}
			} else if len(current) > 0 {
				current = append(current, line)
			}
		}
	}
	flush()

	return seg
}
