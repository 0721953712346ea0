package extraction

import (
	"regexp"
	"strings"

	"github.com/LakshyaPrd/cv-screening-new/internal/types"
)

// Project name word-count bounds. Anything outside this range is a heading
// fragment or a paragraph, not a project name.
const (
	minProjectNameWords = 2
	maxProjectNameWords = 25
)

// projectNameBlacklist rejects false-positive project names: section headers,
// degree names, and tool names that the block heuristics occasionally pick up.
var projectNameBlacklist = []string{
	"work experience", "professional experience", "employment history",
	"education", "qualifications", "skills", "certifications", "references",
	"summary", "profile", "curriculum vitae",
	"bachelor", "master", "diploma", "degree",
	"microsoft office", "autocad", "revit", "navisworks", "primavera",
	"certification", "certificate", "training",
}

var (
	sitePrefix     = regexp.MustCompile(`(?i)^(site|location)\s*:\s*`)
	rolePrefix     = regexp.MustCompile(`(?i)^(role|position)\s*:\s*`)
	durationPrefix = regexp.MustCompile(`(?i)^duration\s*:\s*`)
	bulletPrefix   = regexp.MustCompile(`^[-•●*]\s+`)
)

// ParseProjectBlock parses a segmented project block. The bool result is
// false when the block fails the validity predicate: the name must be 2-25
// words, must not hit the blacklist, and the entry must carry at least one of
// site, role, duration, or a responsibility line.
func ParseProjectBlock(block []string) (types.ProjectEntry, bool) {
	var project types.ProjectEntry
	if len(block) == 0 {
		return project, false
	}

	project.Name = strings.TrimSpace(numberedMarker.ReplaceAllString(block[0], ""))
	if !validProjectName(project.Name) {
		return project, false
	}

	for _, line := range block[1:] {
		switch {
		case sitePrefix.MatchString(line):
			if project.Site == "" {
				project.Site = strings.TrimSpace(sitePrefix.ReplaceAllString(line, ""))
			}
		case rolePrefix.MatchString(line):
			if project.Role == "" {
				project.Role = strings.TrimSpace(rolePrefix.ReplaceAllString(line, ""))
			}
		case durationPrefix.MatchString(line) || datePattern.MatchString(line):
			if project.DurationStart == "" {
				if m := datePattern.FindStringSubmatch(line); m != nil {
					project.DurationStart = strings.TrimSpace(m[1])
					project.DurationEnd = strings.TrimSpace(m[3])
				}
			}
		case bulletPrefix.MatchString(line):
			project.Responsibilities = append(project.Responsibilities,
				strings.TrimSpace(bulletPrefix.ReplaceAllString(line, "")))
		default:
			// Unlabeled role line ("Senior Modeler") or prose responsibility.
			if project.Role == "" && containsAnyFold(line, roleKeywords) &&
				len(strings.Fields(line)) <= maxTitleWords {
				project.Role = strings.TrimSpace(line)
			} else if len(strings.Fields(line)) >= minDescriptionWords {
				project.Responsibilities = append(project.Responsibilities, strings.TrimSpace(line))
			}
		}
	}

	if project.Site == "" && project.Role == "" &&
		project.DurationStart == "" && len(project.Responsibilities) == 0 {
		return project, false
	}
	return project, true
}

// validProjectName applies the word-count bounds and the blacklist
func validProjectName(name string) bool {
	words := len(strings.Fields(name))
	if words < minProjectNameWords || words > maxProjectNameWords {
		return false
	}
	lower := strings.ToLower(name)
	for _, banned := range projectNameBlacklist {
		if strings.Contains(lower, banned) {
			return false
		}
	}
	return true
}

// ParseProjects parses all segmented project blocks, discarding invalid ones
func ParseProjects(blocks [][]string) []types.ProjectEntry {
	var projects []types.ProjectEntry
	for _, block := range blocks {
		if project, ok := ParseProjectBlock(block); ok {
			projects = append(projects, project)
		}
	}
	return projects
}
