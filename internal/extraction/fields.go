package extraction

import (
	"strings"
)

// nameLineWindow is how many leading lines are scanned for the candidate name
const nameLineWindow = 8

// summaryLineWindow is how many leading lines are scanned for summary prose
const summaryLineWindow = 15

// positionLineWindow is how many leading lines are scanned for the current role
const positionLineWindow = 20

// minSummaryWords is the word count that marks a line as summary prose rather
// than a header or contact fragment.
const minSummaryWords = 8

var nameIgnoreKeywords = []string{"email", "phone", "linkedin", "resume", "curriculum", "vitae", "cv"}

var summaryIgnoreKeywords = []string{"phone", "email", "linkedin", "dob", "address"}

// subDisciplineKeywords maps a sub-discipline label to its trigger phrases
var subDisciplineKeywords = []struct {
	Label    string
	Keywords []string
}{
	{"BIM Modeling", []string{"bim model", "revit model"}},
	{"BIM Coordination", []string{"bim coord", "coordination"}},
	{"Technical Office", []string{"technical office", "design engineer"}},
	{"Site Engineer", []string{"site engineer", "site supervision"}},
	{"Project Management", []string{"project manage", "project manager"}},
}

// ExtractName finds the candidate name among the leading lines: 2-4 words,
// leading capital, not a contact or header line.
func ExtractName(lines []string) string {
	window := min(len(lines), nameLineWindow)
	for _, line := range lines[:window] {
		if containsAnyFold(line, nameIgnoreKeywords) {
			continue
		}
		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		first := []rune(words[0])
		if first[0] >= 'A' && first[0] <= 'Z' {
			return line
		}
	}
	return ""
}

// ExtractSummary joins up to three prose lines from the top of the CV
func ExtractSummary(lines []string) string {
	var summary []string
	window := min(len(lines), summaryLineWindow)
	for _, line := range lines[:window] {
		if containsAnyFold(line, summaryIgnoreKeywords) {
			continue
		}
		if len(strings.Fields(line)) >= minSummaryWords {
			summary = append(summary, line)
		}
		if len(summary) >= 3 {
			break
		}
	}
	return strings.Join(summary, " ")
}

// ExtractPosition finds the current role: the first short role-keyword line
func ExtractPosition(lines []string) string {
	window := min(len(lines), positionLineWindow)
	for _, line := range lines[:window] {
		if containsAnyFold(line, roleKeywords) && len(strings.Fields(line)) <= maxTitleWords {
			return strings.TrimSpace(line)
		}
	}
	return ""
}

// DetectDiscipline maps the raw text onto the first discipline whose keywords
// appear, following the configured priority order.
func DetectDiscipline(text string, keywords map[string][]string, order []string) string {
	lower := strings.ToLower(text)
	for _, label := range order {
		for _, kw := range keywords[label] {
			if strings.Contains(lower, kw) {
				return label
			}
		}
	}
	return ""
}

// DetectSubDiscipline maps the raw text onto a more specific sub-discipline
func DetectSubDiscipline(text string) string {
	lower := strings.ToLower(text)
	for _, sub := range subDisciplineKeywords {
		for _, kw := range sub.Keywords {
			if strings.Contains(lower, kw) {
				return sub.Label
			}
		}
	}
	return ""
}
