package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractNameFromLeadingLines(t *testing.T) {
	lines := []string{
		"Curriculum Vitae",
		"Ahmed Hassan Al-Maktoum",
		"Senior BIM Engineer",
	}

	assert.Equal(t, "Ahmed Hassan Al-Maktoum", ExtractName(lines))
}

func TestExtractNameSkipsContactLines(t *testing.T) {
	lines := []string{
		"Email: someone@example.com",
		"Phone Numbers Here",
		"Sara Al-Harbi",
	}

	assert.Equal(t, "Sara Al-Harbi", ExtractName(lines))
}

func TestExtractNameNoneFound(t *testing.T) {
	lines := []string{"resume", "a b c d e f g"}

	assert.Empty(t, ExtractName(lines))
}

func TestExtractSummaryJoinsProseLines(t *testing.T) {
	lines := []string{
		"Ahmed Hassan",
		"Senior BIM Engineer with over eight years of experience in large infrastructure projects.",
		"Skilled at coordinating multidisciplinary teams across design and construction phases.",
	}

	summary := ExtractSummary(lines)

	assert.Contains(t, summary, "eight years of experience")
	assert.Contains(t, summary, "multidisciplinary teams")
}

func TestExtractSummaryEmptyWhenOnlyShortLines(t *testing.T) {
	lines := []string{"Ahmed Hassan", "Dubai, UAE", "Senior Engineer"}

	assert.Empty(t, ExtractSummary(lines))
}

func TestExtractPositionFirstRoleLine(t *testing.T) {
	lines := []string{
		"Ahmed Hassan",
		"Senior BIM Engineer",
		"Dubai, UAE",
	}

	assert.Equal(t, "Senior BIM Engineer", ExtractPosition(lines))
}

func TestDetectDisciplinePriorityOrder(t *testing.T) {
	keywords := map[string][]string{
		"Architecture": {"architect"},
		"Structural":   {"structural"},
	}
	order := []string{"Architecture", "Structural"}

	got := DetectDiscipline("Structural steel design by a licensed architect", keywords, order)

	assert.Equal(t, "Architecture", got)
}

func TestDetectDisciplineNoMatch(t *testing.T) {
	keywords := map[string][]string{"MEP": {"hvac"}}

	assert.Empty(t, DetectDiscipline("software development only", keywords, []string{"MEP"}))
}

func TestDetectSubDiscipline(t *testing.T) {
	assert.Equal(t, "BIM Coordination", DetectSubDiscipline("Led BIM coordination meetings weekly"))
	assert.Empty(t, DetectSubDiscipline("general construction work"))
}
