package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRelevantFields = []string{"civil", "architecture", "engineering"}

func TestParseEducationDegreeWithUniversityLine(t *testing.T) {
	lines := []string{
		"Bachelor of Civil Engineering",
		"King Saud University, 2016",
	}

	entries := ParseEducation(lines, testRelevantFields)

	require.Len(t, entries, 1)
	assert.Equal(t, "Bachelor of Civil Engineering", entries[0].Degree)
	assert.Equal(t, "King Saud University, 2016", entries[0].University)
	assert.Equal(t, "2016", entries[0].GraduationYear)
	assert.True(t, entries[0].Relevant)
}

func TestParseEducationInlineYear(t *testing.T) {
	lines := []string{"Master of Architecture, 2019"}

	entries := ParseEducation(lines, testRelevantFields)

	require.Len(t, entries, 1)
	assert.Equal(t, "2019", entries[0].GraduationYear)
	assert.True(t, entries[0].Relevant)
}

func TestParseEducationIrrelevantField(t *testing.T) {
	lines := []string{"Bachelor of Business Administration"}

	entries := ParseEducation(lines, testRelevantFields)

	require.Len(t, entries, 1)
	assert.False(t, entries[0].Relevant)
}

func TestParseEducationNoDegreeKeyword(t *testing.T) {
	lines := []string{"Attended several training workshops"}

	entries := ParseEducation(lines, testRelevantFields)

	assert.Empty(t, entries)
}

func TestExtractCertificationsDeduplicates(t *testing.T) {
	text := `Certified Autodesk Revit Professional.
Certification: PMP Project Management.
certified Autodesk Revit Professional.`

	certs := ExtractCertifications(text)

	require.Len(t, certs, 2)
	assert.Equal(t, "Autodesk Revit Professional", certs[0])
	assert.Equal(t, "PMP Project Management", certs[1])
}
