package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProjectBlockAcceptsNamedProjectWithRoleAndDuration(t *testing.T) {
	block := []string{
		"1. Riyadh Metro Station – Phase 2",
		"Role: BIM Coordinator",
		"Duration: Jan 2020 - Dec 2021",
		"- Coordinated architectural and MEP models across packages",
	}

	project, ok := ParseProjectBlock(block)

	require.True(t, ok)
	assert.Equal(t, "Riyadh Metro Station – Phase 2", project.Name)
	assert.Equal(t, "BIM Coordinator", project.Role)
	assert.Equal(t, "Jan 2020", project.DurationStart)
	assert.Equal(t, "Dec 2021", project.DurationEnd)
	assert.Equal(t, []string{"Coordinated architectural and MEP models across packages"}, project.Responsibilities)
}

func TestParseProjectBlockRejectsBlacklistedName(t *testing.T) {
	block := []string{
		"Microsoft Office Certification",
		"Role: Trainee",
	}

	_, ok := ParseProjectBlock(block)

	assert.False(t, ok)
}

func TestParseProjectBlockRejectsSingleWordName(t *testing.T) {
	block := []string{
		"Tower",
		"Role: Architect",
	}

	_, ok := ParseProjectBlock(block)

	assert.False(t, ok)
}

func TestParseProjectBlockRequiresSupportingDetail(t *testing.T) {
	block := []string{"Lusail Plaza Development"}

	_, ok := ParseProjectBlock(block)

	assert.False(t, ok)
}

func TestParseProjectBlockSitePrefix(t *testing.T) {
	block := []string{
		"2. Lusail Tower Complex",
		"Site: Doha, Qatar",
	}

	project, ok := ParseProjectBlock(block)

	require.True(t, ok)
	assert.Equal(t, "Lusail Tower Complex", project.Name)
	assert.Equal(t, "Doha, Qatar", project.Site)
}

func TestParseProjectBlockUnlabeledRoleLine(t *testing.T) {
	block := []string{
		"3. Jeddah Corniche Residences",
		"Senior Modeler",
	}

	project, ok := ParseProjectBlock(block)

	require.True(t, ok)
	assert.Equal(t, "Senior Modeler", project.Role)
}

func TestParseProjectsFiltersInvalidBlocks(t *testing.T) {
	blocks := [][]string{
		{"1. Riyadh Metro Station – Phase 2", "Role: BIM Coordinator"},
		{"AutoCAD Training Course", "Role: Student"},
	}

	projects := ParseProjects(blocks)

	require.Len(t, projects, 1)
	assert.Equal(t, "Riyadh Metro Station – Phase 2", projects[0].Name)
}

func TestValidProjectNameBounds(t *testing.T) {
	assert.True(t, validProjectName("Lusail Tower Complex"))
	assert.False(t, validProjectName("Tower"))
	assert.False(t, validProjectName("Education"))
}
