package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LakshyaPrd/cv-screening-new/internal/dictionaries"
	"github.com/LakshyaPrd/cv-screening-new/internal/types"
)

const sampleCV = `Ahmed Hassan
Senior BIM Engineer
Email: ahmed.hassan@example.com | Phone: +971 50 123 4567
https://linkedin.com/in/ahmedhassan

Senior BIM Engineer with over eight years of experience delivering large infrastructure projects in the GCC region.

Work Experience
Jan 2020 - Present
Senior BIM Engineer
Dubai Engineering Consultancy LLC
Led clash detection and BIM coordination for metro and airport packages.

2017 – 2019
BIM Modeler
Riyadh Infrastructure Services
Produced federated Revit models for mixed-use developments in Saudi Arabia.

Projects
1. Riyadh Metro Station – Phase 2
Role: BIM Coordinator
Duration: Jan 2020 - Dec 2021

Education
Bachelor of Civil Engineering
King Saud University, 2016

Skills
Revit, Navisworks, AutoCAD, clash detection`

func TestParserFullCV(t *testing.T) {
	parser := NewParser(dictionaries.Default())

	profile := parser.Parse(sampleCV)

	assert.Equal(t, "Ahmed Hassan", profile.Name)
	assert.Equal(t, "ahmed.hassan@example.com", profile.Email)
	assert.Equal(t, "+971501234567", profile.Phone)
	assert.Equal(t, "Senior BIM Engineer", profile.CurrentPosition)
	assert.Contains(t, profile.Summary, "eight years of experience")

	require.Len(t, profile.WorkHistory, 2)
	assert.Equal(t, "Senior BIM Engineer", profile.WorkHistory[0].JobTitle)
	assert.Equal(t, "Jan 2020", profile.WorkHistory[0].StartDate)
	assert.Equal(t, "Present", profile.WorkHistory[0].EndDate)

	require.Len(t, profile.Projects, 1)
	assert.Equal(t, "Riyadh Metro Station – Phase 2", profile.Projects[0].Name)

	require.Len(t, profile.Education, 1)
	assert.True(t, profile.Education[0].Relevant)

	assert.Contains(t, profile.Skills, "revit")
	assert.Contains(t, profile.Skills, "clash detection")
	assert.Contains(t, profile.Tools, "navisworks")
	assert.Equal(t, types.SourceRuleBased, profile.Source)
	assert.Equal(t, sampleCV, profile.RawText)
}

func TestParserEmptyText(t *testing.T) {
	parser := NewParser(dictionaries.Default())

	profile := parser.Parse("")

	assert.Empty(t, profile.Name)
	assert.Empty(t, profile.WorkHistory)
	assert.Empty(t, profile.Skills)
	assert.Equal(t, types.SourceRuleBased, profile.Source)
}

func TestParserArbitraryTextNeverPanics(t *testing.T) {
	parser := NewParser(dictionaries.Default())

	profile := parser.Parse("@@@ ??? 12345 ----- ||| \n\n\n random noise")

	assert.NotNil(t, profile)
}
