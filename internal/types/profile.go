// Package types provides type definitions for structured data used throughout the CV screening system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// ExtractionSource identifies which extraction path produced a profile
type ExtractionSource string

// Extraction source values
const (
	// SourceRuleBased means every field came from the pattern/dictionary parsers
	SourceRuleBased ExtractionSource = "rule_based"
	// SourceAI means the structured fields came from the AI extractor
	SourceAI ExtractionSource = "ai_assisted"
	// SourceHybrid means AI fields were merged with rule-based contacts/tools/skills
	SourceHybrid ExtractionSource = "hybrid"
)

// Extraction status values. Status is advisory: a low-confidence profile is
// still returned and usable.
const (
	StatusSuccess       = "success"
	StatusLowConfidence = "low_confidence"
)

// ExtractedProfile represents a structured candidate profile extracted from raw CV text
type ExtractedProfile struct {
	Name            string `json:"name,omitempty"`
	Email           string `json:"email,omitempty"`
	Phone           string `json:"phone,omitempty"`
	LinkedIn        string `json:"linkedin,omitempty"`
	Summary         string `json:"summary,omitempty"`
	CurrentPosition string `json:"current_position,omitempty"`
	Discipline      string `json:"discipline,omitempty"`
	SubDiscipline   string `json:"sub_discipline,omitempty"`

	PortfolioURLs []string `json:"portfolio_urls,omitempty"`

	WorkHistory []WorkHistoryEntry `json:"work_history,omitempty"`
	Projects    []ProjectEntry     `json:"projects,omitempty"`
	Education   []EducationEntry   `json:"education,omitempty"`

	Skills         []string   `json:"skills,omitempty"`
	Tools          []string   `json:"tools,omitempty"`
	Certifications []string   `json:"certifications,omitempty"`
	Languages      []Language `json:"languages,omitempty"`

	Confidence int              `json:"confidence"`
	Source     ExtractionSource `json:"source"`
	Status     string           `json:"status,omitempty"`

	// RawText is the source text the profile was extracted from. It is kept
	// for free-text scoring (role keywords, portfolio keywords) and is not
	// re-parsed after extraction.
	RawText string `json:"raw_text,omitempty"`
}

// WorkHistoryEntry represents one position in the candidate's work history
type WorkHistoryEntry struct {
	JobTitle    string   `json:"job_title,omitempty"`
	Company     string   `json:"company,omitempty"`
	StartDate   string   `json:"start_date,omitempty"`
	EndDate     string   `json:"end_date,omitempty"` // "Present" for ongoing roles
	Description []string `json:"description,omitempty"`

	// Derived fields, populated by the evaluation aggregator
	DurationMonths int    `json:"duration_months,omitempty"`
	SeniorityTier  string `json:"seniority_tier,omitempty"`
	Regional       bool   `json:"regional,omitempty"`
}

// Text returns the entry's free text (title, company, description) joined for keyword scans
func (w *WorkHistoryEntry) Text() string {
	parts := make([]string, 0, len(w.Description)+2)
	parts = append(parts, w.JobTitle, w.Company)
	parts = append(parts, w.Description...)
	return strings.Join(parts, " ")
}

// ProjectEntry represents a named project the candidate worked on
type ProjectEntry struct {
	Name             string   `json:"project_name"`
	Site             string   `json:"site_name,omitempty"`
	Role             string   `json:"role,omitempty"`
	DurationStart    string   `json:"duration_start,omitempty"`
	DurationEnd      string   `json:"duration_end,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
}

// Text returns the project's free text joined for keyword scans
func (p *ProjectEntry) Text() string {
	parts := make([]string, 0, len(p.Responsibilities)+3)
	parts = append(parts, p.Name, p.Site, p.Role)
	parts = append(parts, p.Responsibilities...)
	return strings.Join(parts, " ")
}

// EducationEntry represents one education record
type EducationEntry struct {
	Degree         string   `json:"degree"`
	Major          string   `json:"major,omitempty"`
	University     string   `json:"university,omitempty"`
	GraduationYear string   `json:"graduation_year,omitempty"`
	Certifications []string `json:"certifications,omitempty"`
	Relevant       bool     `json:"relevant,omitempty"`
}

// Language represents a spoken language with its stated proficiency
type Language struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency,omitempty"` // exactly as stated, "Not Specified" otherwise
}

// SoftwareExperience represents inferred proficiency with a single tool
type SoftwareExperience struct {
	Software    string  `json:"software_name"`
	Proficiency string  `json:"proficiency_level"`
	Years       float64 `json:"years_of_experience"`
}

// Proficiency tiers for software experience
const (
	ProficiencyExpert       = "Expert"
	ProficiencyIntermediate = "Intermediate"
	ProficiencyBasic        = "Basic"
)

// AggregatedExperience holds the derived experience metrics for a profile
type AggregatedExperience struct {
	TotalYears         float64              `json:"total_experience_years"`
	RegionalYears      float64              `json:"regional_experience_years"`
	SeniorityTier      string               `json:"seniority_tier"`
	WorkedWithLargeOrg bool                 `json:"worked_with_large_orgs"`
	Software           []SoftwareExperience `json:"software_experience,omitempty"`
}

// EnrichedProfile pairs an extracted profile with its aggregated experience metrics
type EnrichedProfile struct {
	ExtractedProfile
	Experience AggregatedExperience `json:"experience_metrics"`
}
