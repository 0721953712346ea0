// Package llm - extractor.go provides LLM-based structured CV extraction.
package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/LakshyaPrd/cv-screening-new/internal/types"
)

// MaxPromptChars caps the CV text embedded in the extraction prompt. Longer
// documents are truncated to keep the request inside the model's effective
// context window.
const MaxPromptChars = 25000

// ExtractionSchema defines the structure for LLM-based content extraction.
// It provides a reusable way to define what information to extract from text.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "CVProfile")
	Description string        // System prompt preamble describing the extraction task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "string", "[]string", "map[string]string"
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// BuildExtractionPrompt constructs the LLM prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	if len(inputText) > MaxPromptChars {
		cut := MaxPromptChars
		// Back up off a multi-byte rune so the cut never leaves invalid UTF-8
		for cut > 0 && !utf8.RuneStart(inputText[cut]) {
			cut--
		}
		inputText = inputText[:cut]
	}

	var sb strings.Builder

	// System description
	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	// Output schema
	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	// Instructions
	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Extract information directly from the text, do not invent or summarize.\n")
	sb.WriteString("- Use null for fields that are not present in the text.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	// Input text
	sb.WriteString("CV text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// CVProfileSchema returns the extraction schema for candidate CVs.
func CVProfileSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "CVProfile",
		Description: `You are an expert CV parser for engineering and construction roles. COPY TEXT VERBATIM - do not paraphrase, summarize, or reword.
Your task is to extract and categorize the candidate's information from raw CV text.
IMPORTANT: Preserve the exact wording from the original text.
Goal: Extract identity, contact details, work history, projects, education, skills, and tools.
EXCLUDE: Page numbers, headers/footers, references sections.`,
		Fields: []SchemaField{
			{Name: "name", Type: "\"string\"", Description: "Candidate full name", Required: true},
			{Name: "email", Type: "\"string\"", Description: "Email address"},
			{Name: "phone", Type: "\"string\"", Description: "Phone number with country code if present"},
			{Name: "linkedin", Type: "\"string\"", Description: "LinkedIn profile URL"},
			{Name: "summary", Type: "\"string\"", Description: "Professional summary or objective, verbatim"},
			{Name: "current_position", Type: "\"string\"", Description: "Most recent job title"},
			{Name: "discipline", Type: "\"string\"", Description: "Primary discipline, e.g. architecture, civil, mechanical, electrical"},
			{Name: "portfolio_urls", Type: "[\"string\"]", Description: "Portfolio, Behance, personal site URLs"},
			{Name: "work_history", Type: "[{\"title\", \"company\", \"start_date\", \"end_date\", \"description\"}]", Description: "One entry per position, dates as YYYY-MM or 'Present'", Required: true},
			{Name: "projects", Type: "[{\"name\", \"site\", \"role\", \"duration\", \"responsibilities\"}]", Description: "Named projects the candidate worked on"},
			{Name: "education", Type: "[{\"degree\", \"university\", \"graduation_year\"}]", Description: "Degrees with institution and year"},
			{Name: "skills", Type: "[\"string\"]", Description: "Professional skills mentioned in the text"},
			{Name: "tools_software", Type: "[\"string\"]", Description: "Software and tools the candidate uses"},
			{Name: "certifications", Type: "[\"string\"]", Description: "Professional certifications"},
			{Name: "languages", Type: "[{\"language\", \"proficiency\"}]", Description: "Spoken languages with proficiency level"},
		},
	}
}

// Payload is the raw JSON shape returned by the CV extraction prompt.
// Every field is optional at the wire level, Normalize handles absent and
// malformed values.
type Payload struct {
	Name            string             `json:"name"`
	Email           string             `json:"email"`
	Phone           string             `json:"phone"`
	LinkedIn        string             `json:"linkedin"`
	Summary         string             `json:"summary"`
	CurrentPosition string             `json:"current_position"`
	Discipline      string             `json:"discipline"`
	PortfolioURLs   []string           `json:"portfolio_urls"`
	WorkHistory     []PayloadWork      `json:"work_history"`
	Projects        []PayloadProject   `json:"projects"`
	Education       []PayloadEducation `json:"education"`
	Skills          []string           `json:"skills"`
	ToolsSoftware   []string           `json:"tools_software"`
	Certifications  []string           `json:"certifications"`
	Languages       []PayloadLanguage  `json:"languages"`
}

// PayloadWork is one position in the extraction payload.
type PayloadWork struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
}

// PayloadProject is one project in the extraction payload.
type PayloadProject struct {
	Name             string `json:"name"`
	Site             string `json:"site"`
	Role             string `json:"role"`
	Duration         string `json:"duration"`
	Responsibilities string `json:"responsibilities"`
}

// PayloadEducation is one degree in the extraction payload.
type PayloadEducation struct {
	Degree         string      `json:"degree"`
	University     string      `json:"university"`
	GraduationYear json.Number `json:"graduation_year"`
}

// PayloadLanguage is one spoken language in the extraction payload.
type PayloadLanguage struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency"`
}

// ParsePayload unmarshals an extraction response. A type mismatch on one
// field keeps the rest of the payload, and truncated output is repaired on a
// second attempt; only structurally unreadable responses fail.
func ParsePayload(raw string) (*Payload, error) {
	raw = CleanJSONBlock(raw)

	var payload Payload
	err := json.Unmarshal([]byte(raw), &payload)
	if err == nil {
		return &payload, nil
	}

	// The decoder keeps going past a type mismatch, so every conforming
	// field is already populated; the deviant field stays zero-valued.
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &payload, nil
	}

	repaired := RepairTruncatedJSON(raw)
	if err2 := json.Unmarshal([]byte(repaired), &payload); err2 != nil {
		return nil, fmt.Errorf("failed to parse extraction response: %w", err)
	}
	return &payload, nil
}

// ToProfile converts a payload into an ExtractedProfile. String fields are
// trimmed, list entries with no usable content are dropped.
func (p *Payload) ToProfile(rawText string) *types.ExtractedProfile {
	profile := &types.ExtractedProfile{
		Name:            strings.TrimSpace(p.Name),
		Email:           strings.TrimSpace(p.Email),
		Phone:           strings.TrimSpace(p.Phone),
		LinkedIn:        strings.TrimSpace(p.LinkedIn),
		Summary:         strings.TrimSpace(p.Summary),
		CurrentPosition: strings.TrimSpace(p.CurrentPosition),
		Discipline:      strings.ToLower(strings.TrimSpace(p.Discipline)),
		PortfolioURLs:   trimAll(p.PortfolioURLs),
		Skills:          trimAll(p.Skills),
		Tools:           trimAll(p.ToolsSoftware),
		Certifications:  trimAll(p.Certifications),
		Source:          types.SourceAI,
		RawText:         rawText,
	}

	for _, w := range p.WorkHistory {
		entry := types.WorkHistoryEntry{
			JobTitle:  strings.TrimSpace(w.Title),
			Company:   strings.TrimSpace(w.Company),
			StartDate: strings.TrimSpace(w.StartDate),
			EndDate:   strings.TrimSpace(w.EndDate),
		}
		if desc := strings.TrimSpace(w.Description); desc != "" {
			entry.Description = splitLines(desc)
		}
		if entry.JobTitle == "" && entry.Company == "" {
			continue
		}
		profile.WorkHistory = append(profile.WorkHistory, entry)
	}

	for _, pr := range p.Projects {
		entry := types.ProjectEntry{
			Name: strings.TrimSpace(pr.Name),
			Site: strings.TrimSpace(pr.Site),
			Role: strings.TrimSpace(pr.Role),
		}
		if start, end, ok := splitDuration(pr.Duration); ok {
			entry.DurationStart = start
			entry.DurationEnd = end
		}
		if resp := strings.TrimSpace(pr.Responsibilities); resp != "" {
			entry.Responsibilities = splitLines(resp)
		}
		if entry.Name == "" {
			continue
		}
		profile.Projects = append(profile.Projects, entry)
	}

	for _, e := range p.Education {
		entry := types.EducationEntry{
			Degree:         strings.TrimSpace(e.Degree),
			University:     strings.TrimSpace(e.University),
			GraduationYear: strings.TrimSpace(e.GraduationYear.String()),
		}
		if entry.Degree == "" && entry.University == "" {
			continue
		}
		profile.Education = append(profile.Education, entry)
	}

	for _, l := range p.Languages {
		entry := types.Language{
			Language:    strings.TrimSpace(l.Language),
			Proficiency: strings.TrimSpace(l.Proficiency),
		}
		if entry.Language == "" {
			continue
		}
		if entry.Proficiency == "" {
			entry.Proficiency = "Not Specified"
		}
		profile.Languages = append(profile.Languages, entry)
	}

	return profile
}

// splitLines breaks a multi-line description into trimmed, non-empty lines.
func splitLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, "-•* \t"))
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// splitDuration splits a "start - end" duration string into its halves.
func splitDuration(duration string) (start, end string, ok bool) {
	duration = strings.TrimSpace(duration)
	if duration == "" {
		return "", "", false
	}
	for _, sep := range []string{"–", "—", " - ", " to ", "-"} {
		if left, right, found := strings.Cut(duration, sep); found {
			return strings.TrimSpace(left), strings.TrimSpace(right), true
		}
	}
	return duration, "", true
}

func trimAll(values []string) []string {
	var out []string
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
