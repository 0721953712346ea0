// Package dictionaries provides the static term dictionaries used by the
// extraction and matching engines. Dictionaries are plain data injected into
// constructors, so tests and tenants can swap them without touching code.
package dictionaries

import "strings"

// SeniorityBucket is one step of the experience-years ladder. Buckets are
// evaluated in order; the first bucket whose MaxYears exceeds the candidate's
// total years wins.
type SeniorityBucket struct {
	MaxYears float64
	Label    string
}

// Dictionaries bundles every static lookup the engines depend on
type Dictionaries struct {
	// Skills and Tools are lower-cased terms matched whole-word against raw text
	Skills []string
	Tools  []string

	// RoleEquivalents maps a role keyword to phrases treated as equivalent
	// titles at reduced weight
	RoleEquivalents map[string][]string

	// RegionKeywords tags work entries as regional experience
	RegionKeywords []string

	// LargeEmployers are company names that set the large-organization flag;
	// LargeOrgPhrases are generic phrases with the same effect
	LargeEmployers  []string
	LargeOrgPhrases []string

	// Proficiency keyword lists for software-experience inference
	ExpertKeywords       []string
	IntermediateKeywords []string
	BasicKeywords        []string

	// DisciplineKeywords maps a discipline label to its trigger keywords,
	// in detection priority order via DisciplineOrder
	DisciplineKeywords map[string][]string
	DisciplineOrder    []string

	// RelevantFields marks education entries as relevant qualifications
	RelevantFields []string

	// SeniorityLadder maps total experience years to a tier label. Must be
	// sorted by MaxYears ascending; the final bucket's label is the fallback.
	SeniorityLadder []SeniorityBucket
}

// Clone returns a deep copy so callers can customize without sharing state
func (d *Dictionaries) Clone() *Dictionaries {
	out := &Dictionaries{
		Skills:               append([]string(nil), d.Skills...),
		Tools:                append([]string(nil), d.Tools...),
		RegionKeywords:       append([]string(nil), d.RegionKeywords...),
		LargeEmployers:       append([]string(nil), d.LargeEmployers...),
		LargeOrgPhrases:      append([]string(nil), d.LargeOrgPhrases...),
		ExpertKeywords:       append([]string(nil), d.ExpertKeywords...),
		IntermediateKeywords: append([]string(nil), d.IntermediateKeywords...),
		BasicKeywords:        append([]string(nil), d.BasicKeywords...),
		DisciplineOrder:      append([]string(nil), d.DisciplineOrder...),
		RelevantFields:       append([]string(nil), d.RelevantFields...),
		SeniorityLadder:      append([]SeniorityBucket(nil), d.SeniorityLadder...),
		RoleEquivalents:      make(map[string][]string, len(d.RoleEquivalents)),
		DisciplineKeywords:   make(map[string][]string, len(d.DisciplineKeywords)),
	}
	for k, v := range d.RoleEquivalents {
		out.RoleEquivalents[k] = append([]string(nil), v...)
	}
	for k, v := range d.DisciplineKeywords {
		out.DisciplineKeywords[k] = append([]string(nil), v...)
	}
	return out
}

// EquivalentsFor returns the equivalent phrases for a role keyword, if any
func (d *Dictionaries) EquivalentsFor(roleKeyword string) []string {
	return d.RoleEquivalents[strings.ToLower(strings.TrimSpace(roleKeyword))]
}

// SeniorityFor maps total experience years onto the ladder. The ladder's
// buckets apply in strictly increasing order with the first satisfied bucket
// winning; the last bucket's label is returned when no MaxYears applies.
func (d *Dictionaries) SeniorityFor(totalYears float64) string {
	if len(d.SeniorityLadder) == 0 {
		return ""
	}
	for _, bucket := range d.SeniorityLadder {
		if totalYears < bucket.MaxYears {
			return bucket.Label
		}
	}
	return d.SeniorityLadder[len(d.SeniorityLadder)-1].Label
}

// Default returns the built-in dictionaries, focused on the AEC/BIM domain
// the screening system was built for but expandable per tenant.
func Default() *Dictionaries {
	return &Dictionaries{
		Skills: []string{
			// Programming
			"python", "java", "javascript", "typescript", "c++", "c#", "php", "ruby", "go", "rust",
			// Web
			"html", "css", "react", "vue", "angular", "node.js", "django", "flask", "fastapi",
			// BIM & Architecture
			"bim", "revit", "autocad", "navisworks", "3ds max", "sketchup", "rhinoceros",
			"archicad", "civil 3d", "infraworks", "lumion", "enscape", "tekla",
			"structural design", "bim coordination", "clash detection", "quantity surveying",
			// Project management
			"project management", "agile", "scrum", "kanban", "jira",
			// Data
			"sql", "postgresql", "mysql", "mongodb", "redis", "elasticsearch", "data analysis",
			// Cloud
			"aws", "azure", "gcp", "docker", "kubernetes", "terraform",
			// Design
			"photoshop", "illustrator", "figma", "indesign",
			// General
			"microsoft office", "excel", "powerpoint", "word",
			"communication", "leadership", "teamwork", "problem solving",
		},
		Tools: []string{
			// BIM & CAD
			"revit", "autocad", "navisworks", "bim 360", "civil 3d", "sketchup",
			"archicad", "rhinoceros", "grasshopper", "dynamo", "tekla",
			// Rendering
			"lumion", "enscape", "v-ray", "3ds max", "blender",
			// Project management
			"procore", "plangrid", "primavera", "ms project",
			// General
			"microsoft office", "adobe creative suite", "photoshop", "illustrator", "indesign",
		},
		RoleEquivalents: map[string][]string{
			"bim architect":     {"bim designer", "architectural designer", "design architect"},
			"bim manager":       {"bim coordinator", "bim lead", "vdc manager"},
			"project manager":   {"pm", "program manager", "project lead"},
			"software engineer": {"developer", "programmer", "software developer"},
			"senior developer":  {"lead developer", "principal engineer", "staff engineer"},
			"data scientist":    {"ml engineer", "data analyst", "research scientist"},
			"ui/ux designer":    {"product designer", "ux designer", "interaction designer"},
		},
		RegionKeywords: []string{
			"uae", "dubai", "abu dhabi", "sharjah", "ajman", "ras al khaimah", "fujairah",
			"saudi", "ksa", "riyadh", "jeddah", "mecca", "medina", "dammam", "neom",
			"qatar", "doha", "lusail",
			"oman", "muscat", "salalah",
			"bahrain", "manama",
			"kuwait", "kuwait city",
			"gcc",
		},
		LargeEmployers: []string{
			"aecom", "wsp", "jacobs", "atkins", "snc lavalin", "snc-lavalin",
			"bechtel", "fluor", "kbr", "worley", "parsons", "arcadis", "stantec",
			"arup", "mott macdonald", "hdr", "turner", "skanska", "vinci",
			"bouygues", "samsung engineering", "hyundai engineering",
			"larsen & toubro", "l&t", "tata", "shapoorji pallonji",
			"dar al handasah", "khatib & alami", "consolidated contractors",
			"arabtec", "al habtoor", "emaar", "nakheel", "aldar",
		},
		LargeOrgPhrases: []string{
			"multinational", "international", "global company", "100+ employees", "fortune 500",
		},
		ExpertKeywords:       []string{"expert", "advanced", "highly proficient", "mastery", "specialist"},
		IntermediateKeywords: []string{"intermediate", "proficient", "working knowledge", "experienced"},
		BasicKeywords:        []string{"basic", "beginner", "familiar", "knowledge of"},
		DisciplineKeywords: map[string][]string{
			"Architecture":    {"architect", "architecture", "architectural"},
			"Structural":      {"structural", "structure", "civil"},
			"MEP":             {"mep", "mechanical", "electrical", "plumbing", "hvac"},
			"BIM":             {"bim", "building information model"},
			"Interior Design": {"interior", "interior design"},
			"Landscape":       {"landscape"},
		},
		DisciplineOrder: []string{
			"Architecture", "Structural", "MEP", "BIM", "Interior Design", "Landscape",
		},
		RelevantFields: []string{
			"civil", "architecture", "mechanical", "electrical", "engineering",
		},
		SeniorityLadder: []SeniorityBucket{
			{MaxYears: 2, Label: "Junior"},
			{MaxYears: 5, Label: "Mid-Level"},
			{MaxYears: 8, Label: "Senior"},
			{MaxYears: 12, Label: "Lead"},
			{MaxYears: 0, Label: "Manager"}, // fallback bucket, MaxYears unused
		},
	}
}
