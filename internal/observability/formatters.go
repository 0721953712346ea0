// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/LakshyaPrd/cv-screening-new/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a human-readable summary of an extracted profile.
func (p *Printer) PrintProfile(profile *types.ExtractedProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:       %s\n", orDash(profile.Name)))
	sb.WriteString(fmt.Sprintf("Email:      %s\n", orDash(profile.Email)))
	sb.WriteString(fmt.Sprintf("Phone:      %s\n", orDash(profile.Phone)))
	sb.WriteString(fmt.Sprintf("Position:   %s\n", orDash(profile.CurrentPosition)))
	sb.WriteString(fmt.Sprintf("Discipline: %s\n", orDash(profile.Discipline)))
	sb.WriteString(fmt.Sprintf("Source:     %s\n", profile.Source))
	sb.WriteString(fmt.Sprintf("Confidence: %d (%s)\n", profile.Confidence, profile.Status))
	sb.WriteString("\n")

	if len(profile.WorkHistory) > 0 {
		sb.WriteString("Work History:\n")
		count := min(len(profile.WorkHistory), maxItemsToShow)
		for i := 0; i < count; i++ {
			entry := profile.WorkHistory[i]
			sb.WriteString(fmt.Sprintf("  • %s", orDash(entry.JobTitle)))
			if entry.Company != "" {
				sb.WriteString(fmt.Sprintf(" @ %s", entry.Company))
			}
			if entry.StartDate != "" {
				sb.WriteString(fmt.Sprintf(" (%s – %s)", entry.StartDate, orDash(entry.EndDate)))
			}
			sb.WriteString("\n")
		}
		if len(profile.WorkHistory) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.WorkHistory)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(profile.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills (%d): %s\n", len(profile.Skills), preview(profile.Skills, 40)))
	}
	if len(profile.Tools) > 0 {
		sb.WriteString(fmt.Sprintf("Tools (%d):  %s\n", len(profile.Tools), preview(profile.Tools, 40)))
	}
	if len(profile.Projects) > 0 {
		sb.WriteString(fmt.Sprintf("Projects:   %d\n", len(profile.Projects)))
	}

	p.printBox("EXTRACTED PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchResult outputs a match result's category breakdown and justification.
func (p *Printer) PrintMatchResult(result *types.MatchResult, job *types.JobRequirement) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Total Score: %.2f / 100\n\n", result.TotalScore))

	if job != nil {
		sb.WriteString(fmt.Sprintf("Skills:      %5.2f / %d\n", result.SkillScore, job.SkillWeight))
		sb.WriteString(fmt.Sprintf("Role:        %5.2f / %d\n", result.RoleScore, job.RoleWeight))
		sb.WriteString(fmt.Sprintf("Tools:       %5.2f / %d\n", result.ToolScore, job.ToolWeight))
		sb.WriteString(fmt.Sprintf("Experience:  %5.2f / %d\n", result.ExperienceScore, job.ExperienceWeight))
		sb.WriteString(fmt.Sprintf("Portfolio:   %5.2f / %d\n", result.PortfolioScore, job.PortfolioWeight))
		sb.WriteString(fmt.Sprintf("Quality:     %5.2f / %d\n", result.QualityScore, job.QualityWeight))
	}

	if result.Justification != "" {
		sb.WriteString("\n")
		sb.WriteString(result.Justification)
		sb.WriteString("\n")
	}

	p.printBox("MATCH RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintExperience outputs aggregated experience metrics.
func (p *Printer) PrintExperience(experience *types.AggregatedExperience) {
	if experience == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total:     %.1f years\n", experience.TotalYears))
	sb.WriteString(fmt.Sprintf("Regional:  %.1f years\n", experience.RegionalYears))
	sb.WriteString(fmt.Sprintf("Seniority: %s\n", orDash(experience.SeniorityTier)))
	sb.WriteString(fmt.Sprintf("Large org: %t\n", experience.WorkedWithLargeOrg))

	if len(experience.Software) > 0 {
		sb.WriteString("\nSoftware:\n")
		count := min(len(experience.Software), maxItemsToShow)
		for i := 0; i < count; i++ {
			sw := experience.Software[i]
			sb.WriteString(fmt.Sprintf("  • %s — %s, %.1f yrs\n", sw.Software, sw.Proficiency, sw.Years))
		}
		if len(experience.Software) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(experience.Software)-maxItemsToShow))
		}
	}

	p.printBox("EXPERIENCE METRICS", strings.TrimSuffix(sb.String(), "\n"))
}

func preview(items []string, maxLen int) string {
	joined := strings.Join(items, ", ")
	if len(joined) > maxLen {
		joined = joined[:maxLen-3] + "..."
	}
	return joined
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
