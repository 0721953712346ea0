// Package evaluation derives experience metrics from extracted profiles:
// durations, regional exposure, seniority, and per-tool proficiency.
package evaluation

import (
	"strings"
	"time"
)

// dateLayouts are tried in order against a cleaned date string
var dateLayouts = []string{
	"2006-01",
	"2006/01",
	"January 2006",
	"Jan 2006",
	"01/2006",
	"2006",
}

// ongoingMarkers mark an open-ended position. They resolve to the current month.
var ongoingMarkers = map[string]bool{
	"present": true,
	"current": true,
	"now":     true,
	"ongoing": true,
	"":        false,
}

// ParseFlexibleDate parses the date formats CVs actually use: "2020-01",
// "March 2020", bare years, and present/current/now for ongoing roles.
// The second return is false when the string matches no known format.
func ParseFlexibleDate(raw string) (time.Time, bool) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return time.Time{}, false
	}

	if ongoingMarkers[strings.ToLower(cleaned)] {
		return time.Now(), true
	}

	// Normalize abbreviated months with trailing periods ("Jan. 2020")
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.Join(strings.Fields(cleaned), " ")

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t, true
		}
	}
	// Title-case month names so "march 2020" parses
	for _, layout := range []string{"January 2006", "Jan 2006"} {
		if t, err := time.Parse(layout, titleCaseMonth(cleaned)); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// MonthsBetween returns the whole-month span from start to end using
// year/month arithmetic only. Inverted ranges clamp to zero.
func MonthsBetween(start, end time.Time) int {
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if months < 0 {
		return 0
	}
	return months
}

func titleCaseMonth(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return s
	}
	first := fields[0]
	fields[0] = strings.ToUpper(first[:1]) + strings.ToLower(first[1:])
	return strings.Join(fields, " ")
}
