// Package extraction provides the rule-based field extraction engine: contact
// patterns, section segmentation, and the experience/project/education parsers.
// Parsers are total over arbitrary text: a field that matches nothing is left
// empty, never an error.
package extraction

import (
	"regexp"
	"sort"
	"strings"
)

// TermMatcher matches a fixed dictionary of lower-cased terms against raw
// text. Matches are whole-word (boundary-delimited) and case-insensitive; no
// partial-word matches and no stemming. Output is a sorted, deduplicated set,
// so matching is deterministic and order-independent.
type TermMatcher struct {
	terms    []string
	patterns []*regexp.Regexp
}

// NewTermMatcher compiles boundary-delimited patterns for each dictionary term
func NewTermMatcher(terms []string) *TermMatcher {
	m := &TermMatcher{
		terms:    make([]string, 0, len(terms)),
		patterns: make([]*regexp.Regexp, 0, len(terms)),
	}
	seen := make(map[string]struct{}, len(terms))
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		if _, dup := seen[term]; dup {
			continue
		}
		seen[term] = struct{}{}
		m.terms = append(m.terms, term)
		m.patterns = append(m.patterns, compileTermPattern(term))
	}
	return m
}

// compileTermPattern builds a case-insensitive whole-word pattern for a term.
// Terms ending in non-word characters (e.g. "c++") anchor on the absence of a
// following word character instead of \b, which would never match there.
func compileTermPattern(term string) *regexp.Regexp {
	quoted := regexp.QuoteMeta(term)
	left := `\b`
	if !startsWithWordChar(term) {
		left = `(?:^|[^\w])`
	}
	right := `\b`
	if !endsWithWordChar(term) {
		right = `(?:[^\w]|$)`
	}
	return regexp.MustCompile(`(?i)` + left + quoted + right)
}

func startsWithWordChar(s string) bool {
	c := s[0]
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}

func endsWithWordChar(s string) bool {
	c := s[len(s)-1]
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}

// Match returns the set of dictionary terms present in text, sorted
func (m *TermMatcher) Match(text string) []string {
	if text == "" {
		return nil
	}
	var found []string
	for i, pattern := range m.patterns {
		if pattern.MatchString(text) {
			found = append(found, m.terms[i])
		}
	}
	sort.Strings(found)
	return found
}

// Contains reports whether a single term occurs whole-word in text
func Contains(text, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" || text == "" {
		return false
	}
	return compileTermPattern(term).MatchString(text)
}
