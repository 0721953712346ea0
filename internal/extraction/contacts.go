package extraction

import (
	"regexp"
	"strings"
)

// Contact patterns. These run against the raw text, not the cleaned lines, so
// contacts survive even when the layout confuses the segmenter.
var (
	emailPattern    = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phonePattern    = regexp.MustCompile(`[+(]?\d[\d\-\s()]{7,}\d`)
	linkedinPattern = regexp.MustCompile(`https?://[^\s]*linkedin[^\s]*`)
	urlPattern      = regexp.MustCompile(`https?://[^\s<>"']+`)
	nonPhoneChars   = regexp.MustCompile(`[^\d+]`)
)

// Contacts holds the contact fields pulled from raw text
type Contacts struct {
	Email         string
	Phone         string
	LinkedIn      string
	PortfolioURLs []string
}

// ExtractContacts pulls email, phone, and link URLs from raw text.
// Contacts always come from this rule-based path; the AI extractor never
// overrides them.
func ExtractContacts(text string) Contacts {
	return Contacts{
		Email:         extractEmail(text),
		Phone:         extractPhone(text),
		LinkedIn:      extractLinkedIn(text),
		PortfolioURLs: extractURLs(text),
	}
}

func extractEmail(text string) string {
	return emailPattern.FindString(text)
}

// extractPhone returns the first digit run that still has at least ten digits
// after stripping separators
func extractPhone(text string) string {
	for _, raw := range phonePattern.FindAllString(text, -1) {
		cleaned := nonPhoneChars.ReplaceAllString(raw, "")
		if len(strings.TrimPrefix(cleaned, "+")) >= 10 {
			return cleaned
		}
	}
	return ""
}

func extractLinkedIn(text string) string {
	return linkedinPattern.FindString(text)
}

func extractURLs(text string) []string {
	urls := urlPattern.FindAllString(text, -1)
	if len(urls) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(urls))
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		u = strings.TrimRight(u, ".,;")
		if _, dup := seen[u]; dup {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}
