package filter

import (
	"strings"
	"unicode"

	"jobscan-automation/internal/scraper"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeText collapses whitespace runs to a single space, trims, and
// strips unicode combining marks so that decorated titles still match the
// keyword sets. Idempotent.
func NormalizeText(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	cleaned, _, err := transform.String(t, s)
	if err != nil {
		cleaned = s
	}
	cleaned = strings.ReplaceAll(cleaned, " ", " ")
	return strings.Join(strings.Fields(cleaned), " ")
}

// TitleMatches reports whether title contains any leadership-role phrase.
func TitleMatches(title string) bool {
	t := strings.ToLower(title)
	for _, phrase := range leadershipPhrases {
		if strings.Contains(t, phrase) {
			return true
		}
	}
	return false
}

// Engagement classifies a title/body blob as Contract or Permanent.
func Engagement(text string) scraper.Engagement {
	t := strings.ToLower(text)
	for _, indicator := range contractIndicators {
		if strings.Contains(t, indicator) {
			return scraper.Contract
		}
	}
	return scraper.Permanent
}

// SectorOf returns the first keyword from the priority list found in body,
// ties broken by list order, or the sentinel when nothing matches.
func SectorOf(body string, priority []string) string {
	b := strings.ToLower(body)
	for _, sector := range priority {
		sector = strings.ToLower(strings.TrimSpace(sector))
		if sector != "" && strings.Contains(b, sector) {
			return sector
		}
	}
	return scraper.SectorOther
}
