package filter

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var listedDaysRegex = regexp.MustCompile(`(?i)\b(?:listed|posted)?\s*(\d+)\s*day`)

// ParseDateGuess parses an absolute date string best-effort. Returns the
// zero time when the string is empty or unparseable. Naive timestamps are
// treated as UTC.
func ParseDateGuess(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}
	}
	return t
}

// ParseFreshness converts a listing-card freshness string ("just posted",
// "today", "listed 3 days ago", an absolute date) into an approximate
// posting time. Unparseable input approximates to now; search-result cards
// rarely carry an exact date, so freshness is a documented precision loss.
func ParseFreshness(s string, now time.Time) time.Time {
	t := strings.ToLower(strings.TrimSpace(s))
	if t == "" {
		return now
	}
	if strings.Contains(t, "just") || strings.Contains(t, "today") {
		return now
	}
	if m := listedDaysRegex.FindStringSubmatch(t); m != nil {
		days, err := strconv.Atoi(m[1])
		if err == nil {
			return now.AddDate(0, 0, -days)
		}
	}
	if abs := ParseDateGuess(s); !abs.IsZero() {
		return abs
	}
	return now
}
