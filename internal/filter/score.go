package filter

import (
	"strings"
	"time"

	"jobscan-automation/internal/scraper"
)

// AlignmentScore rates how well a listing fits the target profile:
// +3 leadership title, +2 per preferred tech mentioned, +2 classified
// sector, +2 posted inside the window. Clamped to [1,10]. Pure function:
// the clock comes from run, never from time.Now.
func AlignmentScore(title, body, sector string, posted time.Time, run scraper.Run) int {
	score := 0

	if TitleMatches(title) {
		score += 3
	}

	titleLower := strings.ToLower(title)
	bodyLower := strings.ToLower(body)
	for _, tech := range run.TechPref {
		tech = strings.ToLower(strings.TrimSpace(tech))
		if tech == "" {
			continue
		}
		if strings.Contains(bodyLower, tech) || strings.Contains(titleLower, tech) {
			score += 2
		}
	}

	if sector != "" && sector != scraper.SectorOther {
		score += 2
	}

	if !posted.IsZero() && !posted.Before(run.Since) {
		score += 2
	}

	if score > 10 {
		return 10
	}
	if score < 1 {
		return 1
	}
	return score
}
