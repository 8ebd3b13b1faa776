package report

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"jobscan-automation/internal/pipeline"
	"jobscan-automation/internal/scraper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() []scraper.Listing {
	return []scraper.Listing{
		{
			Role:       "Head of Data",
			Company:    "Acme",
			SourceURL:  "https://x/1",
			PostedAt:   time.Date(2026, 8, 31, 8, 30, 0, 0, time.UTC),
			Engagement: scraper.Permanent,
			Status:     scraper.Active,
			Sector:     scraper.SectorOther,
			Rationale:  "Title match; Sydney search",
			Score:      5,
		},
	}
}

func TestCSV(t *testing.T) {
	out, err := CSV(sample())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Role,Company/Agency")
	assert.Contains(t, lines[0], "Alignment Score (1–10)")
	assert.Contains(t, lines[1], "Head of Data,Acme,https://x/1,2026-08-31,Permanent,Active")

	empty, err := CSV(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestHTML(t *testing.T) {
	title := Title("Sydney", time.Date(2026, 8, 31, 8, 30, 0, 0, time.UTC))
	out, err := HTML(sample(), title)
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, "<h2>Sydney Data Leadership Intelligence Report — 31 August 2026 (08:30 Sydney)</h2>")
	assert.Contains(t, html, "<td>Head of Data</td>")
	assert.Contains(t, html, "<td>https://x/1</td>")

	stub, err := HTML(nil, title)
	require.NoError(t, err)
	assert.Equal(t, "<p>No matching roles today.</p>", string(stub))
}

func TestSummary(t *testing.T) {
	run := scraper.NewRun(time.Date(2026, 8, 31, 8, 30, 0, 0, time.UTC), 7)
	res := pipeline.Result{
		Records:  sample(),
		Selected: []string{"indeed", "seek"},
		PerSource: map[string]pipeline.Outcome{
			"seek":   {Rows: 1},
			"indeed": {Err: "error: http_status"},
		},
		Run: run,
	}

	out, err := Summary(res)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "2026-08-31T08:30:00Z", decoded["now_utc"])
	assert.Equal(t, "2026-08-24T08:30:00Z", decoded["since_utc"])
	assert.Equal(t, float64(1), decoded["total_rows"])

	perSource := decoded["per_source"].(map[string]any)
	assert.Equal(t, float64(1), perSource["seek"])
	assert.Equal(t, "error: http_status", perSource["indeed"])
}

func TestFolder(t *testing.T) {
	assert.Equal(t, "jobs_report/2026-08-31", Folder("jobs_report", time.Date(2026, 8, 31, 23, 0, 0, 0, time.UTC)))
}
