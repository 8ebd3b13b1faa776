package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"jobscan-automation/internal/scraper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	name string
	rows []scraper.Listing
	err  error
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) FetchListings(context.Context, scraper.Run) ([]scraper.Listing, error) {
	return s.rows, s.err
}

func listing(role, company, url string, score int, posted time.Time) scraper.Listing {
	return scraper.Listing{
		Role:      role,
		Company:   company,
		SourceURL: url,
		PostedAt:  posted,
		Status:    scraper.Active,
		Sector:    scraper.SectorOther,
		Score:     score,
	}
}

func testRun() scraper.Run {
	return scraper.NewRun(time.Date(2026, 8, 31, 8, 30, 0, 0, time.UTC), 7)
}

func TestDedupeFirstSeenWinsCaseFolded(t *testing.T) {
	now := time.Now().UTC()
	a := listing("Head of Data", "Acme", "https://x/1", 5, now)
	b := listing("HEAD OF DATA", "ACME", "https://x/1", 5, now)
	c := listing("Head of Data", "Acme", "https://x/2", 5, now)

	out := Dedupe([]scraper.Listing{a, b, c})
	require.Len(t, out, 2)
	//first-seen casing preserved
	assert.Equal(t, "Head of Data", out[0].Role)
	assert.Equal(t, "Acme", out[0].Company)
	assert.Equal(t, "https://x/2", out[1].SourceURL)

	//idempotent
	assert.Equal(t, out, Dedupe(out))
}

func TestRankStableWithUnknownDatesLast(t *testing.T) {
	now := time.Now().UTC()
	older := now.AddDate(0, 0, -3)

	a := listing("A", "co", "u1", 5, older)
	b := listing("B", "co", "u2", 5, now)
	c := listing("C", "co", "u3", 9, time.Time{})
	d := listing("D", "co", "u4", 5, older) //ties with a on (score, date)

	out := Rank([]scraper.Listing{a, b, c, d})
	require.Len(t, out, 4)
	assert.Equal(t, "C", out[0].Role) //highest score first
	assert.Equal(t, "B", out[1].Role) //newer date wins inside a score band
	assert.Equal(t, "A", out[2].Role)
	assert.Equal(t, "D", out[3].Role) //stable: input order kept on full tie

	//unknown dates sort after any known date at equal score
	e := listing("E", "co", "u5", 5, time.Time{})
	out = Rank([]scraper.Listing{e, b})
	assert.Equal(t, "B", out[0].Role)
	assert.Equal(t, "E", out[1].Role)
}

func TestRunDeduplicatesAcrossSources(t *testing.T) {
	run := testRun()
	row := listing("Head of Data", "Acme", "https://x/1", 5, run.Now)

	res := Run(context.Background(), []scraper.Source{
		&stubSource{name: "seek", rows: []scraper.Listing{row}},
		&stubSource{name: "indeed", rows: []scraper.Listing{row}},
	}, nil, run)

	require.Len(t, res.Records, 1)
	assert.Equal(t, 5, res.Records[0].Score)
	assert.Equal(t, Outcome{Rows: 1}, res.PerSource["seek"])
	assert.Equal(t, Outcome{Rows: 1}, res.PerSource["indeed"])
	assert.Equal(t, []string{"indeed", "seek"}, res.Selected)
}

func TestRunIsolatesFailingSource(t *testing.T) {
	run := testRun()
	rows := []scraper.Listing{
		listing("Head of Data", "Acme", "https://x/1", 7, run.Now),
		listing("Head of Analytics", "Beta", "https://x/2", 4, run.Now),
		listing("Director of Data", "Gamma", "https://x/3", 9, run.Now),
	}

	boom := scraper.Fail(scraper.KindHTTPStatus, errors.New("status 500"))
	res := Run(context.Background(), []scraper.Source{
		&stubSource{name: "seek", err: boom},
		&stubSource{name: "indeed", rows: rows},
	}, nil, run)

	require.Len(t, res.Records, 3)
	assert.Equal(t, "Director of Data", res.Records[0].Role)
	assert.Equal(t, Outcome{Err: "error: http_status"}, res.PerSource["seek"])
	assert.Equal(t, Outcome{Rows: 3}, res.PerSource["indeed"])
}

func TestRunRecoversFromPanickingSource(t *testing.T) {
	run := testRun()
	res := Run(context.Background(), []scraper.Source{
		&panicSource{},
		&stubSource{name: "indeed", rows: []scraper.Listing{listing("Head of Data", "Acme", "https://x/1", 5, run.Now)}},
	}, nil, run)

	assert.Equal(t, Outcome{Err: "error: unknown"}, res.PerSource["boom"])
	assert.Len(t, res.Records, 1)
}

type panicSource struct{}

func (*panicSource) Name() string { return "boom" }

func (*panicSource) FetchListings(context.Context, scraper.Run) ([]scraper.Listing, error) {
	panic("selector exploded")
}

func TestRunSelectionAndUnknownNames(t *testing.T) {
	run := testRun()
	seek := &stubSource{name: "seek", rows: []scraper.Listing{listing("Head of Data", "Acme", "https://x/1", 5, run.Now)}}
	indeed := &stubSource{name: "indeed", rows: []scraper.Listing{listing("Head of BI", "Beta", "https://x/2", 5, run.Now)}}

	res := Run(context.Background(), []scraper.Source{seek, indeed}, []string{"seek", "bogus"}, run)

	assert.Equal(t, []string{"seek"}, res.Selected)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "Head of Data", res.Records[0].Role)
	_, ran := res.PerSource["indeed"]
	assert.False(t, ran)
}

func TestRecencyWindowFiltersInsideAdapters(t *testing.T) {
	//two identical roles, one posted today and one ten days ago with a
	//seven day window: the adapter contract admits only the fresh one,
	//so the pipeline output holds exactly that record.
	run := testRun()
	fresh := listing("Head of Data", "Acme", "https://x/1", 5, run.Now)
	stale := listing("Head of Data", "Acme", "https://x/2", 3, run.Now.AddDate(0, 0, -10))

	admit := func(l scraper.Listing) bool { return !l.PostedAt.Before(run.Since) }
	var emitted []scraper.Listing
	for _, l := range []scraper.Listing{fresh, stale} {
		if admit(l) {
			emitted = append(emitted, l)
		}
	}

	res := Run(context.Background(), []scraper.Source{&stubSource{name: "seek", rows: emitted}}, nil, run)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "https://x/1", res.Records[0].SourceURL)
}
