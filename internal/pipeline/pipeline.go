// Aggregation over the source adapters: per-source fault isolation,
// identity-key dedup, score/date ranking.

package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"

	"jobscan-automation/internal/scraper"
)

// Outcome is one source's row in the per-source tally. It marshals the
// way the run summary expects: a row count on success, an
// "error: <kind>" string on failure.
type Outcome struct {
	Rows int
	Err  string
}

func (o Outcome) MarshalJSON() ([]byte, error) {
	if o.Err != "" {
		return json.Marshal(o.Err)
	}
	return json.Marshal(o.Rows)
}

// Result is the pipeline's output contract to report assembly.
type Result struct {
	Records   []scraper.Listing
	PerSource map[string]Outcome
	Selected  []string
	Run       scraper.Run
}

// Run executes the selected sources sequentially. A failing source is
// tallied and skipped; it never aborts the remaining sources. Selection
// is by source name; empty selection means all. Unknown names are a
// warning, not an error.
func Run(ctx context.Context, sources []scraper.Source, selected []string, run scraper.Run) Result {
	known := make(map[string]bool, len(sources))
	for _, s := range sources {
		known[s.Name()] = true
	}

	want := make(map[string]bool)
	for _, name := range selected {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if !known[name] {
			log.Printf("[RUN] warning: unknown source %q requested, ignoring", name)
			continue
		}
		want[name] = true
	}
	if len(want) == 0 {
		for name := range known {
			want[name] = true
		}
	}

	res := Result{
		PerSource: make(map[string]Outcome),
		Run:       run,
	}
	for name := range want {
		res.Selected = append(res.Selected, name)
	}
	sort.Strings(res.Selected)
	log.Printf("[RUN] selected sources: %v", res.Selected)

	var all []scraper.Listing
	for _, src := range sources {
		if !want[src.Name()] {
			continue
		}
		log.Printf("[RUN] source begin: %s", src.Name())
		rows, err := fetchIsolated(ctx, src, run)
		if err != nil {
			res.PerSource[src.Name()] = Outcome{Err: fmt.Sprintf("error: %s", scraper.ErrKind(err))}
			log.Printf("[ERR] %s: %v", src.Name(), err)
			continue
		}
		res.PerSource[src.Name()] = Outcome{Rows: len(rows)}
		all = append(all, rows...)
		log.Printf("[RUN] source done: %s rows=%d", src.Name(), len(rows))
	}

	log.Printf("[RUN] totals pre-dedupe rows=%d", len(all))
	res.Records = Rank(Dedupe(all))
	log.Printf("[RUN] totals post-dedupe rows=%d", len(res.Records))
	return res
}

// fetchIsolated converts an adapter panic into a tallied error so one
// misbehaving source cannot take the run down.
func fetchIsolated(ctx context.Context, src scraper.Source, run scraper.Run) (rows []scraper.Listing, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = scraper.Fail(scraper.KindUnknown, fmt.Errorf("panic: %v", r))
		}
	}()
	return src.FetchListings(ctx, run)
}

// Dedupe drops listings whose identity key (case-folded role and
// company plus source URL) was already seen, keeping first-seen order
// and casing.
func Dedupe(in []scraper.Listing) []scraper.Listing {
	type key struct {
		role, company, url string
	}
	seen := make(map[key]bool, len(in))
	out := make([]scraper.Listing, 0, len(in))
	for _, l := range in {
		k := key{strings.ToLower(l.Role), strings.ToLower(l.Company), l.SourceURL}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, l)
	}
	return out
}

// Rank orders by score descending, then posting date descending; the
// zero (unknown) date sorts last. Stable: equal keys keep input order.
func Rank(in []scraper.Listing) []scraper.Listing {
	out := make([]scraper.Listing, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].PostedAt.After(out[j].PostedAt)
	})
	return out
}
