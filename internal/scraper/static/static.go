// Static adapters issue one GET against a baked search URL and pull
// candidate listings out of the anchor elements. Search-result pages
// expose no posting date or body text without a detail-page visit, so
// PostedAt approximates to the run clock and sector stays unclassified.

package static

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"

	"jobscan-automation/internal/fetch"
	"jobscan-automation/internal/filter"
	"jobscan-automation/internal/scraper"

	"github.com/PuerkitoBio/goquery"
)

// Adapter scrapes one HTML-scrapeable source. Per-source tuning is data:
// URL, origin, anchor selector, company placeholder.
type Adapter struct {
	name        string
	searchURL   string
	origin      string
	selector    string
	placeholder string
	client      *fetch.Client
}

func (a *Adapter) Name() string { return a.name }

func (a *Adapter) FetchListings(ctx context.Context, run scraper.Run) ([]scraper.Listing, error) {
	log.Printf("[%s] fetch begin url=%s", strings.ToUpper(a.name), a.searchURL)

	body, err := a.client.Get(ctx, a.searchURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, scraper.Fail(scraper.KindParse, fmt.Errorf("parse %s html: %w", a.name, err))
	}

	anchors := doc.Find(a.selector)
	log.Printf("[%s] raw anchors count=%d", strings.ToUpper(a.name), anchors.Length())

	var out []scraper.Listing
	anchors.Each(func(_ int, sel *goquery.Selection) {
		title := filter.NormalizeText(sel.Text())
		href := strings.TrimSpace(sel.AttrOr("href", ""))
		if title == "" || href == "" {
			return
		}

		full := href
		if strings.HasPrefix(href, "/") {
			full = a.origin + href
		}

		if !filter.TitleMatches(title) {
			return
		}

		// page often needs a detail click for the real date; assume fresh
		posted := run.Now
		if posted.Before(run.Since) {
			return
		}

		// no body text in static mode
		sector := filter.SectorOf("", run.SectorPriority)

		out = append(out, scraper.Listing{
			Role:       title,
			Company:    a.placeholder,
			SourceURL:  full,
			PostedAt:   posted,
			Engagement: filter.Engagement(title),
			Status:     scraper.Active,
			Sector:     sector,
			Rationale:  fmt.Sprintf("Title match; %s search", run.City),
			Score:      filter.AlignmentScore(title, "", sector, posted, run),
		})
	})

	log.Printf("[%s] final rows count=%d", strings.ToUpper(a.name), len(out))
	return out, nil
}
