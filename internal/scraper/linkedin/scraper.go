// Browser-driven adapter for the LinkedIn guest job search. The search
// URL (city, recency and query filters baked in) comes from
// configuration; without one the adapter is a no-op.

package linkedin

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"

	"jobscan-automation/internal/browser"
	"jobscan-automation/internal/diag"
	"jobscan-automation/internal/filter"
	"jobscan-automation/internal/scraper"

	"github.com/playwright-community/playwright-go"
)

const (
	companyPlaceholder = "LinkedIn Listing"
	maxCards           = 120
	navTimeoutMs       = 60000
	fieldTimeoutMs     = 1200
)

// Card container selectors, most specific first. The first selector
// yielding at least one match is used for the whole page.
var cardSelectors = []string{
	"ul.jobs-search__results-list > li",
	"div.base-search-card",
	"div.job-search-card",
	"li.jobs-search-results__list-item",
}

var consentPattern = regexp.MustCompile(`(?i)accept|agree|got it|ok`)

type Scraper struct {
	searchURL string
	debug     *diag.ScreenshotDebugger
}

func New(searchURL string, debug *diag.ScreenshotDebugger) *Scraper {
	return &Scraper{searchURL: searchURL, debug: debug}
}

func (s *Scraper) Name() string { return "linkedin" }

func (s *Scraper) FetchListings(ctx context.Context, run scraper.Run) ([]scraper.Listing, error) {
	if s.searchURL == "" {
		log.Println("[LINKEDIN] no search URL configured, skipping")
		return nil, nil
	}

	mgr, err := browser.NewManager()
	if err != nil {
		return nil, scraper.Fail(scraper.KindBrowser, err)
	}
	defer mgr.Close()

	page, err := mgr.NewPage()
	if err != nil {
		return nil, scraper.Fail(scraper.KindBrowser, err)
	}
	defer page.Close()

	out, err := s.scrapePage(ctx, page, run)
	if err != nil {
		return nil, err
	}

	if out != nil && len(out) == 0 {
		// the page loaded but produced nothing; grab evidence for
		// selector drift or blocking. Best-effort only.
		s.captureEmptyRunDiagnostic(ctx, mgr)
	}

	log.Printf("[LINKEDIN] final rows count=%d", len(out))
	return out, nil
}

// scrapePage runs the navigate/consent/pace/extract sequence against an
// already-open page. Returns a nil slice on degraded exits (timeout, no
// cards) and an empty non-nil slice when the page yielded cards but none
// survived filtering.
func (s *Scraper) scrapePage(ctx context.Context, page playwright.Page, run scraper.Run) ([]scraper.Listing, error) {
	log.Printf("[LINKEDIN] navigating to %s", s.searchURL)
	if _, err := page.Goto(s.searchURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(navTimeoutMs),
	}); err != nil {
		if isTimeout(err) {
			// degraded, not fatal: keep whatever rendered for debugging
			s.debug.CaptureAndUpload(ctx, page, "linkedin-nav-timeout", "LinkedIn: navigation timed out")
			return nil, nil
		}
		return nil, scraper.Fail(scraper.KindNavigation, err)
	}

	switch dismissConsent(page) {
	case consentDismissed:
		log.Println("[LINKEDIN] consent overlay dismissed")
	case consentFailed:
		log.Println("[LINKEDIN] consent overlay present but could not be dismissed, continuing")
	}

	// pacing before selector probing; triggers lazy-loaded cards
	browser.RandomDelay(1000, 2200)
	browser.ScrollToBottom(page)

	cards, selector := firstMatching(page, cardSelectors)
	if len(cards) == 0 {
		s.debug.CaptureAndUpload(ctx, page, "linkedin-no-cards", "LinkedIn: no card selector matched")
		return nil, nil
	}
	log.Printf("[LINKEDIN] found %d cards via %q", len(cards), selector)

	out := make([]scraper.Listing, 0, len(cards))
	for i, card := range cards {
		if i >= maxCards {
			break
		}
		listing, err := s.extractCard(card, run)
		if err != nil {
			log.Printf("[LINKEDIN] card %d skipped: %v", i, err)
			continue
		}
		if listing != nil {
			out = append(out, *listing)
		}
	}
	return out, nil
}

// extractCard pulls one listing out of a card, tolerating missing
// fields. A nil listing with nil error means the card was filtered out.
func (s *Scraper) extractCard(card playwright.Locator, run scraper.Run) (*scraper.Listing, error) {
	title := s.cardTitle(card)
	if title == "" || !filter.TitleMatches(title) {
		return nil, nil
	}

	href, err := card.Locator("a").First().GetAttribute("href", playwright.LocatorGetAttributeOptions{
		Timeout: playwright.Float(fieldTimeoutMs),
	})
	if err != nil {
		return nil, fmt.Errorf("card link: %w", err)
	}
	href = strings.TrimSpace(href)
	if href == "" {
		return nil, nil
	}
	if strings.HasPrefix(href, "/") {
		href = "https://www.linkedin.com" + href
	}

	company := companyPlaceholder
	if text, err := card.Locator("h4.base-search-card__subtitle, a.hidden-nested-link").First().
		TextContent(playwright.LocatorTextContentOptions{Timeout: playwright.Float(fieldTimeoutMs)}); err == nil {
		if cleaned := filter.NormalizeText(text); cleaned != "" {
			company = cleaned
		}
	}

	// location is extracted best-effort; filtering ignores it for now
	if loc, err := card.Locator("span.job-search-card__location").First().
		TextContent(playwright.LocatorTextContentOptions{Timeout: playwright.Float(fieldTimeoutMs)}); err == nil {
		log.Printf("[LINKEDIN] %s (%s)", title, filter.NormalizeText(loc))
	}

	posted := run.Now
	if freshness, err := card.Locator("time").First().
		TextContent(playwright.LocatorTextContentOptions{Timeout: playwright.Float(fieldTimeoutMs)}); err == nil {
		posted = filter.ParseFreshness(freshness, run.Now)
	}
	if posted.Before(run.Since) {
		return nil, nil
	}

	// no body text without a detail visit
	sector := filter.SectorOf("", run.SectorPriority)

	return &scraper.Listing{
		Role:       title,
		Company:    company,
		SourceURL:  href,
		PostedAt:   posted,
		Engagement: filter.Engagement(title),
		Status:     scraper.Active,
		Sector:     sector,
		Rationale:  "Title match; direct search URL",
		Score:      filter.AlignmentScore(title, "", sector, posted, run),
	}, nil
}

func (s *Scraper) cardTitle(card playwright.Locator) string {
	title, err := card.Locator("h3.base-search-card__title").First().
		TextContent(playwright.LocatorTextContentOptions{Timeout: playwright.Float(fieldTimeoutMs)})
	if err != nil || strings.TrimSpace(title) == "" {
		title, err = card.Locator("a").First().
			TextContent(playwright.LocatorTextContentOptions{Timeout: playwright.Float(fieldTimeoutMs)})
		if err != nil {
			return ""
		}
	}
	return filter.NormalizeText(title)
}

// captureEmptyRunDiagnostic opens a second short-lived page purely for a
// screenshot. Every failure here is swallowed.
func (s *Scraper) captureEmptyRunDiagnostic(ctx context.Context, mgr *browser.Manager) {
	page, err := mgr.NewPage()
	if err != nil {
		log.Printf("[LINKEDIN] diagnostic session failed: %v", err)
		return
	}
	defer page.Close()

	if _, err := page.Goto(s.searchURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(30000),
	}); err != nil {
		log.Printf("[LINKEDIN] diagnostic navigation failed: %v", err)
		return
	}
	s.debug.CaptureAndUpload(ctx, page, "linkedin-empty-run", "LinkedIn: page loaded but zero rows")
}

func isTimeout(err error) bool {
	if errors.Is(err, playwright.ErrTimeout) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "timeout")
}
