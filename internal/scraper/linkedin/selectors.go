package linkedin

import (
	"github.com/playwright-community/playwright-go"
)

// firstMatching probes selectors in order and returns the matches of the
// first one yielding at least one element. Selectors are never mixed
// within a run; adding or reordering strategies is a data change in
// cardSelectors.
func firstMatching(page playwright.Page, selectors []string) ([]playwright.Locator, string) {
	for _, sel := range selectors {
		cards, err := page.Locator(sel).All()
		if err != nil {
			continue
		}
		if len(cards) > 0 {
			return cards, sel
		}
	}
	return nil, ""
}
