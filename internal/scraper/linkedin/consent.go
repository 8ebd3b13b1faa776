package linkedin

import (
	"github.com/playwright-community/playwright-go"
)

// consentOutcome distinguishes "no overlay" from "overlay we could not
// dismiss" so the two paths stay observable.
type consentOutcome int

const (
	consentAbsent consentOutcome = iota
	consentDismissed
	consentFailed
)

// dismissConsent clicks the first button whose accessible name looks like
// a cookie/consent accept action. The overlay may legitimately not exist;
// neither outcome is an error.
func dismissConsent(page playwright.Page) consentOutcome {
	btn := page.GetByRole(*playwright.AriaRoleButton, playwright.PageGetByRoleOptions{
		Name: consentPattern,
	}).First()

	count, err := btn.Count()
	if err != nil || count == 0 {
		return consentAbsent
	}

	if err := btn.Click(playwright.LocatorClickOptions{
		Timeout: playwright.Float(2500),
	}); err != nil {
		return consentFailed
	}
	return consentDismissed
}
