package browser

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// Session identity presented to scraped sites.
const (
	UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
	Locale    = "en-AU"
)

// Manager owns one headless chromium instance and hands out isolated
// contexts. Sessions are per-run: nothing is reused across invocations.
type Manager struct {
	pw      *playwright.Playwright
	browser playwright.Browser
}

// NewManager starts playwright and launches chromium with the
// automation-controlled flag disabled.
func NewManager() (*Manager, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("could not start playwright: %w", err)
	}

	b, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
		Args: []string{
			"--disable-blink-features=AutomationControlled",
			"--no-sandbox",
		},
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("could not launch chromium: %w", err)
	}

	return &Manager{pw: pw, browser: b}, nil
}

// NewPage opens a fresh context with a realistic identity and returns its
// single page. Callers must close the page when done.
func (m *Manager) NewPage() (playwright.Page, error) {
	ctx, err := m.browser.NewContext(playwright.BrowserNewContextOptions{
		UserAgent: playwright.String(UserAgent),
		Locale:    playwright.String(Locale),
		Viewport:  &playwright.Size{Width: 1366, Height: 900},
	})
	if err != nil {
		return nil, fmt.Errorf("could not create browser context: %w", err)
	}

	page, err := ctx.NewPage()
	if err != nil {
		ctx.Close()
		return nil, fmt.Errorf("could not create page: %w", err)
	}
	return page, nil
}

func (m *Manager) Close() error {
	if m.browser != nil {
		m.browser.Close()
	}
	if m.pw != nil {
		return m.pw.Stop()
	}
	return nil
}
