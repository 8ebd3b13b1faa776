package browser

import (
	"math/rand"
	"time"

	"github.com/playwright-community/playwright-go"
)

// RandomDelay pauses for a random time between min and max (milliseconds)
func RandomDelay(min, max int) {
	if min >= max {
		time.Sleep(time.Duration(min) * time.Millisecond)
		return
	}
	time.Sleep(time.Duration(rand.Intn(max-min)+min) * time.Millisecond)
}

// ScrollToBottom triggers lazy-loaded content, then settles. Pacing only,
// not a correctness requirement.
func ScrollToBottom(page playwright.Page) {
	page.Evaluate("window.scrollTo(0, document.body.scrollHeight)")
	time.Sleep(800 * time.Millisecond)
}
