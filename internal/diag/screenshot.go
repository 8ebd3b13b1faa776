package diag

import (
	"context"
	"fmt"
	"log"
	"time"

	"jobscan-automation/internal/artifact"

	"github.com/playwright-community/playwright-go"
)

// ScreenshotDebugger captures full-page screenshots from failing scrape
// sessions and pushes them through the artifact sink.
type ScreenshotDebugger struct {
	sink   artifact.Sink
	prefix string
}

func NewScreenshotDebugger(sink artifact.Sink, prefix string) *ScreenshotDebugger {
	return &ScreenshotDebugger{sink: sink, prefix: prefix}
}

// CaptureAndUpload takes a full-page screenshot and uploads it as
// <prefix>/<name>_<timestamp>.png. Failures here are diagnostic-only and
// never escalate; the error is returned for logging.
func (d *ScreenshotDebugger) CaptureAndUpload(ctx context.Context, page playwright.Page, name, message string) error {
	log.Printf("[DIAG] %s", message)

	shot, err := page.Screenshot(playwright.PageScreenshotOptions{
		FullPage: playwright.Bool(true),
	})
	if err != nil {
		log.Printf("[DIAG] screenshot capture failed: %v", err)
		return err
	}

	path := fmt.Sprintf("%s/%s_%s.png", d.prefix, name, time.Now().UTC().Format("2006-01-02_15-04-05"))
	if err := d.sink.Put(ctx, path, "image/png", shot); err != nil {
		log.Printf("[DIAG] screenshot upload failed: %v", err)
		return err
	}

	log.Printf("[DIAG] screenshot saved: %s", path)
	return nil
}
