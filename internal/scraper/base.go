// Shared types for all source adapters
// Ensure consistency

package scraper

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Engagement is how the role is contracted.
type Engagement string

const (
	Permanent Engagement = "Permanent"
	Contract  Engagement = "Contract"
)

// Status of a listing. Closed detection is not implemented; adapters
// always emit Active.
type Status string

const (
	Active Status = "Active"
	Closed Status = "Closed"
)

// SectorOther is the sentinel sector when no priority keyword matches.
const SectorOther = "edge-case/other"

// Listing is one discovered job posting candidate.
type Listing struct {
	Role       string
	Company    string
	SourceURL  string
	PostedAt   time.Time // zero when the source exposes no date
	Engagement Engagement
	Status     Status
	Sector     string
	Rationale  string
	Score      int // always clamped to [1,10]
}

// Run carries the window and preferences for a single pipeline run.
// Now/Since are computed once in main and passed down so every adapter
// and scoring call sees the same clock.
type Run struct {
	Now            time.Time
	Since          time.Time
	WindowDays     int
	City           string
	TechPref       []string
	SectorPriority []string
}

// NewRun builds the run window from a clock reading.
func NewRun(now time.Time, windowDays int) Run {
	return Run{
		Now:        now.UTC(),
		Since:      now.UTC().AddDate(0, 0, -windowDays),
		WindowDays: windowDays,
	}
}

// Source defines the interface that all source adapters must implement
type Source interface {
	// FetchListings scrapes one source. An empty slice is success,
	// not failure; errors are isolated per source by the pipeline.
	FetchListings(ctx context.Context, run Run) ([]Listing, error)

	// Name is the source key (seek, indeed, linkedin, ...)
	Name() string
}

// Error kinds recorded in the per-source tally.
const (
	KindNetwork    = "network"
	KindHTTPStatus = "http_status"
	KindParse      = "parse"
	KindNavigation = "navigation_timeout"
	KindBrowser    = "browser"
	KindUnknown    = "unknown"
)

// SourceError wraps an adapter failure with a short kind for the tally.
type SourceError struct {
	Kind string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// Fail wraps err with a kind, keeping an existing SourceError intact.
func Fail(kind string, err error) error {
	var se *SourceError
	if errors.As(err, &se) {
		return err
	}
	return &SourceError{Kind: kind, Err: err}
}

// ErrKind extracts the tally kind from an adapter error.
func ErrKind(err error) string {
	var se *SourceError
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindUnknown
}
