package fetch

import (
	"context"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"net/url"
	"sync"
	"time"

	"jobscan-automation/internal/scraper"

	"golang.org/x/time/rate"
)

const userAgent = "Mozilla/5.0 (JobScan/1.0)"

// retryable HTTP statuses, matching the session retry policy of the
// original scanner.
var retryStatuses = map[int]bool{
	http.StatusTooManyRequests:     true,
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

// Client is a GET-only HTTP client with retry/backoff on transient
// statuses and per-host rate limiting.
type Client struct {
	hc          *http.Client
	maxRetries  int
	backoffBase time.Duration

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	r        rate.Limit
	b        int
}

func NewClient() *Client {
	return &Client{
		hc:          &http.Client{Timeout: 30 * time.Second},
		maxRetries:  3,
		backoffBase: 500 * time.Millisecond,
		limiters:    make(map[string]*rate.Limiter),
		r:           rate.Limit(1),
		b:           2,
	}
}

func (c *Client) limiterFor(host string) *rate.Limiter {
	c.mu.Lock()
	defer c.mu.Unlock()

	if lim, ok := c.limiters[host]; ok {
		return lim
	}
	lim := rate.NewLimiter(c.r, c.b)
	c.limiters[host] = lim
	return lim
}

// Get fetches rawURL, retrying 429/5xx responses with exponential backoff
// before giving up. The returned error carries a SourceError kind so the
// pipeline can tally it.
func (c *Client) Get(ctx context.Context, rawURL string) ([]byte, error) {
	host := "_"
	if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
		host = u.Host
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(float64(c.backoffBase) * math.Pow(2, float64(attempt-1)))
			log.Printf("[HTTP] retry %d for %s in %v", attempt, rawURL, backoff)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, scraper.Fail(scraper.KindNetwork, ctx.Err())
			}
		}

		if err := c.limiterFor(host).Wait(ctx); err != nil {
			return nil, scraper.Fail(scraper.KindNetwork, err)
		}

		body, retry, err := c.getOnce(ctx, rawURL)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if !retry {
			return nil, lastErr
		}
	}
	return nil, lastErr
}

func (c *Client) getOnce(ctx context.Context, rawURL string) (body []byte, retry bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, false, scraper.Fail(scraper.KindNetwork, err)
	}
	req.Header.Set("User-Agent", userAgent)

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, true, scraper.Fail(scraper.KindNetwork, err)
	}
	defer res.Body.Close()

	log.Printf("[HTTP] GET %s status=%d", rawURL, res.StatusCode)

	if res.StatusCode >= 400 {
		return nil, retryStatuses[res.StatusCode],
			scraper.Fail(scraper.KindHTTPStatus, fmt.Errorf("GET %s: status %d", rawURL, res.StatusCode))
	}

	body, err = io.ReadAll(res.Body)
	if err != nil {
		return nil, true, scraper.Fail(scraper.KindNetwork, err)
	}
	return body, false, nil
}
