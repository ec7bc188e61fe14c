// Package fetcher wraps HTTP retrieval for the post source and the media
// prober.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// userAgent mimics a desktop browser; the profile endpoint serves a
// stripped page to unknown clients.
const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"

// Fetcher performs HTTP GETs with browser-like headers and an optional
// session cookie.
type Fetcher struct {
	client        *http.Client
	sessionCookie string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithSessionCookie attaches a provider session cookie to every request.
func WithSessionCookie(cookie string) Option {
	return func(f *Fetcher) {
		f.sessionCookie = cookie
	}
}

// New creates a Fetcher with a 30s timeout.
func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		client: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// GetBytes fetches url and returns the response body. Non-200 statuses
// are errors so callers can apply their own degrade policy.
func (f *Fetcher) GetBytes(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	if f.sessionCookie != "" {
		req.Header.Set("Cookie", f.sessionCookie)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

// Download streams url into w. Used by the media prober so video payloads
// never accumulate in memory.
func (f *Fetcher) Download(ctx context.Context, url string, w io.Writer) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("failed to download body: %w", err)
	}
	return nil
}
