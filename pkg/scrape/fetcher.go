// Package scrape fetches the externally rendered results page that feeds
// the report parser. The page is the sole input of the parsing core; this
// package only moves bytes and never interprets them.
package scrape

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Fetcher retrieves results pages from the external source.
type Fetcher struct {
	baseURL    string
	httpClient *http.Client
}

// NewFetcher creates a fetcher against the given source base URL. A zero
// timeout falls back to 30 seconds.
func NewFetcher(baseURL string, timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Fetcher{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Fetch downloads the results page for a country/industry pair and returns
// its body as a string. No schema guarantee beyond best-effort HTML5; the
// caller's parser handles whatever comes back.
func (f *Fetcher) Fetch(ctx context.Context, country, industry string) (string, error) {
	query := url.Values{}
	query.Set("country", country)
	query.Set("industry", industry)
	pageURL := fmt.Sprintf("%s/results?%s", f.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("build results request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch results page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch results page: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read results page: %w", err)
	}
	return string(body), nil
}
