// Package fetch provides the bounded HTTP client shared by the feed and
// archive adapters. Each request carries a fixed timeout, follows redirects,
// and sends a realistic browser-like header set so catalog sources that
// reject obvious bot traffic still answer.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultTimeout bounds a full page or feed fetch.
	DefaultTimeout = 30 * time.Second

	// DiscoveryTimeout bounds the short probe requests used by RSS
	// endpoint discovery.
	DiscoveryTimeout = 8 * time.Second

	// maxResponseBodyBytes limits the size of fetched responses.
	maxResponseBodyBytes = 10 * 1024 * 1024 // 10 MB

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36 GridironWire/1.0"
)

// StatusError reports a non-2xx response. The body is not retained.
type StatusError struct {
	URL        string
	StatusCode int
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
}

// Client performs bounded HTTP GETs. A zero-value Client is not usable;
// construct one with NewClient.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a Client with the given request timeout. Redirects are
// followed (net/http default). Timeouts of zero or below fall back to
// DefaultTimeout.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Get fetches the URL and returns the response body and status code.
// Non-2xx responses and transport failures are returned as errors; the
// client never panics past its boundary. Bodies are capped at 10 MB.
func (c *Client) Get(ctx context.Context, url string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, 0, fmt.Errorf("fetch new request: %w", err)
	}

	setBrowserHeaders(req)

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return nil, 0, fmt.Errorf("fetch do request: %w", doErr)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, resp.StatusCode, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodyBytes))
	if readErr != nil {
		return nil, resp.StatusCode, fmt.Errorf("fetch read body: %w", readErr)
	}

	return body, resp.StatusCode, nil
}

// setBrowserHeaders applies the identification header set sent with every
// request.
func setBrowserHeaders(req *http.Request) {
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")
}
