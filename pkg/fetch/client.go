// Package fetch provides the outbound HTTP client used for all feed and
// page retrieval. Several vendor origins reject bare default client
// identities, so every request carries realistic browser headers.
package fetch

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	UserAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	acceptHeader   = "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8"
	acceptLanguage = "en-US,en;q=0.5"
)

const DefaultTimeout = 30 * time.Second

type Client struct {
	http *http.Client
}

func New() *Client {
	return NewWithTimeout(DefaultTimeout)
}

func NewWithTimeout(timeout time.Duration) *Client {
	return &Client{
		http: &http.Client{
			Timeout:   timeout,
			Transport: identityTransport{base: http.DefaultTransport},
		},
	}
}

// Get retrieves rawURL and returns the body. Non-2xx responses are
// errors.
func (c *Client) Get(rawURL string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request %s: %w", rawURL, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("get %s: unexpected status %d", rawURL, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", rawURL, err)
	}

	return body, nil
}

// HTTPClient exposes the underlying client so the feed parser issues
// its requests with the same identity and timeout.
func (c *Client) HTTPClient() *http.Client {
	return c.http
}

type identityTransport struct {
	base http.RoundTripper
}

func (t identityTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", UserAgent)
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", acceptHeader)
	}
	if req.Header.Get("Accept-Language") == "" {
		req.Header.Set("Accept-Language", acceptLanguage)
	}
	return t.base.RoundTrip(req)
}
