package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultUserAgent is the browser-like User-Agent sent with every request
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/102.0.0.0 Safari/537.36"

// StatusError is returned when the server answers with a non-success status
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d", e.StatusCode)
}

// Options configures an HTTPClient
type Options struct {
	UserAgent string
	// Timeout bounds a whole request including the body read. Zero means no timeout.
	Timeout time.Duration
}

const maxRedirects = 10

// ErrTooManyRedirects is returned when a page redirects more than maxRedirects times
var ErrTooManyRedirects = errors.New("stopped after 10 redirects")

// HTTPClient wraps an http.Client and sets a fixed User-Agent on every request
type HTTPClient struct {
	client    *http.Client
	userAgent string
}

// NewClient creates a new HTTP client with the given options
func NewClient(opts Options) *HTTPClient {
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}

	client := &http.Client{
		Timeout: opts.Timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return ErrTooManyRedirects
			}
			return nil
		},
	}

	return &HTTPClient{
		client:    client,
		userAgent: opts.UserAgent,
	}
}

// Do executes an HTTP request with the User-Agent header set
func (c *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", c.userAgent)
	return c.client.Do(req)
}

// Get is a convenience method for GET requests
func (c *HTTPClient) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	return c.Do(req)
}

// FetchHTML downloads the page at url and returns its body.
// Any status of 400 or above yields a *StatusError.
func (c *HTTPClient) FetchHTML(ctx context.Context, url string) (string, error) {
	resp, err := c.Get(ctx, url)
	if err != nil {
		return "", fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return "", &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	return string(body), nil
}
