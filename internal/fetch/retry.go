// Package fetch wraps plain GET requests with a fixed-budget, fixed-delay
// retry. Every failure (transport error or non-2xx status) is retried the
// same way; there is no backoff growth and no retryable/fatal distinction.
// Payload decoding is left to callers and is never retried.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client performs GET requests with retry.
type Client struct {
	HTTP        *http.Client
	MaxAttempts int
	RetryDelay  time.Duration
}

// New creates a Client with optional proxy support.
func New(proxyURL string, maxAttempts int, retryDelay time.Duration) *Client {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Client{
		HTTP: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		MaxAttempts: maxAttempts,
		RetryDelay:  retryDelay,
	}
}

// Get fetches the URL, retrying up to MaxAttempts with a fixed delay between
// attempts. After the budget is exhausted the last failure is returned.
func (c *Client) Get(ctx context.Context, rawURL string) ([]byte, error) {
	var lastErr error
	for attempt := 1; attempt <= c.MaxAttempts; attempt++ {
		body, err := c.getOnce(ctx, rawURL)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if attempt == c.MaxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.RetryDelay):
		}
	}
	return nil, fmt.Errorf("all %d attempts failed: %w", c.MaxAttempts, lastErr)
}

// GetJSON fetches the URL with retry and decodes the body into v.
// A body that fails to decode is a caller-side failure, not a retried one.
func (c *Client) GetJSON(ctx context.Context, rawURL string, v interface{}) error {
	body, err := c.Get(ctx, rawURL)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode %s: %w", rawURL, err)
	}
	return nil
}

func (c *Client) getOnce(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "BitMonitor/1.0")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("status %d, body: %s", resp.StatusCode, string(body))
	}
	return body, nil
}
