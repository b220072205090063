// Package httpclient wraps the shared HTTP client used by engine
// modules. It centralizes timeout and retry policy so individual engines
// only say what they want fetched.
package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"resty.dev/v3"
)

// Options configures a Client. The zero value disables retries and uses
// no timeout.
type Options struct {
	// Timeout bounds each attempt, not the whole retry budget.
	Timeout time.Duration

	// RetryCount is the number of additional attempts after the first.
	RetryCount int

	// RetryWait is the pause between attempts.
	RetryWait time.Duration

	// RetryStatuses lists the HTTP status codes worth retrying. Transport
	// errors are always retried while attempts remain.
	RetryStatuses []int
}

// Client is a closeable JSON-over-HTTP client with uniform retry policy.
type Client struct {
	rc *resty.Client
}

// New builds a Client from the given options.
func New(opts Options) *Client {
	rc := resty.New().
		SetTimeout(opts.Timeout).
		SetRetryCount(opts.RetryCount).
		SetRetryWaitTime(opts.RetryWait)

	statuses := slices.Clone(opts.RetryStatuses)
	rc.AddRetryConditions(func(res *resty.Response, err error) bool {
		if err != nil {
			return true
		}
		return slices.Contains(statuses, res.StatusCode())
	})

	return &Client{rc: rc}
}

// Close releases the client's idle connections.
func (c *Client) Close() error {
	return c.rc.Close()
}

// GetJSON fetches url and decodes the response body into into. The HTTP
// status code is returned even when decoding fails; a non-2xx status is
// an error.
func (c *Client) GetJSON(ctx context.Context, url string, into any) (int, error) {
	res, err := c.rc.R().SetContext(ctx).Get(url)
	if err != nil {
		return 0, fmt.Errorf("GET %s: %w", url, err)
	}
	if res.IsError() {
		return res.StatusCode(), fmt.Errorf("GET %s: unexpected status %s", url, res.Status())
	}
	if into != nil {
		if err := json.Unmarshal(res.Bytes(), into); err != nil {
			return res.StatusCode(), fmt.Errorf("GET %s: decoding body: %w", url, err)
		}
	}
	return res.StatusCode(), nil
}

// PostJSON sends body as JSON to url. A non-2xx status is an error.
func (c *Client) PostJSON(ctx context.Context, url string, body any) (int, error) {
	res, err := c.rc.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(url)
	if err != nil {
		return 0, fmt.Errorf("POST %s: %w", url, err)
	}
	if res.IsError() {
		return res.StatusCode(), fmt.Errorf("POST %s: unexpected status %s", url, res.Status())
	}
	return res.StatusCode(), nil
}
