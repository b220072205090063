// Package http_check implements the engine that waits for an HTTP endpoint
// to report a wanted status code, polling until it does or the configured
// window closes.
package http_check

import (
	"context"
	"fmt"
	"time"

	"github.com/liftgrid/liftgrid/internal/ctxlog"
	"github.com/liftgrid/liftgrid/internal/httpclient"
	"github.com/liftgrid/liftgrid/internal/poll"
	"github.com/liftgrid/liftgrid/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments for the http_check engine.
type Input struct {
	URL            string `hcl:"url"`
	ExpectedStatus int    `hcl:"expected_status,optional"`
	Timeout        string `hcl:"timeout,optional"`
	Interval       string `hcl:"interval,optional"`
}

const (
	defaultExpectedStatus = 200
	defaultTimeout        = time.Minute
	defaultInterval       = 2 * time.Second
)

func run(ctx context.Context, input any) error {
	in := input.(*Input)
	logger := ctxlog.FromContext(ctx)

	expected := in.ExpectedStatus
	if expected == 0 {
		expected = defaultExpectedStatus
	}
	timeout, err := parseDuration(in.Timeout, defaultTimeout)
	if err != nil {
		return fmt.Errorf("bad timeout %q: %w", in.Timeout, err)
	}
	interval, err := parseDuration(in.Interval, defaultInterval)
	if err != nil {
		return fmt.Errorf("bad interval %q: %w", in.Interval, err)
	}

	// Polling is the retry loop here, so the client itself does not retry.
	client := httpclient.New(httpclient.Options{Timeout: interval})
	defer client.Close()

	pollCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	err = poll.Until(pollCtx, interval, func(ctx context.Context) (bool, error) {
		status, err := client.GetJSON(ctx, in.URL, nil)
		if status == expected {
			return true, nil
		}
		if err != nil {
			logger.Debug("Endpoint not ready.", "url", in.URL, "error", err)
		} else {
			logger.Debug("Endpoint not ready.", "url", in.URL, "status", status)
		}
		return false, nil
	})
	if err != nil {
		return fmt.Errorf("waiting for %s to return %d: %w", in.URL, expected, err)
	}

	logger.Debug("Endpoint ready.", "url", in.URL, "status", expected)
	return nil
}

func parseDuration(s string, fallback time.Duration) (time.Duration, error) {
	if s == "" {
		return fallback, nil
	}
	return time.ParseDuration(s)
}

// Register registers the engine with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterEngine("http_check", &registry.RegisteredEngine{
		NewInput: func() any { return new(Input) },
		Run:      run,
	})
}
