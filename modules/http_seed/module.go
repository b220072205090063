// Package http_seed implements the engine that loads a fixture file and
// POSTs each of its records to an HTTP endpoint, in fixture order.
package http_seed

import (
	"context"
	"fmt"
	"time"

	"github.com/liftgrid/liftgrid/internal/ctxlog"
	"github.com/liftgrid/liftgrid/internal/fixture"
	"github.com/liftgrid/liftgrid/internal/httpclient"
	"github.com/liftgrid/liftgrid/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments for the http_seed engine.
type Input struct {
	URL     string `hcl:"url"`
	Fixture string `hcl:"fixture"`
	Timeout string `hcl:"timeout,optional"`
}

const defaultTimeout = 30 * time.Second

func run(ctx context.Context, input any) error {
	in := input.(*Input)
	logger := ctxlog.FromContext(ctx)

	timeout := defaultTimeout
	if in.Timeout != "" {
		var err error
		if timeout, err = time.ParseDuration(in.Timeout); err != nil {
			return fmt.Errorf("bad timeout %q: %w", in.Timeout, err)
		}
	}

	records, err := fixture.Load(in.Fixture)
	if err != nil {
		return fmt.Errorf("loading fixture %s: %w", in.Fixture, err)
	}

	client := httpclient.New(httpclient.Options{Timeout: timeout})
	defer client.Close()

	for i, record := range records {
		if _, err := client.PostJSON(ctx, in.URL, record); err != nil {
			return fmt.Errorf("posting record %d of %s: %w", i, in.Fixture, err)
		}
	}

	logger.Info("Seeded records.", "url", in.URL, "fixture", in.Fixture, "count", len(records))
	return nil
}

// Register registers the engine with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterEngine("http_seed", &registry.RegisteredEngine{
		NewInput: func() any { return new(Input) },
		Run:      run,
	})
}
