// Package echo implements the simplest engine: it logs its message and
// succeeds. Useful for smoke-testing a plan's wiring before the real
// engines go in.
package echo

import (
	"context"

	"github.com/liftgrid/liftgrid/internal/ctxlog"
	"github.com/liftgrid/liftgrid/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments for the echo engine.
type Input struct {
	Message string `hcl:"message"`
}

func run(ctx context.Context, input any) error {
	in := input.(*Input)
	ctxlog.FromContext(ctx).Info(in.Message)
	return nil
}

// Register registers the engine with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterEngine("echo", &registry.RegisteredEngine{
		NewInput: func() any { return new(Input) },
		Run:      run,
	})
}
