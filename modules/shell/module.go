// Package shell implements the engine that runs a stage's commands through
// the system shell, one after another.
package shell

import (
	"context"

	"github.com/liftgrid/liftgrid/internal/cmdexec"
	"github.com/liftgrid/liftgrid/internal/ctxlog"
	"github.com/liftgrid/liftgrid/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments for the shell engine.
type Input struct {
	// Commands run in order; the first failure aborts the stage unless
	// AllowFailure is set, in which case failures are logged and skipped.
	Commands     []string `hcl:"commands"`
	AllowFailure bool     `hcl:"allow_failure,optional"`
}

func run(ctx context.Context, input any) error {
	in := input.(*Input)
	logger := ctxlog.FromContext(ctx)

	for _, cmd := range in.Commands {
		logger.Debug("Running command.", "cmd", cmd)
		var err error
		if in.AllowFailure {
			err = cmdexec.RunQuiet(ctx, cmd)
		} else {
			err = cmdexec.Run(ctx, cmd)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Register registers the engine with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterEngine("shell", &registry.RegisteredEngine{
		NewInput: func() any { return new(Input) },
		Run:      run,
	})
}
