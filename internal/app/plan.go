package app

import (
	"context"
	"fmt"

	"github.com/liftgrid/liftgrid/internal/builder"
	"github.com/liftgrid/liftgrid/internal/ctxlog"
	"github.com/liftgrid/liftgrid/internal/dag"
)

// Plan computes the dependency-ordered list of stage names without executing
// anything. A cycle in the plan surfaces as a dag.CyclicDependencyError
// carrying the unsatisfiable remainder.
func (a *App) Plan(ctx context.Context) ([]string, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	return a.plan(ctx)
}

func (a *App) plan(ctx context.Context) ([]string, error) {
	logger := ctxlog.FromContext(ctx)

	graph, err := builder.BuildGraph(ctx, a.model)
	if err != nil {
		return nil, fmt.Errorf("building dependency graph: %w", err)
	}

	order, err := dag.Sort(graph)
	if err != nil {
		return nil, err
	}

	logger.Debug("Plan resolved.", "plan", a.planName(), "stages", len(order))
	return order, nil
}
