// Package builder translates a loaded plan into the planner's graph.
// Strictness lives here: duplicate stage names and depends_on entries
// naming undeclared stages are rejected before the graph exists. The dag
// core itself stays lenient about unknown prerequisites, so this is the
// only layer that knows what "declared" means.
package builder

import (
	"context"
	"fmt"

	"github.com/liftgrid/liftgrid/internal/config"
	"github.com/liftgrid/liftgrid/internal/ctxlog"
	"github.com/liftgrid/liftgrid/internal/dag"
)

// BuildGraph translates the model's stages into a dependency graph.
// A stage depending on itself passes here; the sorter reports it as a
// one-node cycle with the rest of the diagnostics.
func BuildGraph(ctx context.Context, model *config.Model) (*dag.Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Building dependency graph.", "stages", len(model.Stages))

	declared := make(map[string]struct{}, len(model.Stages))
	for _, stage := range model.Stages {
		if stage.Name == "" {
			return nil, &dag.InvalidGraphError{Reason: fmt.Sprintf("stage of engine type %q has an empty name", stage.EngineType)}
		}
		if _, dup := declared[stage.Name]; dup {
			return nil, &dag.InvalidGraphError{Reason: fmt.Sprintf("duplicate stage name %q", stage.Name)}
		}
		declared[stage.Name] = struct{}{}
	}

	nodes := make(map[string][]string, len(model.Stages))
	for _, stage := range model.Stages {
		for _, dep := range stage.DependsOn {
			if _, ok := declared[dep]; !ok {
				return nil, &dag.InvalidGraphError{Reason: fmt.Sprintf("stage %q depends on undeclared stage %q", stage.Name, dep)}
			}
		}
		nodes[stage.Name] = stage.DependsOn
	}

	g, err := dag.FromMap(nodes)
	if err != nil {
		return nil, err
	}
	logger.Debug("Dependency graph built.", "nodes", g.Len())
	return g, nil
}
