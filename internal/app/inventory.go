package app

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"

	"github.com/liftgrid/liftgrid/internal/config"
	"github.com/liftgrid/liftgrid/internal/ctxlog"
	"github.com/liftgrid/liftgrid/internal/fixture"
	"github.com/liftgrid/liftgrid/internal/hclloader"
	"github.com/liftgrid/liftgrid/internal/sanitize"
)

// secretKeywords mark inventory keys whose values must never reach the logs.
var secretKeywords = []string{"password", "secret", "token"}

// loadInventory reads every inventory file in order and deep-merges them,
// later files winning on conflicts.
func loadInventory(ctx context.Context, paths []string) (map[string]any, error) {
	logger := ctxlog.FromContext(ctx)

	merged := map[string]any{}
	for _, path := range paths {
		var doc map[string]any
		if err := fixture.ReadYAML(path, &doc); err != nil {
			return nil, err
		}
		merged = fixture.Merge(merged, doc)
	}

	if len(paths) > 0 {
		logger.Debug("Inventory loaded.",
			"files", len(paths),
			"inventory", sanitize.Mask(merged, secretKeywords),
		)
	}
	return merged, nil
}

// buildEvalContext exposes the merged inventory as `inventory.*` and the
// plan's locals as `local.*`. Locals are evaluated once, up front, and may
// reference the inventory but not each other.
func buildEvalContext(ctx context.Context, model *config.Model, inventory map[string]any) (*hcl.EvalContext, error) {
	logger := ctxlog.FromContext(ctx)

	invVal, err := hclloader.ToCtyValue(inventory)
	if err != nil {
		return nil, fmt.Errorf("converting inventory: %w", err)
	}

	baseCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{"inventory": invVal},
	}

	locals := make(map[string]cty.Value, len(model.Locals))
	for name, expr := range model.Locals {
		val, diags := expr.Value(baseCtx)
		if diags.HasErrors() {
			return nil, fmt.Errorf("evaluating local %q: %w", name, diags)
		}
		locals[name] = val
	}
	localVal := cty.EmptyObjectVal
	if len(locals) > 0 {
		localVal = cty.ObjectVal(locals)
	}

	logger.Debug("Evaluation context built.", "locals", len(locals))
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"inventory": invVal,
			"local":     localVal,
		},
	}, nil
}
