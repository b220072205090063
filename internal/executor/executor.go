// Package executor runs the stages of a plan sequentially, in exactly
// the order the planner decided. One stage at a time: upgrade work is
// ordered precisely because the steps interfere with each other.
package executor

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"

	"github.com/liftgrid/liftgrid/internal/config"
	"github.com/liftgrid/liftgrid/internal/ctxlog"
	"github.com/liftgrid/liftgrid/internal/registry"
)

// Executor dispatches stages to their registered engines.
type Executor struct {
	registry *registry.Registry
	evalCtx  *hcl.EvalContext
}

// New creates an executor bound to a registry and the evaluation context
// used for argument expressions.
func New(reg *registry.Registry, evalCtx *hcl.EvalContext) *Executor {
	return &Executor{registry: reg, evalCtx: evalCtx}
}

// Execute runs the named stages in order, stopping at the first failure.
// The error names the failed stage and wraps the engine's error.
func (e *Executor) Execute(ctx context.Context, model *config.Model, order []string) error {
	stages := make(map[string]*config.Stage, len(model.Stages))
	for _, s := range model.Stages {
		stages[s.Name] = s
	}

	logger := ctxlog.FromContext(ctx)
	logger.Debug("Executing plan.", "stages", len(order))
	started := time.Now()

	for i, name := range order {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("run canceled before stage %q: %w", name, err)
		}
		stage, ok := stages[name]
		if !ok {
			return fmt.Errorf("planned stage %q is not in the model", name)
		}
		if err := e.runStage(ctx, stage, i+1, len(order)); err != nil {
			return fmt.Errorf("stage %q failed: %w", name, err)
		}
	}

	logger.Debug("Plan executed.", "duration", time.Since(started).Round(time.Millisecond))
	return nil
}

// runStage decodes one stage's arguments, applies its timeout and hands
// it to the engine.
func (e *Executor) runStage(ctx context.Context, stage *config.Stage, pos, total int) error {
	logger := ctxlog.FromContext(ctx).With("stage", stage.Name, "engine", stage.EngineType)
	ctx = ctxlog.WithLogger(ctx, logger)

	engine, ok := e.registry.Engines[stage.EngineType]
	if !ok {
		return fmt.Errorf("engine type %q is not registered", stage.EngineType)
	}

	if stage.Timeout != "" {
		timeout, err := time.ParseDuration(stage.Timeout)
		if err != nil {
			return fmt.Errorf("bad timeout %q: %w", stage.Timeout, err)
		}
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var input any
	switch {
	case engine.NewInput != nil:
		input = engine.NewInput()
		body := stage.Arguments
		if body == nil {
			body = hcl.EmptyBody()
		}
		if diags := gohcl.DecodeBody(body, e.evalCtx, input); diags.HasErrors() {
			return fmt.Errorf("decoding arguments: %w", diags)
		}
	case stage.Arguments != nil:
		return fmt.Errorf("engine type %q takes no arguments", stage.EngineType)
	}

	logger.Info("▶️ Stage started.", "position", fmt.Sprintf("%d/%d", pos, total))
	started := time.Now()

	if err := engine.Run(ctx, input); err != nil {
		logger.Error("Stage failed.", "duration", time.Since(started).Round(time.Millisecond), "error", err)
		return err
	}

	logger.Info("✅ Stage finished.", "duration", time.Since(started).Round(time.Millisecond))
	return nil
}
