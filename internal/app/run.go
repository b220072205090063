package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/liftgrid/liftgrid/internal/ctxlog"
	"github.com/liftgrid/liftgrid/internal/executor"
)

// Run plans the loaded model and executes every stage in dependency order.
// Nothing executes when planning fails.
func (a *App) Run(ctx context.Context) error {
	logger := a.logger.With("run_id", uuid.NewString())
	ctx = ctxlog.WithLogger(ctx, logger)

	if a.config.HealthcheckPort > 0 {
		a.startHealthcheckServer(ctx, a.config.HealthcheckPort)
		defer func() {
			if err := a.closeHealthcheckServer(ctx); err != nil {
				logger.Warn("Health check server shutdown failed.", "error", err)
			}
		}()
	}

	order, err := a.plan(ctx)
	if err != nil {
		return err
	}

	if len(order) == 0 {
		logger.Warn("No stages found in plan, execution not required.")
		return nil
	}

	logger.Info("🚀 Starting execution.", "plan", a.planName(), "stages", len(order))

	exec := executor.New(a.registry, a.evalCtx)
	if err := exec.Execute(ctx, a.model, order); err != nil {
		return fmt.Errorf("plan %q: %w", a.planName(), err)
	}

	logger.Info("🏁 Execution finished.")
	return nil
}
