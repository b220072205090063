package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/hashicorp/hcl/v2"

	"github.com/liftgrid/liftgrid/internal/buildinfo"
	"github.com/liftgrid/liftgrid/internal/config"
	"github.com/liftgrid/liftgrid/internal/ctxlog"
	"github.com/liftgrid/liftgrid/internal/registry"
)

// App encapsulates a loaded plan together with everything needed to order
// and execute it.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	registry *registry.Registry
	model    *config.Model
	evalCtx  *hcl.EvalContext

	httpServer *http.Server
}

// New builds a fully initialized App: it configures the logger, loads and
// merges the inventory, loads the plan model through the given loader,
// registers the engine modules (the built-in set when none are given), and
// validates the model against the registry. Any failure aborts before a
// single stage can run.
func New(outW io.Writer, cfg *Config, loader config.Loader, modules ...registry.Module) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	ctx := ctxlog.WithLogger(context.Background(), logger)

	inventory, err := loadInventory(ctx, cfg.InventoryPaths)
	if err != nil {
		return nil, fmt.Errorf("loading inventory: %w", err)
	}

	model, err := loader.Load(ctx, cfg.PlanPaths...)
	if err != nil {
		return nil, fmt.Errorf("loading plan: %w", err)
	}

	if model.Plan != nil && model.Plan.RequiredVersion != "" {
		if err := buildinfo.CheckConstraint(model.Plan.RequiredVersion); err != nil {
			return nil, err
		}
	}

	if len(modules) == 0 {
		modules = coreModules
	}
	reg := registry.New()
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All engine modules registered.", "count", len(modules))

	if err := reg.Validate(ctx, model); err != nil {
		return nil, err
	}

	evalCtx, err := buildEvalContext(ctx, model, inventory)
	if err != nil {
		return nil, err
	}

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		registry: reg,
		model:    model,
		evalCtx:  evalCtx,
	}, nil
}

// Model exposes the loaded plan model, mainly for inspection by callers.
func (a *App) Model() *config.Model {
	return a.model
}

func (a *App) planName() string {
	if a.model.Plan != nil && a.model.Plan.Name != "" {
		return a.model.Plan.Name
	}
	return "unnamed"
}
