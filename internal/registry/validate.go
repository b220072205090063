package registry

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/liftgrid/liftgrid/internal/config"
	"github.com/liftgrid/liftgrid/internal/ctxlog"
)

// Validate checks that every stage in the model names a registered
// engine type. All failures are collected and reported in one
// deterministic error.
func (r *Registry) Validate(ctx context.Context, model *config.Model) error {
	logger := ctxlog.FromContext(ctx)

	var errs []string
	for _, stage := range model.Stages {
		if _, ok := r.Engines[stage.EngineType]; !ok {
			errs = append(errs, fmt.Sprintf("stage '%s': engine type '%s' is not registered", stage.Name, stage.EngineType))
		}
	}

	if len(errs) > 0 {
		sort.Strings(errs)
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	logger.Debug("Registry validation passed.", "engines", len(r.Engines), "stages", len(model.Stages))
	return nil
}
