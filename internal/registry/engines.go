package registry

import (
	"context"
	"fmt"
	"log/slog"
)

// RegisteredEngine holds the compiled Go parts of one engine type.
type RegisteredEngine struct {
	// NewInput returns a pointer to a fresh, hcl-tagged struct that a
	// stage's arguments block is decoded into. Nil means the engine
	// takes no arguments.
	NewInput func() any

	// Run executes one stage. input is the value NewInput produced, or
	// nil for engines without one.
	Run func(ctx context.Context, input any) error
}

// RegisterEngine registers a Go implementation for an engine type.
func (r *Registry) RegisterEngine(engineType string, engine *RegisteredEngine) {
	if _, exists := r.Engines[engineType]; exists {
		panic(fmt.Sprintf("engine with type '%s' already registered", engineType))
	}
	slog.Debug("Registering engine.", "type", engineType)
	r.Engines[engineType] = engine
}
