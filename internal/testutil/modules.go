package testutil

import (
	"context"
	"sync"

	"github.com/liftgrid/liftgrid/internal/registry"
)

// NoOpModule registers a single "noop" engine that takes no arguments and
// does nothing. It's useful for tests that should fail before execution
// begins but still need a plan that passes registry validation.
type NoOpModule struct{}

// Register implements the registry.Module interface.
func (m *NoOpModule) Register(r *registry.Registry) {
	r.RegisterEngine("noop", &registry.RegisteredEngine{
		Run: func(ctx context.Context, input any) error {
			return nil
		},
	})
}

// SimpleModule is a test helper for creating a mock module that registers a
// single engine.
type SimpleModule struct {
	EngineType string
	Engine     *registry.RegisteredEngine
}

// Register implements the registry.Module interface.
func (m *SimpleModule) Register(r *registry.Registry) {
	if m.EngineType != "" && m.Engine != nil {
		r.RegisterEngine(m.EngineType, m.Engine)
	}
}

// RecorderModule registers a "recorder" engine that appends each stage's tag
// argument to an internal slice in execution order.
type RecorderModule struct {
	mu   sync.Mutex
	tags []string
}

// Register implements the registry.Module interface.
func (m *RecorderModule) Register(r *registry.Registry) {
	type recorderInput struct {
		Tag string `hcl:"tag"`
	}

	r.RegisterEngine("recorder", &registry.RegisteredEngine{
		NewInput: func() any { return new(recorderInput) },
		Run: func(ctx context.Context, input any) error {
			in := input.(*recorderInput)
			m.mu.Lock()
			defer m.mu.Unlock()
			m.tags = append(m.tags, in.Tag)
			return nil
		},
	})
}

// Tags returns the recorded tags in the order they were executed.
func (m *RecorderModule) Tags() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.tags))
	copy(out, m.tags)
	return out
}
