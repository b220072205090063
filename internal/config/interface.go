package config

import "context"

// Loader is the interface for a format-specific plan loader.
type Loader interface {
	// Load reads plan files from the given paths, which may be files or
	// directories, and translates them into the format-agnostic model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
