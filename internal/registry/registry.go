package registry

// Module is the interface every engine module implements to be
// registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds the registered engines for a single application
// instance.
type Registry struct {
	Engines map[string]*RegisteredEngine
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		Engines: make(map[string]*RegisteredEngine),
	}
}
