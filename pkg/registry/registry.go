package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/graft/pkg/domain"
)

// Registry manages named method implementations. Declarative plans refer to
// callable members by these names; binding a plan resolves them here.
type Registry struct {
	mu      sync.RWMutex
	methods map[string]domain.Method
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		methods: make(map[string]domain.Method),
	}
}

// Register adds a method implementation to the registry.
// If a method with the same name exists, it is overwritten.
func (r *Registry) Register(name string, m domain.Method) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.methods[name] = m
}

// Resolve looks up a method implementation by name.
func (r *Registry) Resolve(name string) (domain.Method, error) {
	r.mu.RLock()
	m, ok := r.methods[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("method not found: %s", name)
	}
	return m, nil
}

// Invoke resolves a method by name and calls it with the given receiver.
func (r *Registry) Invoke(name string, self domain.Receiver, args ...any) (any, error) {
	m, err := r.Resolve(name)
	if err != nil {
		return nil, err
	}
	return m(self, args...)
}

// Names returns the registered method names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.methods))
	for name := range r.methods {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
