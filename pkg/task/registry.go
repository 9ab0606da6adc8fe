package task

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	// ErrDuplicateHandler is returned when a Location is registered twice.
	ErrDuplicateHandler = errors.New("handler already registered")
	// ErrMethodNotFound is returned when a handler has no method to dispatch to.
	ErrMethodNotFound = errors.New("method not found")
	// ErrArityMismatch is wrapped by ArityError.
	ErrArityMismatch = errors.New("wrong number of arguments")
)

// Call is what a method receives: the full argument set of the invocation
// and the positional parameters left over after routing.
type Call struct {
	Args   Arguments
	Params []string
}

// Method is one invocable entry in a handler's method table.
type Method struct {
	Name  string
	Arity int
	Run   func(ctx context.Context, call Call) error
}

// Handler is implemented by every task type.
type Handler interface {
	Methods() []Method
}

// Factory builds a fresh handler for one invocation.
type Factory func() Handler

// Registry maps handler locations to their factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Default is the registry populated by package-level Register calls.
var Default = NewRegistry()

// Register adds a handler factory to the Default registry. It is meant to be
// called from init functions of task packages.
func Register(loc Location, factory Factory) {
	Default.MustRegister(loc, factory)
}

// Register adds a factory for loc.
func (r *Registry) Register(loc Location, factory Factory) error {
	if factory == nil {
		return fmt.Errorf("register %s: nil factory", loc)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := loc.Key()
	if _, ok := r.factories[key]; ok {
		return fmt.Errorf("register %s: %w", key, ErrDuplicateHandler)
	}

	r.factories[key] = factory

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(loc Location, factory Factory) {
	if err := r.Register(loc, factory); err != nil {
		panic(err)
	}
}

// Lookup returns the factory registered for loc.
func (r *Registry) Lookup(loc Location) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, ok := r.factories[loc.Key()]

	return factory, ok
}

// Locations returns the registered keys in sorted order.
func (r *Registry) Locations() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.factories))
	for key := range r.factories {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}
