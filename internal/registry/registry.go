package registry

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/cjrsolutions/cjrweb/internal/config"
)

// Key is a type-safe, generic key for registering and retrieving services.
// The string value should be a unique identifier, e.g., "catalog.store".
type Key[T any] string

// Service describes one registered entry for diagnostics.
type Service struct {
	Key  string
	Type string
}

type entry struct {
	value any
	typ   string
}

// Registry lets modules share and discover services at runtime. Modules
// register during the Register phase and look each other up during Boot.
type Registry struct {
	mu       sync.RWMutex
	services map[string]entry
	cfg      config.Provider
}

// New creates a new registry with the application's configuration provider.
func New(cfg config.Provider) *Registry {
	return &Registry{
		services: make(map[string]entry),
		cfg:      cfg,
	}
}

// Config returns the configuration provider stored in the registry.
func (r *Registry) Config() config.Provider {
	return r.cfg
}

// Set registers a service instance against a type-safe key, replacing any
// earlier registration.
func Set[T any](r *Registry, key Key[T], value T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.services[string(key)] = entry{value: value, typ: fmt.Sprintf("%T", value)}
}

// Get retrieves a service from the registry by its key. A value stored under
// the same name with another type is reported as missing.
func Get[T any](r *Registry, key Key[T]) (T, bool) {
	r.mu.RLock()
	e, ok := r.services[string(key)]
	r.mu.RUnlock()

	result, typed := e.value.(T)
	if !ok || !typed {
		var zero T
		return zero, false
	}
	return result, true
}

// MustGet retrieves a service or panics if not found. This is useful for
// wiring up essential dependencies at startup.
func MustGet[T any](r *Registry, key Key[T]) T {
	if val, ok := Get(r, key); ok {
		return val
	}

	r.mu.RLock()
	e, exists := r.services[string(key)]
	r.mu.RUnlock()
	if exists {
		panic(fmt.Sprintf("service %s has type %s, want %s", key, e.typ, reflect.TypeFor[T]()))
	}
	panic(fmt.Sprintf("service not found for key: %v", key))
}

// Services lists every registration sorted by key.
func (r *Registry) Services() []Service {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Service, 0, len(r.services))
	for k, e := range r.services {
		out = append(out, Service{Key: k, Type: e.typ})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
