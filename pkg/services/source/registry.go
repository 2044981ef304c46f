package source

import (
	"context"
	"fmt"
	"sync"

	"github.com/de-tools/report-forge/pkg/models/domain"
)

// Loader produces the datasets a report run is built from.
type Loader interface {
	Load(ctx context.Context) ([]domain.Dataset, error)
}

// Options configure a loader instance.
type Options struct {
	// InputDir is the directory the csv source reads from.
	InputDir string
	// Days and Months size the sample generator's sales and financial tables.
	Days   int
	Months int
}

// Factory creates a Loader from options.
type Factory func(opts Options) (Loader, error)

// Registry manages dataset source factories.
type Registry interface {
	Register(name string, factory Factory) error
	Create(name string, opts Options) (Loader, error)
	ListSources() []string
}

type registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

func NewRegistry(factories map[string]Factory) Registry {
	r := &registry{factories: make(map[string]Factory)}
	for name, factory := range factories {
		r.factories[name] = factory
	}
	return r
}

func (r *registry) Register(name string, factory Factory) error {
	if name == "" {
		return fmt.Errorf("source name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("source %q is already registered", name)
	}

	r.factories[name] = factory
	return nil
}

func (r *registry) Create(name string, opts Options) (Loader, error) {
	r.mu.RLock()
	factory, exists := r.factories[name]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("source %q is not registered", name)
	}

	return factory(opts)
}

func (r *registry) ListSources() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sources := make([]string, 0, len(r.factories))
	for name := range r.factories {
		sources = append(sources, name)
	}
	return sources
}
