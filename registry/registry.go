package registry

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/lixenwraith/aura/scene"
)

// ErrUnknownScene is returned for names without a registered factory
var ErrUnknownScene = errors.New("unknown scene")

// Built-in scene names
const (
	Lissajous   = "lissajous"
	Rune        = "rune"
	Contour     = "contour"
	Placeholder = "placeholder"
)

// Factory creates an uninitialized scene
type Factory func(opts scene.Options) scene.Scene

// Registry maps scene names to factories
// Passed explicitly to whoever builds scenes; there is no package-level instance
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	order     []string
}

// New creates an empty registry
func New() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Default returns a registry holding the built-in scenes in cycling order
func Default() *Registry {
	r := New()
	r.Register(Lissajous, func(opts scene.Options) scene.Scene { return scene.NewLissajous(opts) })
	r.Register(Rune, func(opts scene.Options) scene.Scene { return scene.NewRune(opts) })
	r.Register(Contour, func(opts scene.Options) scene.Scene { return scene.NewContour(opts) })
	r.Register(Placeholder, func(opts scene.Options) scene.Scene { return scene.NewPlaceholder(opts) })
	return r
}

// Register adds or replaces a factory by name
func (r *Registry) Register(name string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.factories[name]; !ok {
		r.order = append(r.order, name)
	}
	r.factories[name] = factory
}

// Lookup retrieves a factory by name
func (r *Registry) Lookup(name string) (Factory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return f, nil
}

// Create builds the named scene
func (r *Registry) Create(name string, opts scene.Options) (scene.Scene, error) {
	f, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	return f(opts), nil
}

// Names returns registered names in registration order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.order)
}

// Next returns the name registered after name, wrapping around
// Unknown names yield the first registered scene
func (r *Registry) Next(name string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.order) == 0 {
		return ""
	}
	i := slices.Index(r.order, name)
	return r.order[(i+1)%len(r.order)]
}
