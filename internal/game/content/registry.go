// Package content provides the built-in feature behaviors that zone
// definitions reference by type name ("book", "bookshelf", "sink"), plus
// the registry that resolves those names during zone construction.
package content

import (
	"fmt"
	"sync"

	"github.com/brr-dev/zenith/internal/game/world"
)

// Factory constructs a Behavior from a feature definition. Factories may
// mutate the definition to apply type defaults before rules are resolved.
type Factory func(def *world.FeatureDef) (world.Behavior, error)

// ItemDefaults applies an item type's field defaults to a definition.
type ItemDefaults func(def *world.ItemDef) error

// Registry maps feature and item type names to their constructors.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	items     map[string]ItemDefaults
}

// NewRegistry creates a registry preloaded with the built-in types.
func NewRegistry() *Registry {
	r := &Registry{
		factories: make(map[string]Factory),
		items:     make(map[string]ItemDefaults),
	}
	r.Register("book", newBook)
	r.Register("bookshelf", newBookshelf)
	r.Register("sink", newSink)
	r.RegisterItem("keychain", newKeychain)
	return r
}

// Register binds a factory to a feature type name, replacing any previous
// binding.
func (r *Registry) Register(typeName string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[typeName] = f
}

// RegisterItem binds defaults to an item type name, replacing any previous
// binding.
func (r *Registry) RegisterItem(typeName string, d ItemDefaults) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[typeName] = d
}

// Build implements world.BehaviorFactory.
func (r *Registry) Build(typeName string, def *world.FeatureDef) (world.Behavior, error) {
	r.mu.RLock()
	f, ok := r.factories[typeName]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown feature type %q", typeName)
	}
	return f(def)
}

// BuildItem implements world.ItemFactory.
func (r *Registry) BuildItem(typeName string, def *world.ItemDef) error {
	r.mu.RLock()
	d, ok := r.items[typeName]
	r.mu.RUnlock()
	if !ok {
		return fmt.Errorf("unknown item type %q", typeName)
	}
	return d(def)
}

// decodeProps re-marshals a definition's inline payload into a typed struct.
func decodeProps(def *world.FeatureDef, out any) error {
	return def.DecodeProps(out)
}
