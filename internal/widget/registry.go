package widget

import (
	"sync"

	"github.com/thimo234/ha-energy-chard/internal/core/model"
)

// Factory builds a fresh card instance.
type Factory func() *Card

// Registry maps card type ids to factories. Registration is explicit and
// done by the composition root, never by package init side effects.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a card type. Later registrations replace earlier ones.
func (r *Registry) Register(typeID string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[typeID] = factory
}

// Create instantiates a card of the given type.
func (r *Registry) Create(typeID string) (*Card, bool) {
	r.mu.RLock()
	factory, ok := r.factories[typeID]
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return factory(), true
}

// StubConfig is the seed configuration handed to host configuration tooling
// for new card instances.
func StubConfig() model.CardConfig {
	return model.CardConfig{
		Type:   TypeID,
		Title:  model.DefaultTitle,
		Entity: "",
	}
}
