package model

// EntityState is one entity's state as delivered by the host, carrying the
// raw attribute bag. Attributes is untyped on purpose: names are not
// guaranteed present and values may be arrays, scalars, or absent.
type EntityState struct {
	EntityID    string                 `json:"entity_id,omitempty"`
	State       string                 `json:"state"`
	Attributes  map[string]interface{} `json:"attributes"`
	LastUpdated string                 `json:"last_updated,omitempty"`
}

// Snapshot is the externally supplied point-in-time state for all entities,
// keyed by entity id. Read-only to this system and replaced wholesale on
// every push.
type Snapshot map[string]EntityState

// Entity resolves an entity id, reporting whether it is present.
func (s Snapshot) Entity(id string) (EntityState, bool) {
	if s == nil || id == "" {
		return EntityState{}, false
	}
	st, ok := s[id]
	return st, ok
}

// CardConfig is the recognized configuration object for the card.
type CardConfig struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Entity string `json:"entity"`
}

// DefaultTitle is the display label used when none is configured.
const DefaultTitle = "Energy Graph Scheduler"

// WithDefaults fills unset optional fields.
func (c CardConfig) WithDefaults() CardConfig {
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	return c
}
