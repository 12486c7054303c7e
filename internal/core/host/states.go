package host

import "sync"

// StateSource maps an entity id to its current string value.
type StateSource interface {
	State(entityID string) (string, bool)
}

// StaticStates is a fixed, concurrency-safe state table.
type StaticStates struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewStaticStates creates a state table seeded with values.
func NewStaticStates(values map[string]string) *StaticStates {
	copied := make(map[string]string, len(values))
	for key, value := range values {
		copied[key] = value
	}
	return &StaticStates{values: copied}
}

// State returns the value stored for entityID.
func (states *StaticStates) State(entityID string) (string, bool) {
	states.mu.RLock()
	defer states.mu.RUnlock()
	value, ok := states.values[entityID]
	return value, ok
}

// Set stores value for entityID.
func (states *StaticStates) Set(entityID, value string) {
	states.mu.Lock()
	defer states.mu.Unlock()
	states.values[entityID] = value
}

// Layered consults sources in order and returns the first known value.
type Layered []StateSource

// State returns the first value any source knows for entityID.
func (sources Layered) State(entityID string) (string, bool) {
	for _, source := range sources {
		if source == nil {
			continue
		}
		if value, ok := source.State(entityID); ok {
			return value, true
		}
	}
	return "", false
}
