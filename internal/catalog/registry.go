// Package catalog keeps the card types offered by the host's card picker.
// Entries are registered explicitly during application start-up.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrDuplicateType indicates a second registration for the same card type.
var ErrDuplicateType = errors.New("card type already registered")

// Entry describes one card type for the picker.
type Entry struct {
	Type             string
	Name             string
	Description      string
	Preview          bool
	DocumentationURL string
}

// Registry is a thread-safe set of picker entries keyed by type.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Register adds entry. Types must be non-empty and unique.
func (r *Registry) Register(entry Entry) error {
	if entry.Type == "" {
		return fmt.Errorf("register card: type cannot be empty")
	}
	if entry.Name == "" {
		entry.Name = entry.Type
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[entry.Type]; exists {
		return fmt.Errorf("register card %q: %w", entry.Type, ErrDuplicateType)
	}
	r.entries[entry.Type] = entry
	return nil
}

// Get returns the entry registered for cardType.
func (r *Registry) Get(cardType string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[cardType]
	return entry, ok
}

// List returns all entries sorted by type.
func (r *Registry) List() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]Entry, 0, len(r.entries))
	for _, entry := range r.entries {
		list = append(list, entry)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Type < list[j].Type
	})
	return list
}

// ClockTicksEntry is the picker entry for the tick-clock card.
func ClockTicksEntry() Entry {
	return Entry{
		Type:             "clock-ticks-card",
		Name:             "Clock Ticks Card",
		Description:      "Clock/label card with 60 tick marks around the value of an entity",
		Preview:          true,
		DocumentationURL: "https://github.com/yourname/clock-ticks-card",
	}
}
