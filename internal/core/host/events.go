package host

import (
	"time"

	"tickclock/internal/core/model"
)

// EventType defines the type of host event.
type EventType string

const (
	// EventMoreInfo asks the host to show details for an entity.
	EventMoreInfo EventType = "hass-more-info"
	// EventConfigChanged carries a full replacement card configuration.
	EventConfigChanged EventType = "config-changed"
	// EventStateChanged reports a new value for an entity.
	EventStateChanged EventType = "state-changed"
)

// Event is a one-way notification delivered to bus observers.
type Event struct {
	Type     EventType
	EntityID string
	State    string
	Config   model.Overrides
	At       time.Time
}
