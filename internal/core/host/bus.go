package host

import (
	"sync"
	"time"
)

// Bus fans events out to subscribers. Publishing never blocks: a subscriber
// whose buffer is full misses the event.
type Bus struct {
	mu       sync.Mutex
	channels []chan Event
	closed   bool
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a new observer channel.
func (bus *Bus) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	bus.mu.Lock()
	defer bus.mu.Unlock()
	if bus.closed {
		close(ch)
		return ch
	}
	bus.channels = append(bus.channels, ch)
	return ch
}

// Publish delivers event to every subscriber. It reports false once the bus
// has been closed.
func (bus *Bus) Publish(event Event) bool {
	if event.At.IsZero() {
		event.At = time.Now()
	}

	bus.mu.Lock()
	defer bus.mu.Unlock()
	if bus.closed {
		return false
	}
	for _, ch := range bus.channels {
		select {
		case ch <- event:
		default:
		}
	}
	return true
}

// Close closes every subscriber channel. Later publishes are dropped.
func (bus *Bus) Close() {
	bus.mu.Lock()
	if bus.closed {
		bus.mu.Unlock()
		return
	}
	bus.closed = true
	channels := bus.channels
	bus.channels = nil
	bus.mu.Unlock()

	for _, ch := range channels {
		close(ch)
	}
}
