package host

import (
	"sync"
	"time"
)

// Entities published by WallClock.
const (
	EntityTime        = "sensor.time"
	EntityTimeSeconds = "sensor.time_seconds"
	EntityDate        = "sensor.date"
)

// WallClockConfig contains runtime options for WallClock.
type WallClockConfig struct {
	TickInterval time.Duration
	Now          func() time.Time
}

// WallClock is a built-in state source exposing the local time as entities.
// While running it publishes a state-changed event for every entity whose
// value changed on a tick.
type WallClock struct {
	mu      sync.Mutex
	options WallClockConfig
	bus     *Bus
	values  map[string]string
	stopCh  chan struct{}
	running bool
}

// NewWallClock creates a wall clock that publishes to bus. bus may be nil.
func NewWallClock(bus *Bus, options WallClockConfig) *WallClock {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Now == nil {
		options.Now = time.Now
	}

	clock := &WallClock{
		options: options,
		bus:     bus,
		values:  make(map[string]string),
	}
	clock.refreshLocked(options.Now())
	return clock
}

// State returns the current value of one of the wall clock entities.
func (clock *WallClock) State(entityID string) (string, bool) {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	value, ok := clock.values[entityID]
	return value, ok
}

// Start launches the ticking loop.
func (clock *WallClock) Start() {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	if clock.running {
		return
	}
	clock.running = true
	clock.stopCh = make(chan struct{})
	go clock.run(clock.stopCh)
}

// Stop terminates the ticking loop.
func (clock *WallClock) Stop() {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	if !clock.running {
		return
	}
	close(clock.stopCh)
	clock.running = false
}

// Tick refreshes the entities from the configured clock and publishes changes.
func (clock *WallClock) Tick() {
	clock.mu.Lock()
	changed := clock.refreshLocked(clock.options.Now())
	clock.mu.Unlock()

	if clock.bus == nil {
		return
	}
	for _, event := range changed {
		clock.bus.Publish(event)
	}
}

func (clock *WallClock) run(stopCh chan struct{}) {
	ticker := time.NewTicker(clock.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			clock.Tick()
		}
	}
}

func (clock *WallClock) refreshLocked(now time.Time) []Event {
	next := map[string]string{
		EntityTime:        now.Format("15:04"),
		EntityTimeSeconds: now.Format("15:04:05"),
		EntityDate:        now.Format("2006-01-02"),
	}

	var changed []Event
	for _, entityID := range []string{EntityTime, EntityTimeSeconds, EntityDate} {
		value := next[entityID]
		if clock.values[entityID] == value {
			continue
		}
		clock.values[entityID] = value
		changed = append(changed, Event{
			Type:     EventStateChanged,
			EntityID: entityID,
			State:    value,
			At:       now,
		})
	}
	return changed
}
