package host

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusPublishToSubscribers(t *testing.T) {
	bus := NewBus()
	first := bus.Subscribe(2)
	second := bus.Subscribe(2)

	require.True(t, bus.Publish(Event{Type: EventMoreInfo, EntityID: "sensor.time"}))

	for _, ch := range []<-chan Event{first, second} {
		event := <-ch
		assert.Equal(t, EventMoreInfo, event.Type)
		assert.Equal(t, "sensor.time", event.EntityID)
		assert.False(t, event.At.IsZero())
	}
}

func TestBusPublishDoesNotBlockOnFullSubscriber(t *testing.T) {
	bus := NewBus()
	ch := bus.Subscribe(1)

	done := make(chan struct{})
	go func() {
		bus.Publish(Event{Type: EventStateChanged, State: "1"})
		bus.Publish(Event{Type: EventStateChanged, State: "2"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full subscriber")
	}
	assert.Equal(t, "1", (<-ch).State)
}

func TestBusClose(t *testing.T) {
	bus := NewBus()
	ch := bus.Subscribe(1)
	bus.Close()
	bus.Close()

	_, open := <-ch
	assert.False(t, open)
	assert.False(t, bus.Publish(Event{Type: EventMoreInfo}))

	late := bus.Subscribe(1)
	_, open = <-late
	assert.False(t, open)
}

func TestStaticStates(t *testing.T) {
	seed := map[string]string{"sensor.a": "1"}
	states := NewStaticStates(seed)
	seed["sensor.a"] = "changed"

	value, ok := states.State("sensor.a")
	require.True(t, ok)
	assert.Equal(t, "1", value)

	_, ok = states.State("sensor.missing")
	assert.False(t, ok)

	states.Set("sensor.b", "on")
	value, ok = states.State("sensor.b")
	require.True(t, ok)
	assert.Equal(t, "on", value)
}

func TestWallClockTickPublishesChanges(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 5, 58, 0, time.Local)
	bus := NewBus()
	events := bus.Subscribe(10)
	clock := NewWallClock(bus, WallClockConfig{Now: func() time.Time { return now }})

	value, ok := clock.State(EntityTime)
	require.True(t, ok)
	assert.Equal(t, "14:05", value)

	now = now.Add(time.Second)
	clock.Tick()
	event := <-events
	assert.Equal(t, EventStateChanged, event.Type)
	assert.Equal(t, EntityTimeSeconds, event.EntityID)
	assert.Equal(t, "14:05:59", event.State)
	assert.Empty(t, events)

	now = now.Add(time.Second)
	clock.Tick()
	event = <-events
	assert.Equal(t, EntityTime, event.EntityID)
	assert.Equal(t, "14:06", event.State)
	event = <-events
	assert.Equal(t, EntityTimeSeconds, event.EntityID)
	assert.Equal(t, "14:06:00", event.State)
}

func TestWallClockStartStop(t *testing.T) {
	bus := NewBus()
	events := bus.Subscribe(4)
	start := time.Date(2024, 3, 9, 14, 5, 0, 0, time.Local)
	calls := 0
	clock := NewWallClock(bus, WallClockConfig{
		TickInterval: 5 * time.Millisecond,
		Now: func() time.Time {
			calls++
			return start.Add(time.Duration(calls) * time.Second)
		},
	})

	clock.Start()
	clock.Start()
	select {
	case event := <-events:
		assert.Equal(t, EventStateChanged, event.Type)
	case <-time.After(time.Second):
		t.Fatal("no tick from running wall clock")
	}
	clock.Stop()
	clock.Stop()
}

func TestLayeredStates(t *testing.T) {
	override := NewStaticStates(map[string]string{"sensor.time": "override"})
	clock := NewWallClock(nil, WallClockConfig{Now: func() time.Time {
		return time.Date(2024, 3, 1, 8, 5, 9, 0, time.UTC)
	}})
	states := Layered{nil, override, clock}

	value, ok := states.State("sensor.time")
	require.True(t, ok)
	assert.Equal(t, "override", value)

	value, ok = states.State(EntityTimeSeconds)
	require.True(t, ok)
	assert.Equal(t, "08:05:09", value)

	_, ok = states.State("sensor.unknown")
	assert.False(t, ok)
}
