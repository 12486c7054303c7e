package card

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tickclock/internal/core/geometry"
	"tickclock/internal/core/host"
	"tickclock/internal/core/model"
)

func newTestCard(t *testing.T, overrides model.Overrides, states host.StateSource, bus *host.Bus) *Card {
	t.Helper()
	if overrides.Entity == nil {
		overrides.Entity = model.Ptr("sensor.time")
	}
	config, err := model.NewConfig(overrides)
	require.NoError(t, err)
	card, err := New(config, states, bus)
	require.NoError(t, err)
	return card
}

func TestNewRejectsMissingEntity(t *testing.T) {
	_, err := New(model.DefaultConfig(), nil, nil)
	assert.ErrorIs(t, err, model.ErrMissingEntity)
}

func TestLabel(t *testing.T) {
	states := host.NewStaticStates(map[string]string{"sensor.time": "10:42"})

	card := newTestCard(t, model.Overrides{}, states, nil)
	assert.Equal(t, "10:42", card.Label())

	unknown := newTestCard(t, model.Overrides{Entity: model.Ptr("sensor.nope")}, states, nil)
	assert.Equal(t, Placeholder, unknown.Label())

	disconnected := newTestCard(t, model.Overrides{}, nil, nil)
	assert.Equal(t, Placeholder, disconnected.Label())
}

func TestClick(t *testing.T) {
	card := newTestCard(t, model.Overrides{}, nil, nil)
	assert.False(t, card.Click(), "no host connected")

	bus := host.NewBus()
	events := bus.Subscribe(1)
	card.Connect(nil, bus)

	require.True(t, card.Click())
	event := <-events
	assert.Equal(t, host.EventMoreInfo, event.Type)
	assert.Equal(t, "sensor.time", event.EntityID)
}

func TestRenderContentEquality(t *testing.T) {
	states := host.NewStaticStates(map[string]string{"sensor.time": "10:42"})
	card := newTestCard(t, model.Overrides{}, states, nil)
	size := geometry.ContainerSize{Width: 247, Height: 120}

	_, first, changed, err := card.Render(size, 12, time.Time{}, nil)
	require.NoError(t, err)
	assert.True(t, changed)

	_, second, changed, err := card.Render(size, 12, time.Time{}, nil)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, first, second)

	states.Set("sensor.time", "10:43")
	_, _, changed, err = card.Render(size, 12, time.Time{}, nil)
	require.NoError(t, err)
	assert.True(t, changed)

	_, _, changed, err = card.Render(geometry.ContainerSize{Width: 300, Height: 120}, 12, time.Time{}, nil)
	require.NoError(t, err)
	assert.True(t, changed)

	card.Invalidate()
	_, _, changed, err = card.Render(geometry.ContainerSize{Width: 300, Height: 120}, 12, time.Time{}, nil)
	require.NoError(t, err)
	assert.True(t, changed)
}

func TestRenderSweepRecomputesPhase(t *testing.T) {
	card := newTestCard(t, model.Overrides{ShowSecondsSweep: model.Ptr(true)}, nil, nil)
	size := geometry.ContainerSize{Width: 247, Height: 120}
	at := time.Date(2024, 1, 1, 12, 0, 12, 500*int(time.Millisecond), time.UTC)

	frame, _, _, err := card.Render(size, 0, at, nil)
	require.NoError(t, err)
	require.NotNil(t, frame.Layout.Sweep)
	assert.Equal(t, "-12.500s", frame.Layout.Sweep.DelayCSS)

	frame, _, changed, err := card.Render(size, 0, at.Add(3*time.Second), nil)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "-15.500s", frame.Layout.Sweep.DelayCSS)
}

func TestSetConfigReplacesAndForces(t *testing.T) {
	card := newTestCard(t, model.Overrides{}, nil, nil)
	size := geometry.ContainerSize{Width: 247, Height: 120}
	_, _, _, err := card.Render(size, 0, time.Time{}, nil)
	require.NoError(t, err)

	next := card.Config()
	next.TickColor = "red"
	require.NoError(t, card.SetConfig(next))
	assert.Equal(t, "red", card.Config().TickColor)

	frame, _, changed, err := card.Render(size, 0, time.Time{}, nil)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "red", frame.Config.TickColor)

	invalid := next
	invalid.Entity = ""
	assert.ErrorIs(t, card.SetConfig(invalid), model.ErrMissingEntity)
	assert.Equal(t, "sensor.time", card.Config().Entity)
}

func TestFrameFallsBackOnZeroHeight(t *testing.T) {
	card := newTestCard(t, model.Overrides{}, nil, nil)
	frame, err := card.Frame(geometry.ContainerSize{Width: 200}, 0, time.Time{})
	require.NoError(t, err)
	assert.True(t, frame.FellBack)
	assert.Equal(t, 100.0, frame.Size.Height)

	_, err = card.Frame(geometry.ContainerSize{}, 0, time.Time{})
	assert.ErrorIs(t, err, geometry.ErrInvalidSize)
}

func TestRenderCustomSerializer(t *testing.T) {
	card := newTestCard(t, model.Overrides{}, nil, nil)
	calls := 0
	serialize := func(frame Frame) string {
		calls++
		return frame.Label
	}
	_, content, changed, err := card.Render(geometry.ContainerSize{Width: 100, Height: 50}, 0, time.Time{}, serialize)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, Placeholder, content)
	assert.Equal(t, 1, calls)
}
