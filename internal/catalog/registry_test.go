package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRegisterAndGet(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(ClockTicksEntry()))

	entry, ok := reg.Get("clock-ticks-card")
	require.True(t, ok)
	assert.Equal(t, "Clock Ticks Card", entry.Name)
	assert.True(t, entry.Preview)

	_, ok = reg.Get("missing")
	assert.False(t, ok)
}

func TestRegistryRejectsDuplicatesAndEmpty(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(ClockTicksEntry()))

	err := reg.Register(ClockTicksEntry())
	assert.ErrorIs(t, err, ErrDuplicateType)

	assert.Error(t, reg.Register(Entry{Name: "nameless"}))
}

func TestRegistryListSorted(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(Entry{Type: "zeta"}))
	require.NoError(t, reg.Register(ClockTicksEntry()))
	require.NoError(t, reg.Register(Entry{Type: "alpha", Name: "Alpha"}))

	list := reg.List()
	require.Len(t, list, 3)
	assert.Equal(t, "alpha", list[0].Type)
	assert.Equal(t, "clock-ticks-card", list[1].Type)
	assert.Equal(t, "zeta", list[2].Type)
	assert.Equal(t, "zeta", list[2].Name)
}
