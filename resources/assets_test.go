package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tickclock/internal/core/model"
	"tickclock/internal/storage"
)

func TestDefaultCardIsValid(t *testing.T) {
	overrides, err := storage.ParseCard(DefaultCard())
	require.NoError(t, err)

	config, err := model.NewConfig(overrides)
	require.NoError(t, err)
	assert.Equal(t, "sensor.time", config.Entity)
	assert.Equal(t, model.SizingFluid, config.Sizing)
}

func TestIconIsCached(t *testing.T) {
	first, err := Icon()
	require.NoError(t, err)
	assert.Equal(t, "icon.svg", first.Name())
	assert.Contains(t, string(first.Content()), "<svg")

	second := MustIcon()
	assert.Same(t, first, second)
}
