package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tickclock/internal/core/model"
)

func TestParseCard(t *testing.T) {
	overrides, err := ParseCard([]byte(`
type: custom:clock-ticks-card
entity: sensor.aktuelle_uhrzeit
padPct: 4.5
tickColor: "#A0A0A0"
fontWeight: 600
showSecondsSweep: true
`))
	require.NoError(t, err)

	config, err := model.NewConfig(overrides)
	require.NoError(t, err)
	assert.Equal(t, "sensor.aktuelle_uhrzeit", config.Entity)
	assert.Equal(t, 4.5, config.PadPct)
	assert.Equal(t, "#A0A0A0", config.TickColor)
	assert.Equal(t, 600, config.FontWeight)
	assert.True(t, config.ShowSecondsSweep)
	assert.Equal(t, model.DefaultConfig().TickLenPct, config.TickLenPct)
	assert.Equal(t, model.SizingFluid, config.Sizing)
}

func TestParseCardGrid(t *testing.T) {
	overrides, err := ParseCard([]byte("entity: sensor.time\ncols: 8\nrows: 3\n"))
	require.NoError(t, err)
	config, err := model.NewConfig(overrides)
	require.NoError(t, err)
	assert.Equal(t, model.SizingGrid, config.Sizing)
}

func TestParseCardErrors(t *testing.T) {
	_, err := ParseCard([]byte("entity: sensor.time\npadPercent: 3\n"))
	assert.Error(t, err)

	_, err = ParseCard([]byte("type: custom:other-card\nentity: sensor.time\n"))
	assert.ErrorIs(t, err, ErrWrongCardType)

	_, err = ParseCard([]byte("entity: [unclosed"))
	assert.Error(t, err)
}

func TestParseCardEmpty(t *testing.T) {
	overrides, err := ParseCard(nil)
	require.NoError(t, err)
	assert.Equal(t, model.Overrides{}, overrides)

	_, err = model.NewConfig(overrides)
	assert.ErrorIs(t, err, model.ErrMissingEntity)
}

func TestLoadCard(t *testing.T) {
	dir := t.TempDir()

	missing, err := LoadCard(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	require.NotNil(t, missing.Entity)
	assert.Equal(t, "sensor.time", *missing.Entity)

	path := filepath.Join(dir, "card.yaml")
	require.NoError(t, os.WriteFile(path, []byte("entity: sensor.outside\n"), 0o644))
	loaded, err := LoadCard(path)
	require.NoError(t, err)
	assert.Equal(t, "sensor.outside", *loaded.Entity)
}
