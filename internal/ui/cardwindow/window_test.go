package cardwindow

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tickclock/internal/card"
	"tickclock/internal/core/model"
	"tickclock/internal/ui/clockwidget"
)

func TestPreferredSize(t *testing.T) {
	tests := []struct {
		name   string
		config func(*model.ClockConfig)
		want   fyne.Size
	}{
		{name: "fluid default", config: func(*model.ClockConfig) {}, want: fyne.NewSize(320, 160)},
		{name: "fluid min height", config: func(c *model.ClockConfig) { c.MinHeightPx = 240 }, want: fyne.NewSize(320, 240)},
		{name: "grid", config: func(c *model.ClockConfig) {
			c.Sizing = model.SizingGrid
			c.Cols, c.Rows = 8, 3
		}, want: fyne.NewSize(332, 184)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := model.DefaultConfig()
			config.Entity = "sensor.time"
			tt.config(&config)
			assert.Equal(t, tt.want, PreferredSize(config))
		})
	}
}

func TestNewHostsClock(t *testing.T) {
	app := test.NewTempApp(t)
	config, err := model.NewConfig(model.Overrides{Entity: model.Ptr("sensor.time"), Cols: model.Ptr(6), Rows: model.Ptr(2)})
	require.NoError(t, err)
	c, err := card.New(config, nil, nil)
	require.NoError(t, err)
	clock := clockwidget.New(c)

	window := New(app, clock, Config{})
	window.Show()
	defer window.Fyne().Close()

	assert.Equal(t, "Tick clock", window.Fyne().Title())
	content, ok := window.Fyne().Content().(*fyne.Container)
	require.True(t, ok)
	require.Len(t, content.Objects, 1)
	assert.Same(t, clock, content.Objects[0])
}
