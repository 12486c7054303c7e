// Package clockwidget renders the tick-clock card as a Fyne widget.
package clockwidget

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"tickclock/internal/card"
	"tickclock/internal/core/geometry"
	"tickclock/internal/core/model"
	"tickclock/internal/ui/animation"
)

const (
	minWidth  = float32(120)
	minHeight = float32(56)
)

// ClockCard is a tappable widget that draws one card.
type ClockCard struct {
	widget.BaseWidget

	card        *card.Card
	log         logrus.FieldLogger
	now         func() time.Time
	themeRadius func() float32
	sweep       *animation.Sweep
	renderer    *clockRenderer
}

var _ fyne.Tappable = (*ClockCard)(nil)

// New creates a widget around c.
func New(c *card.Card) *ClockCard {
	clock := &ClockCard{
		card:        c,
		log:         logrus.StandardLogger(),
		now:         time.Now,
		themeRadius: theme.InputRadiusSize,
	}
	clock.sweep = animation.New(animation.DefaultConfig(), clock.paintSweep)
	clock.ExtendBaseWidget(clock)
	return clock
}

// SetLogger replaces the logger used for render failures.
func (clock *ClockCard) SetLogger(log logrus.FieldLogger) {
	if log != nil {
		clock.log = log
		clock.card.SetLogger(log)
	}
}

// SetClock replaces the wall clock, mainly for tests.
func (clock *ClockCard) SetClock(now func() time.Time) {
	if now != nil {
		clock.now = now
	}
}

// SetThemeRadius replaces the theme corner radius lookup.
func (clock *ClockCard) SetThemeRadius(radius func() float32) {
	if radius != nil {
		clock.themeRadius = radius
	}
}

// Card returns the underlying card controller.
func (clock *ClockCard) Card() *card.Card {
	return clock.card
}

// SetConfig replaces the card configuration and redraws.
func (clock *ClockCard) SetConfig(config model.ClockConfig) error {
	if err := clock.card.SetConfig(config); err != nil {
		return err
	}
	clock.Refresh()
	return nil
}

// Tapped asks the host to show the entity's details.
func (clock *ClockCard) Tapped(*fyne.PointEvent) {
	if !clock.card.Click() {
		clock.log.WithField("entity", clock.card.Config().Entity).Debug("card tapped without a connected host")
	}
}

// MinSize keeps the card readable; fluid sizing follows the container.
func (clock *ClockCard) MinSize() fyne.Size {
	clock.ExtendBaseWidget(clock)
	height := minHeight
	if config := clock.card.Config(); config.MinHeightPx > 0 {
		height = float32(config.MinHeightPx)
	}
	return fyne.NewSize(minWidth, height)
}

// CreateRenderer builds the canvas objects for the card.
func (clock *ClockCard) CreateRenderer() fyne.WidgetRenderer {
	clock.ExtendBaseWidget(clock)
	clock.renderer = newClockRenderer(clock)
	return clock.renderer
}

// render measures, lays out and applies a frame. It reports whether the
// canvas objects were touched.
func (clock *ClockCard) render(size fyne.Size) bool {
	if clock.renderer == nil || size.Width <= 0 {
		return false
	}
	measured := geometry.ContainerSize{Width: float64(size.Width), Height: float64(size.Height)}
	frame, _, changed, err := clock.card.Render(measured, float64(clock.themeRadius()), clock.now(), card.Fingerprint)
	if err != nil {
		clock.log.WithError(err).WithFields(logrus.Fields{
			"entity": clock.card.Config().Entity,
			"width":  size.Width,
			"height": size.Height,
		}).Warn("render card")
		return false
	}
	if !changed {
		return false
	}

	clock.renderer.apply(frame, size)
	if frame.Layout.Sweep != nil {
		clock.sweep.Start(*frame.Layout.Sweep)
	} else {
		clock.sweep.Stop()
	}
	return true
}

func (clock *ClockCard) paintSweep(position float64) {
	if clock.renderer != nil {
		clock.renderer.paintSweep(position, clock.sweep.Config().Trail)
	}
}

func blend(from, to color.NRGBA, amount float64) color.NRGBA {
	if amount <= 0 {
		return from
	}
	if amount >= 1 {
		return to
	}
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*amount + 0.5)
	}
	return color.NRGBA{R: mix(from.R, to.R), G: mix(from.G, to.G), B: mix(from.B, to.B), A: mix(from.A, to.A)}
}
