// Package animation drives the seconds-sweep highlight of the Fyne clock
// card with a repeating fyne.Animation locked to the wall clock.
package animation

import (
	"math"
	"sync"

	"fyne.io/fyne/v2"

	"tickclock/internal/core/geometry"
)

// Sweep runs one repeating animation per card. Each tick reports the
// highlight position in ticks, in [0, TickCount).
type Sweep struct {
	mu     sync.Mutex
	config Config
	onTick func(position float64)
	anim   *fyne.Animation
	phase  float64
}

// New creates a stopped sweep.
func New(config Config, onTick func(position float64)) *Sweep {
	return &Sweep{
		config: config.normalized(),
		onTick: onTick,
	}
}

// Config returns the sweep timing values.
func (sweep *Sweep) Config() Config {
	return sweep.config
}

// Start (re)starts the animation so that its leading edge sits at the
// given phase. A running animation is replaced.
func (sweep *Sweep) Start(phase geometry.Sweep) {
	sweep.mu.Lock()
	if sweep.anim != nil {
		sweep.anim.Stop()
	}
	sweep.phase = phase.Phase
	anim := fyne.NewAnimation(sweep.config.Period, func(progress float32) {
		if sweep.onTick != nil {
			sweep.onTick(sweep.Position(progress))
		}
	})
	anim.Curve = fyne.AnimationLinear
	anim.RepeatCount = fyne.AnimationRepeatForever
	sweep.anim = anim
	sweep.mu.Unlock()

	anim.Start()
}

// Stop terminates the active animation, if any.
func (sweep *Sweep) Stop() {
	sweep.mu.Lock()
	defer sweep.mu.Unlock()
	if sweep.anim != nil {
		sweep.anim.Stop()
		sweep.anim = nil
	}
}

// Running reports whether an animation is active.
func (sweep *Sweep) Running() bool {
	sweep.mu.Lock()
	defer sweep.mu.Unlock()
	return sweep.anim != nil
}

// Position maps animation progress to the leading edge, in ticks past
// twelve o'clock.
func (sweep *Sweep) Position(progress float32) float64 {
	sweep.mu.Lock()
	phase := sweep.phase
	sweep.mu.Unlock()

	period := sweep.config.Period.Seconds()
	seconds := math.Mod(phase+float64(progress)*period, period)
	if seconds < 0 {
		seconds += period
	}
	return seconds * geometry.TickCount / period
}

// Intensity returns how strongly tick is lit for a leading edge at
// position: 1 at the edge, fading linearly to 0 trail ticks behind it.
func Intensity(position float64, tick int, trail float64) float64 {
	if trail <= 0 {
		return 0
	}
	behind := math.Mod(position-float64(tick), geometry.TickCount)
	if behind < 0 {
		behind += geometry.TickCount
	}
	if behind >= trail {
		return 0
	}
	return 1 - behind/trail
}
