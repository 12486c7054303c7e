package geometry

import (
	"math"
	"strconv"
	"time"
)

// SweepMaskID is the id of the mask that limits the sweep to the tick marks.
const SweepMaskID = "tick-sweep-mask"

// SweepPeriod is the duration of one full seconds-sweep rotation.
const SweepPeriod = 60 * time.Second

// Sweep describes the seconds-sweep animation phase at render time.
type Sweep struct {
	// Phase is seconds past the minute, with millisecond resolution.
	Phase float64
	// Delay is the negative animation delay that aligns a 60 s loop with Phase.
	Delay time.Duration
	// DelayCSS is Delay formatted as a CSS/SMIL time value, e.g. "-12.500s".
	DelayCSS string
	MaskID   string
}

// SweepAt computes the sweep phase for the wall-clock reading now.
// It must be recomputed on every re-render, not cached.
func SweepAt(now time.Time) Sweep {
	seconds := now.Second()
	millis := now.Nanosecond() / int(time.Millisecond)
	phase := float64(seconds) + float64(millis)/1000

	return Sweep{
		Phase:    phase,
		Delay:    -(time.Duration(seconds)*time.Second + time.Duration(millis)*time.Millisecond),
		DelayCSS: "-" + strconv.FormatFloat(phase, 'f', 3, 64) + "s",
		MaskID:   SweepMaskID,
	}
}

// Progress returns the fraction of the minute covered by the sweep after
// elapsed time has passed since the phase was taken.
func (sweep Sweep) Progress(elapsed time.Duration) float64 {
	period := SweepPeriod.Seconds()
	fraction := math.Mod(sweep.Phase+elapsed.Seconds(), period) / period
	if fraction < 0 {
		fraction++
	}
	return fraction
}
