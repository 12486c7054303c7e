package animation

import (
	"time"

	"tickclock/internal/core/geometry"
)

// Config contains sweep timing values.
type Config struct {
	// Period is one full revolution of the highlight.
	Period time.Duration
	// Trail is how many ticks behind the leading edge stay lit, fading out.
	Trail float64
}

// DefaultConfig returns a one-minute revolution with a five-tick trail,
// matching the 30° wedge of the SVG rendition.
func DefaultConfig() Config {
	return Config{
		Period: geometry.SweepPeriod,
		Trail:  5,
	}
}

func (config Config) normalized() Config {
	defaults := DefaultConfig()
	if config.Period <= 0 {
		config.Period = defaults.Period
	}
	if config.Trail <= 0 {
		config.Trail = defaults.Trail
	}
	return config
}
