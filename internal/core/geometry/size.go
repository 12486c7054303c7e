package geometry

import (
	"errors"
	"math"

	"tickclock/internal/core/model"
)

// ErrInvalidSize indicates a container size that cannot be laid out.
var ErrInvalidSize = errors.New("container size must be positive and finite")

// heightFallbackRatio derives a height from the width when the host has not
// measured one yet.
const heightFallbackRatio = 0.5

// ContainerSize is the measured size of the card container in pixels.
type ContainerSize struct {
	Width  float64
	Height float64
}

// Valid reports whether both dimensions are positive and finite.
func (size ContainerSize) Valid() bool {
	return positiveFinite(size.Width) && positiveFinite(size.Height)
}

// MinSide returns the shorter of the two dimensions.
func (size ContainerSize) MinSide() float64 {
	return math.Min(size.Width, size.Height)
}

// ResolveSize applies the sizing policy to a measured container size.
//
// Grid sizing ignores the measurement and returns the fixed table size.
// Fluid sizing keeps the measurement but raises the height to MinHeightPx,
// and substitutes MinHeightPx (or width * 0.5 when unset) for a missing or
// non-positive height. The boolean reports whether a substitution happened.
func ResolveSize(config model.ClockConfig, measured ContainerSize) (ContainerSize, bool) {
	if config.Sizing == model.SizingGrid {
		if width, height, ok := model.GridSize(config.Cols, config.Rows); ok {
			return ContainerSize{Width: width, Height: height}, false
		}
	}

	resolved := measured
	if !positiveFinite(resolved.Width) {
		return resolved, false
	}

	minHeight := 0.0
	if positiveFinite(config.MinHeightPx) {
		minHeight = config.MinHeightPx
	}

	switch {
	case !positiveFinite(resolved.Height) && minHeight > 0:
		resolved.Height = minHeight
	case !positiveFinite(resolved.Height):
		resolved.Height = resolved.Width * heightFallbackRatio
	case resolved.Height < minHeight:
		resolved.Height = minHeight
	default:
		return resolved, false
	}
	return resolved, true
}

func positiveFinite(value float64) bool {
	return value > 0 && !math.IsInf(value, 1)
}
