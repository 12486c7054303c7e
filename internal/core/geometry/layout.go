// Package geometry maps a card configuration and a container size to a
// renderable tick-clock layout. Everything here is a pure function of its
// inputs; the only clock reading is the one passed in for the seconds sweep.
package geometry

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"tickclock/internal/core/model"
)

const (
	// TickCount is the number of tick marks around the face.
	TickCount = 60
	// TickStepDeg is the angular distance between neighbouring ticks.
	TickStepDeg = 6.0

	hourTickEvery  = 5
	hourTickFactor = 1.6

	// innerInsetFraction pulls the tick ring in from the inset rectangle by a
	// fixed share of the rectangle height, on both axes.
	innerInsetFraction = 0.10
)

// Rect is the inset background rectangle.
type Rect struct {
	X           float64
	Y           float64
	Width       float64
	Height      float64
	Radius      float64
	BorderWidth float64
}

// Tick is a single radial tick mark. (X1, Y1) lies on the outer ring and
// (X2, Y2) on the inner ring.
type Tick struct {
	Index       int
	AngleDeg    float64
	X1          float64
	Y1          float64
	X2          float64
	Y2          float64
	StrokeWidth float64
	Hour        bool
}

// Length returns the distance between the tick endpoints.
func (tick Tick) Length() float64 {
	return math.Hypot(tick.X1-tick.X2, tick.Y1-tick.Y2)
}

// Label is the anchor of the entity value text.
type Label struct {
	// X and Y are the container centre.
	X float64
	Y float64
	// OffsetY shifts the label vertically from the centre.
	OffsetY  float64
	FontSize float64
}

// OffsetCSS formats OffsetY the way it is written into style attributes.
func (label Label) OffsetCSS() string {
	return strconv.FormatFloat(label.OffsetY, 'f', 2, 64) + "px"
}

// Layout is the complete renderable geometry of one card frame.
type Layout struct {
	Width  float64
	Height float64
	Rect   Rect
	Ticks  [TickCount]Tick
	Label  Label
	// Sweep is nil unless the seconds sweep is enabled.
	Sweep *Sweep
}

// ComputeLayout lays out the clock face for config inside size.
//
// themeRadius is the host theme corner radius in pixels; it is used when the
// configuration takes its corner radius from the theme. now is read only when
// the seconds sweep is enabled. Sizes must already have been passed through
// ResolveSize; non-positive sizes return ErrInvalidSize.
func ComputeLayout(config model.ClockConfig, size ContainerSize, themeRadius float64, now time.Time) (Layout, error) {
	if !size.Valid() {
		return Layout{}, fmt.Errorf("compute layout %gx%g: %w", size.Width, size.Height, ErrInvalidSize)
	}

	width, height := size.Width, size.Height
	minSide := size.MinSide()

	pad := math.Min(percentOf(minSide, config.PadPct), minSide/2)
	rectWidth := nonNegative(width - 2*pad)
	rectHeight := nonNegative(height - 2*pad)
	centerX := width / 2
	centerY := height / 2

	layout := Layout{
		Width:  width,
		Height: height,
		Rect: Rect{
			X:           (width - rectWidth) / 2,
			Y:           (height - rectHeight) / 2,
			Width:       rectWidth,
			Height:      rectHeight,
			Radius:      cornerRadius(config, minSide, rectWidth, rectHeight, themeRadius),
			BorderWidth: percentOf(minSide, config.BorderPct),
		},
		Label: Label{
			X:        centerX,
			Y:        centerY,
			OffsetY:  finite(config.LabelTransformFactor) * height,
			FontSize: percentOf(minSide, config.FontSizePct),
		},
	}

	innerX := nonNegative(rectWidth/2 - rectHeight*innerInsetFraction)
	innerY := nonNegative(rectHeight/2 - rectHeight*innerInsetFraction)
	tickLen := percentOf(minSide, config.TickLenPct)
	outerX := innerX + tickLen
	outerY := innerY + tickLen
	stroke := percentOf(minSide, config.TickThickPct)

	for index := 0; index < TickCount; index++ {
		angle := float64(index) * TickStepDeg
		radians := angle * math.Pi / 180
		cos, sin := math.Cos(radians), math.Sin(radians)

		hour := index%hourTickEvery == 0
		strokeWidth := stroke
		if hour {
			strokeWidth = stroke * hourTickFactor
		}

		layout.Ticks[index] = Tick{
			Index:       index,
			AngleDeg:    angle,
			X1:          centerX + cos*outerX,
			Y1:          centerY + sin*outerY,
			X2:          centerX + cos*innerX,
			Y2:          centerY + sin*innerY,
			StrokeWidth: strokeWidth,
			Hour:        hour,
		}
	}

	if config.ShowSecondsSweep {
		sweep := SweepAt(now)
		layout.Sweep = &sweep
	}

	return layout, nil
}

// cornerRadius picks the rectangle radius according to the corner source.
// A theme radius is rescaled by the ratio of the inset rectangle's shorter
// side to the container's shorter side.
func cornerRadius(config model.ClockConfig, minSide, rectWidth, rectHeight, themeRadius float64) float64 {
	var radius float64
	if config.UsesThemeRadius() {
		radius = nonNegative(finite(themeRadius)) * (math.Min(rectWidth, rectHeight) / minSide)
	} else {
		radius = percentOf(minSide, config.RadiusPct)
	}
	return math.Min(radius, math.Min(rectWidth, rectHeight)/2)
}

func percentOf(side, pct float64) float64 {
	return nonNegative(side * finite(pct) / 100)
}

func nonNegative(value float64) float64 {
	if !(value > 0) || math.IsInf(value, 1) {
		return 0
	}
	return value
}

func finite(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return value
}
