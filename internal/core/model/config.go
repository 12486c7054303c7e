package model

import (
	"fmt"
	"strings"
)

// CardType is the type tag attached to every card configuration.
const CardType = "custom:clock-ticks-card"

// SizingMode selects where the card's pixel size comes from.
type SizingMode string

const (
	// SizingFluid uses the measured container size.
	SizingFluid SizingMode = "fluid"
	// SizingGrid uses the legacy cols/rows lookup table.
	SizingGrid SizingMode = "grid"
)

// CornerSource selects where the rectangle corner radius comes from.
type CornerSource string

const (
	// CornerAuto uses RadiusPct in grid mode and the host theme radius in fluid mode.
	CornerAuto CornerSource = "auto"
	// CornerTheme always uses the host theme radius.
	CornerTheme CornerSource = "theme"
	// CornerRadiusPct always uses RadiusPct of the shorter container side.
	CornerRadiusPct CornerSource = "radius_pct"
)

// DefaultFontFamily is the label font stack used when none is configured.
const DefaultFontFamily = `SF-Pro-Rounded, system-ui, -apple-system, Segoe UI, Roboto, Ubuntu, Cantarell, "Helvetica Neue", Arial, "Noto Sans", sans-serif`

// ClockConfig is a fully resolved tick-clock card configuration.
// Percentages are relative to the shorter container side.
type ClockConfig struct {
	Type   string
	Entity string

	Sizing SizingMode
	Cols   int
	Rows   int

	PadPct       float64
	RadiusPct    float64
	CornerSource CornerSource
	TickLenPct   float64
	TickThickPct float64
	BorderPct    float64
	FontSizePct  float64

	LabelTransformFactor float64

	BgColor          string
	BorderColor      string
	TickColor        string
	FontColor        string
	OuterBorderColor string
	SweepColor       string

	FontWeight int
	FontFamily string

	OuterBorderWidth float64
	MinHeightPx      float64
	ShowSecondsSweep bool
}

// DefaultConfig returns the documented defaults. Entity is left empty.
func DefaultConfig() ClockConfig {
	return ClockConfig{
		Type:                 CardType,
		Sizing:               SizingFluid,
		Cols:                 6,
		Rows:                 2,
		PadPct:               6,
		RadiusPct:            18,
		CornerSource:         CornerAuto,
		TickLenPct:           50,
		TickThickPct:         0.9,
		BorderPct:            2.4,
		FontSizePct:          60,
		LabelTransformFactor: -0.142,
		BgColor:              "white",
		BorderColor:          "white",
		TickColor:            "#A0A0A0",
		FontColor:            "black",
		OuterBorderColor:     "white",
		SweepColor:           "#FF9500",
		FontWeight:           700,
		FontFamily:           DefaultFontFamily,
		OuterBorderWidth:     6,
		MinHeightPx:          0,
		ShowSecondsSweep:     false,
	}
}

// Overrides holds user-supplied values. A nil field means "not set".
type Overrides struct {
	Type   *string     `yaml:"type,omitempty"`
	Entity *string     `yaml:"entity,omitempty"`
	Sizing *SizingMode `yaml:"sizing,omitempty"`
	Cols   *int        `yaml:"cols,omitempty"`
	Rows   *int        `yaml:"rows,omitempty"`

	PadPct       *float64      `yaml:"padPct,omitempty"`
	RadiusPct    *float64      `yaml:"radiusPct,omitempty"`
	CornerSource *CornerSource `yaml:"cornerSource,omitempty"`
	TickLenPct   *float64      `yaml:"tickLenPct,omitempty"`
	TickThickPct *float64      `yaml:"tickThickPct,omitempty"`
	BorderPct    *float64      `yaml:"borderPct,omitempty"`
	FontSizePct  *float64      `yaml:"fontSizePct,omitempty"`

	LabelTransformFactor *float64 `yaml:"labelTransformFactor,omitempty"`

	BgColor          *string `yaml:"bgColor,omitempty"`
	BorderColor      *string `yaml:"borderColor,omitempty"`
	TickColor        *string `yaml:"tickColor,omitempty"`
	FontColor        *string `yaml:"fontColor,omitempty"`
	OuterBorderColor *string `yaml:"outerBorderColor,omitempty"`
	SweepColor       *string `yaml:"sweepColor,omitempty"`

	FontWeight *int    `yaml:"fontWeight,omitempty"`
	FontFamily *string `yaml:"fontFamily,omitempty"`

	OuterBorderWidth *float64 `yaml:"outerBorderWidth,omitempty"`
	MinHeightPx      *float64 `yaml:"minHeightPx,omitempty"`
	ShowSecondsSweep *bool    `yaml:"showSecondsSweep,omitempty"`
}

// Ptr returns a pointer to value, for building Overrides literals.
func Ptr[T any](value T) *T {
	return &value
}

// Merge resolves overrides on top of base. Every set override wins; every
// unset field keeps the base value. Setting cols or rows without an explicit
// sizing mode selects grid sizing.
func Merge(base ClockConfig, overrides Overrides) ClockConfig {
	merged := ClockConfig{
		Type:   pick(overrides.Type, base.Type),
		Entity: pick(overrides.Entity, base.Entity),
		Sizing: pick(overrides.Sizing, base.Sizing),
		Cols:   pick(overrides.Cols, base.Cols),
		Rows:   pick(overrides.Rows, base.Rows),

		PadPct:       pick(overrides.PadPct, base.PadPct),
		RadiusPct:    pick(overrides.RadiusPct, base.RadiusPct),
		CornerSource: pick(overrides.CornerSource, base.CornerSource),
		TickLenPct:   pick(overrides.TickLenPct, base.TickLenPct),
		TickThickPct: pick(overrides.TickThickPct, base.TickThickPct),
		BorderPct:    pick(overrides.BorderPct, base.BorderPct),
		FontSizePct:  pick(overrides.FontSizePct, base.FontSizePct),

		LabelTransformFactor: pick(overrides.LabelTransformFactor, base.LabelTransformFactor),

		BgColor:          pick(overrides.BgColor, base.BgColor),
		BorderColor:      pick(overrides.BorderColor, base.BorderColor),
		TickColor:        pick(overrides.TickColor, base.TickColor),
		FontColor:        pick(overrides.FontColor, base.FontColor),
		OuterBorderColor: pick(overrides.OuterBorderColor, base.OuterBorderColor),
		SweepColor:       pick(overrides.SweepColor, base.SweepColor),

		FontWeight: pick(overrides.FontWeight, base.FontWeight),
		FontFamily: pick(overrides.FontFamily, base.FontFamily),

		OuterBorderWidth: pick(overrides.OuterBorderWidth, base.OuterBorderWidth),
		MinHeightPx:      pick(overrides.MinHeightPx, base.MinHeightPx),
		ShowSecondsSweep: pick(overrides.ShowSecondsSweep, base.ShowSecondsSweep),
	}
	if overrides.Sizing == nil && (overrides.Cols != nil || overrides.Rows != nil) {
		merged.Sizing = SizingGrid
	}
	return merged
}

// Overlay returns a new Overrides where every field set in next replaces the
// one in prev. Neither argument is modified.
func Overlay(prev, next Overrides) Overrides {
	return Overrides{
		Type:   overlay(prev.Type, next.Type),
		Entity: overlay(prev.Entity, next.Entity),
		Sizing: overlay(prev.Sizing, next.Sizing),
		Cols:   overlay(prev.Cols, next.Cols),
		Rows:   overlay(prev.Rows, next.Rows),

		PadPct:       overlay(prev.PadPct, next.PadPct),
		RadiusPct:    overlay(prev.RadiusPct, next.RadiusPct),
		CornerSource: overlay(prev.CornerSource, next.CornerSource),
		TickLenPct:   overlay(prev.TickLenPct, next.TickLenPct),
		TickThickPct: overlay(prev.TickThickPct, next.TickThickPct),
		BorderPct:    overlay(prev.BorderPct, next.BorderPct),
		FontSizePct:  overlay(prev.FontSizePct, next.FontSizePct),

		LabelTransformFactor: overlay(prev.LabelTransformFactor, next.LabelTransformFactor),

		BgColor:          overlay(prev.BgColor, next.BgColor),
		BorderColor:      overlay(prev.BorderColor, next.BorderColor),
		TickColor:        overlay(prev.TickColor, next.TickColor),
		FontColor:        overlay(prev.FontColor, next.FontColor),
		OuterBorderColor: overlay(prev.OuterBorderColor, next.OuterBorderColor),
		SweepColor:       overlay(prev.SweepColor, next.SweepColor),

		FontWeight: overlay(prev.FontWeight, next.FontWeight),
		FontFamily: overlay(prev.FontFamily, next.FontFamily),

		OuterBorderWidth: overlay(prev.OuterBorderWidth, next.OuterBorderWidth),
		MinHeightPx:      overlay(prev.MinHeightPx, next.MinHeightPx),
		ShowSecondsSweep: overlay(prev.ShowSecondsSweep, next.ShowSecondsSweep),
	}
}

// NewConfig merges overrides over DefaultConfig and validates the result.
func NewConfig(overrides Overrides) (ClockConfig, error) {
	config := Merge(DefaultConfig(), overrides)
	if err := config.Validate(); err != nil {
		return ClockConfig{}, err
	}
	return config, nil
}

// Validate checks the constraints that make a card unusable when violated.
// Style percentages are not range-checked; the layout clamps them.
func (config ClockConfig) Validate() error {
	if strings.TrimSpace(config.Entity) == "" {
		return ErrMissingEntity
	}
	switch config.Sizing {
	case SizingFluid:
	case SizingGrid:
		if _, _, ok := GridSize(config.Cols, config.Rows); !ok {
			return fmt.Errorf("%w: cols=%d rows=%d", ErrUnsupportedGrid, config.Cols, config.Rows)
		}
	default:
		return fmt.Errorf("%w: sizing %q", ErrInvalidMode, config.Sizing)
	}
	switch config.CornerSource {
	case CornerAuto, CornerTheme, CornerRadiusPct:
	default:
		return fmt.Errorf("%w: corner source %q", ErrInvalidMode, config.CornerSource)
	}
	return nil
}

// UsesThemeRadius reports whether the corner radius comes from the host theme.
func (config ClockConfig) UsesThemeRadius() bool {
	switch config.CornerSource {
	case CornerTheme:
		return true
	case CornerRadiusPct:
		return false
	default:
		return config.Sizing != SizingGrid
	}
}

func pick[T any](value *T, fallback T) T {
	if value != nil {
		return *value
	}
	return fallback
}

func overlay[T any](prev, next *T) *T {
	if next != nil {
		return next
	}
	return prev
}
