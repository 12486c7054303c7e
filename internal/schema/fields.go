// Package schema declares the editable card fields and turns single-field
// edits into full replacement configurations.
package schema

import (
	"strconv"
	"strings"

	"tickclock/internal/core/model"
)

// Kind is the editor control a field is shown with.
type Kind string

const (
	KindEntity  Kind = "entity"
	KindSelect  Kind = "select"
	KindColor   Kind = "color"
	KindText    Kind = "text"
	KindNumber  Kind = "number"
	KindBoolean Kind = "boolean"
)

// Option is one choice of a select field.
type Option struct {
	Value any
	Label string
}

// Field describes one editable configuration value.
type Field struct {
	Name    string
	Kind    Kind
	Min     float64
	Max     float64
	Step    float64
	Slider  bool
	Options []Option
	Default any

	get func(model.ClockConfig) any
	set func(*model.Overrides, any) error
}

// Value returns the field's current value in config.
func (field Field) Value(config model.ClockConfig) any {
	return field.get(config)
}

var fields = buildFields()

// Fields returns the editable fields in display order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// Lookup returns the field called name.
func Lookup(name string) (Field, bool) {
	for _, field := range fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// Apply merges a single edited value over prev and returns the full
// replacement overrides, tagged with the card type. prev is not modified.
func Apply(prev model.Overrides, name string, value any) (model.Overrides, error) {
	field, ok := Lookup(name)
	if !ok {
		return prev, &FieldError{Field: name, Err: ErrUnknownField}
	}
	next := prev
	if err := field.set(&next, value); err != nil {
		return prev, &FieldError{Field: name, Err: err}
	}
	next.Type = model.Ptr(model.CardType)
	return next, nil
}

// StubConfig is the starter configuration offered by the card picker.
func StubConfig() model.Overrides {
	return model.Overrides{
		Type:   model.Ptr(model.CardType),
		Entity: model.Ptr("sensor.time"),
		Cols:   model.Ptr(6),
		Rows:   model.Ptr(2),
	}
}

func buildFields() []Field {
	defaults := model.DefaultConfig()
	list := []Field{
		{
			Name: "entity",
			Kind: KindEntity,
			get:  func(c model.ClockConfig) any { return c.Entity },
			set: func(o *model.Overrides, v any) error {
				s, err := asString(v)
				if err != nil {
					return err
				}
				if strings.TrimSpace(s) == "" {
					return invalid("entity must not be empty")
				}
				o.Entity = &s
				return nil
			},
		},
		stringSelect("sizing", []string{string(model.SizingFluid), string(model.SizingGrid)},
			func(c model.ClockConfig) string { return string(c.Sizing) },
			func(o *model.Overrides, v string) { o.Sizing = model.Ptr(model.SizingMode(v)) }),
		intSelect("cols", model.GridColumns(),
			func(c model.ClockConfig) int { return c.Cols },
			func(o *model.Overrides, v int) { o.Cols = &v }),
		intSelect("rows", model.GridRows(),
			func(c model.ClockConfig) int { return c.Rows },
			func(o *model.Overrides, v int) { o.Rows = &v }),
		color("bgColor", func(c model.ClockConfig) string { return c.BgColor }, func(o *model.Overrides, v string) { o.BgColor = &v }),
		color("borderColor", func(c model.ClockConfig) string { return c.BorderColor }, func(o *model.Overrides, v string) { o.BorderColor = &v }),
		color("tickColor", func(c model.ClockConfig) string { return c.TickColor }, func(o *model.Overrides, v string) { o.TickColor = &v }),
		color("fontColor", func(c model.ClockConfig) string { return c.FontColor }, func(o *model.Overrides, v string) { o.FontColor = &v }),
		intSelect("fontWeight", []int{400, 500, 600, 700, 800},
			func(c model.ClockConfig) int { return c.FontWeight },
			func(o *model.Overrides, v int) { o.FontWeight = &v }),
		{
			Name: "fontFamily",
			Kind: KindText,
			get:  func(c model.ClockConfig) any { return c.FontFamily },
			set: func(o *model.Overrides, v any) error {
				s, err := asString(v)
				if err != nil {
					return err
				}
				o.FontFamily = &s
				return nil
			},
		},
		number("fontSizePct", 0, 100, 1, true, func(c model.ClockConfig) float64 { return c.FontSizePct }, func(o *model.Overrides, v float64) { o.FontSizePct = &v }),
		number("padPct", 0, 20, 0.1, true, func(c model.ClockConfig) float64 { return c.PadPct }, func(o *model.Overrides, v float64) { o.PadPct = &v }),
		number("radiusPct", 0, 40, 0.5, true, func(c model.ClockConfig) float64 { return c.RadiusPct }, func(o *model.Overrides, v float64) { o.RadiusPct = &v }),
		stringSelect("cornerSource", []string{string(model.CornerAuto), string(model.CornerTheme), string(model.CornerRadiusPct)},
			func(c model.ClockConfig) string { return string(c.CornerSource) },
			func(o *model.Overrides, v string) { o.CornerSource = model.Ptr(model.CornerSource(v)) }),
		number("tickLenPct", 0, 100, 1, true, func(c model.ClockConfig) float64 { return c.TickLenPct }, func(o *model.Overrides, v float64) { o.TickLenPct = &v }),
		number("tickThickPct", 0, 5, 0.1, true, func(c model.ClockConfig) float64 { return c.TickThickPct }, func(o *model.Overrides, v float64) { o.TickThickPct = &v }),
		number("borderPct", 0, 10, 0.1, true, func(c model.ClockConfig) float64 { return c.BorderPct }, func(o *model.Overrides, v float64) { o.BorderPct = &v }),
		number("labelTransformFactor", -0.5, 0.5, 0.001, false, func(c model.ClockConfig) float64 { return c.LabelTransformFactor }, func(o *model.Overrides, v float64) { o.LabelTransformFactor = &v }),
		color("outerBorderColor", func(c model.ClockConfig) string { return c.OuterBorderColor }, func(o *model.Overrides, v string) { o.OuterBorderColor = &v }),
		number("outerBorderWidth", 0, 40, 1, false, func(c model.ClockConfig) float64 { return c.OuterBorderWidth }, func(o *model.Overrides, v float64) { o.OuterBorderWidth = &v }),
		number("minHeightPx", 0, 1000, 1, false, func(c model.ClockConfig) float64 { return c.MinHeightPx }, func(o *model.Overrides, v float64) { o.MinHeightPx = &v }),
		{
			Name: "showSecondsSweep",
			Kind: KindBoolean,
			get:  func(c model.ClockConfig) any { return c.ShowSecondsSweep },
			set: func(o *model.Overrides, v any) error {
				b, err := asBool(v)
				if err != nil {
					return err
				}
				o.ShowSecondsSweep = &b
				return nil
			},
		},
		color("sweepColor", func(c model.ClockConfig) string { return c.SweepColor }, func(o *model.Overrides, v string) { o.SweepColor = &v }),
	}

	for index := range list {
		if list[index].Name == "entity" {
			continue
		}
		list[index].Default = list[index].get(defaults)
	}
	return list
}

func number(name string, min, max, step float64, slider bool, get func(model.ClockConfig) float64, set func(*model.Overrides, float64)) Field {
	return Field{
		Name:   name,
		Kind:   KindNumber,
		Min:    min,
		Max:    max,
		Step:   step,
		Slider: slider,
		get:    func(c model.ClockConfig) any { return get(c) },
		set: func(o *model.Overrides, v any) error {
			f, err := asFloat(v)
			if err != nil {
				return err
			}
			if f < min || f > max {
				return invalid("%v outside [%v, %v]", f, min, max)
			}
			set(o, f)
			return nil
		},
	}
}

func intSelect(name string, choices []int, get func(model.ClockConfig) int, set func(*model.Overrides, int)) Field {
	options := make([]Option, 0, len(choices))
	for _, choice := range choices {
		options = append(options, Option{Value: choice, Label: strconv.Itoa(choice)})
	}
	return Field{
		Name:    name,
		Kind:    KindSelect,
		Options: options,
		get:     func(c model.ClockConfig) any { return get(c) },
		set: func(o *model.Overrides, v any) error {
			n, err := asInt(v)
			if err != nil {
				return err
			}
			for _, choice := range choices {
				if choice == n {
					set(o, n)
					return nil
				}
			}
			return invalid("%d is not one of %v", n, choices)
		},
	}
}

func stringSelect(name string, choices []string, get func(model.ClockConfig) string, set func(*model.Overrides, string)) Field {
	options := make([]Option, 0, len(choices))
	for _, choice := range choices {
		options = append(options, Option{Value: choice, Label: choice})
	}
	return Field{
		Name:    name,
		Kind:    KindSelect,
		Options: options,
		get:     func(c model.ClockConfig) any { return get(c) },
		set: func(o *model.Overrides, v any) error {
			s, err := asString(v)
			if err != nil {
				return err
			}
			for _, choice := range choices {
				if choice == s {
					set(o, s)
					return nil
				}
			}
			return invalid("%q is not one of %v", s, choices)
		},
	}
}

func color(name string, get func(model.ClockConfig) string, set func(*model.Overrides, string)) Field {
	return Field{
		Name: name,
		Kind: KindColor,
		get:  func(c model.ClockConfig) any { return get(c) },
		set: func(o *model.Overrides, v any) error {
			s, err := asString(v)
			if err != nil {
				return err
			}
			if strings.TrimSpace(s) == "" {
				return invalid("colour must not be empty")
			}
			set(o, s)
			return nil
		},
	}
}
