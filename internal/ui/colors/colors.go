// Package colors converts CSS-style colour strings from card configs into
// image/color values for the Fyne adapter.
package colors

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Parse understands CSS colour names, "transparent", and #rgb, #rgba,
// #rrggbb and #rrggbbaa hex notation.
func Parse(value string) (color.NRGBA, error) {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	if trimmed == "transparent" {
		return color.NRGBA{}, nil
	}
	if named, ok := colornames.Map[trimmed]; ok {
		return color.NRGBA{R: named.R, G: named.G, B: named.B, A: named.A}, nil
	}
	if !strings.HasPrefix(trimmed, "#") {
		return color.NRGBA{}, fmt.Errorf("parse colour %q: unsupported format", value)
	}

	hex := trimmed[1:]
	switch len(hex) {
	case 3, 4:
		expanded := make([]byte, 0, len(hex)*2)
		for i := 0; i < len(hex); i++ {
			expanded = append(expanded, hex[i], hex[i])
		}
		hex = string(expanded)
	case 6, 8:
	default:
		return color.NRGBA{}, fmt.Errorf("parse colour %q: bad hex length", value)
	}
	if len(hex) == 6 {
		hex += "ff"
	}

	parsed, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parse colour %q: %w", value, err)
	}
	return color.NRGBA{
		R: uint8(parsed >> 24),
		G: uint8(parsed >> 16),
		B: uint8(parsed >> 8),
		A: uint8(parsed),
	}, nil
}

// ParseOr returns Parse(value), or fallback when value cannot be parsed.
func ParseOr(value string, fallback color.Color) color.Color {
	parsed, err := Parse(value)
	if err != nil {
		return fallback
	}
	return parsed
}
