package svg

import (
	"fmt"
	"io"
	"strings"
	"time"

	"tickclock/internal/card"
	"tickclock/internal/core/geometry"
)

// Format selects the output of a Renderer.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// Renderer writes a card to an output only when its document changed.
type Renderer struct {
	Card        *card.Card
	Size        geometry.ContainerSize
	ThemeRadius float64
	Format      Format
	Scale       float64
}

// Render writes the current frame to w. It reports false, and writes
// nothing, when the document equals the previous one.
func (renderer *Renderer) Render(w io.Writer, now time.Time) (bool, error) {
	frame, document, changed, err := renderer.Card.Render(renderer.Size, renderer.ThemeRadius, now, Document)
	if err != nil {
		return false, fmt.Errorf("render card: %w", err)
	}
	if !changed {
		return false, nil
	}

	switch renderer.Format {
	case FormatPNG:
		err = WritePNG(w, frame, renderer.Scale)
	case FormatSVG, "":
		_, err = io.Copy(w, strings.NewReader(document))
	default:
		err = fmt.Errorf("unknown format %q", renderer.Format)
	}
	if err != nil {
		renderer.Card.Invalidate()
		return false, fmt.Errorf("write %s: %w", renderer.Format, err)
	}
	return true, nil
}
