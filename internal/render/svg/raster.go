package svg

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"tickclock/internal/card"
)

// Rasterize draws frame into an RGBA image scaled by scale.
//
// The rasterizer has no text, mask or animation support, so the preview is
// the static face: background, ticks and inset rectangle.
func Rasterize(frame card.Frame, scale float64) (*image.RGBA, error) {
	if !(scale > 0) {
		scale = 1
	}
	width := int(math.Ceil(frame.Layout.Width * scale))
	height := int(math.Ceil(frame.Layout.Height * scale))
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("rasterize %dx%d: empty image", width, height)
	}

	static := frame
	static.Layout.Sweep = nil
	icon, err := oksvg.ReadIconStream(strings.NewReader(Document(static)), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1)
	return img, nil
}

// WritePNG rasterizes frame and encodes it as PNG into w.
func WritePNG(w io.Writer, frame card.Frame, scale float64) error {
	img, err := Rasterize(frame, scale)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
