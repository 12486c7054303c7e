package clockwidget

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"tickclock/internal/card"
	"tickclock/internal/core/geometry"
	"tickclock/internal/ui/animation"
	"tickclock/internal/ui/colors"
)

var (
	fallbackBackground = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	fallbackTick       = color.NRGBA{R: 160, G: 160, B: 160, A: 255}
	fallbackText       = color.NRGBA{A: 255}
	fallbackSweep      = color.NRGBA{R: 255, G: 149, A: 255}
)

// twelveOClock is the tick index pointing straight up; tick 0 points right.
const twelveOClock = geometry.TickCount * 3 / 4

type clockRenderer struct {
	clock   *ClockCard
	root    *canvas.Rectangle
	inset   *canvas.Rectangle
	ticks   [geometry.TickCount]*canvas.Line
	label   *canvas.Text
	objects []fyne.CanvasObject

	tickColor  color.NRGBA
	sweepColor color.NRGBA
	sweepOn    bool
	lit        [geometry.TickCount]float64
}

func newClockRenderer(clock *ClockCard) *clockRenderer {
	r := &clockRenderer{
		clock: clock,
		root:  canvas.NewRectangle(fallbackBackground),
		inset: canvas.NewRectangle(fallbackBackground),
		label: canvas.NewText(card.Placeholder, fallbackText),
	}
	r.label.Alignment = fyne.TextAlignCenter

	// ticks are drawn before the inset so it covers their inner ends.
	r.objects = append(r.objects, r.root)
	for index := range r.ticks {
		r.ticks[index] = canvas.NewLine(fallbackTick)
		r.objects = append(r.objects, r.ticks[index])
	}
	r.objects = append(r.objects, r.inset, r.label)
	return r
}

func (r *clockRenderer) Layout(size fyne.Size) {
	if r.clock.render(size) {
		r.refreshObjects()
	}
}

func (r *clockRenderer) MinSize() fyne.Size {
	return r.clock.MinSize()
}

func (r *clockRenderer) Refresh() {
	if r.clock.render(r.clock.Size()) {
		r.refreshObjects()
	}
}

func (r *clockRenderer) refreshObjects() {
	for _, object := range r.objects {
		canvas.Refresh(object)
	}
}

func (r *clockRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *clockRenderer) Destroy() {
	r.clock.sweep.Stop()
}

// apply copies a frame onto the canvas objects. Grid-mode frames have a
// fixed viewBox and are stretched to the widget like the SVG rendition.
func (r *clockRenderer) apply(frame card.Frame, size fyne.Size) {
	layout := frame.Layout
	config := frame.Config
	scaleX := float32(1)
	scaleY := float32(1)
	if layout.Width > 0 && layout.Height > 0 {
		scaleX = size.Width / float32(layout.Width)
		scaleY = size.Height / float32(layout.Height)
	}
	point := func(x, y float64) fyne.Position {
		return fyne.NewPos(float32(x)*scaleX, float32(y)*scaleY)
	}

	background := colors.ParseOr(config.BgColor, fallbackBackground)
	r.root.FillColor = background
	r.root.StrokeColor = colors.ParseOr(config.OuterBorderColor, fallbackBackground)
	r.root.StrokeWidth = float32(config.OuterBorderWidth)
	r.root.Move(fyne.NewPos(0, 0))
	r.root.Resize(size)

	r.tickColor = toNRGBA(colors.ParseOr(config.TickColor, fallbackTick))
	r.sweepColor = toNRGBA(colors.ParseOr(config.SweepColor, fallbackSweep))
	r.sweepOn = layout.Sweep != nil
	for index, tick := range layout.Ticks {
		line := r.ticks[index]
		line.Position1 = point(tick.X1, tick.Y1)
		line.Position2 = point(tick.X2, tick.Y2)
		line.StrokeWidth = float32(tick.StrokeWidth)
		line.StrokeColor = r.tickColor
		r.lit[index] = 0
	}

	rect := layout.Rect
	r.inset.Move(point(rect.X, rect.Y))
	r.inset.Resize(fyne.NewSize(float32(rect.Width)*scaleX, float32(rect.Height)*scaleY))
	r.inset.FillColor = background
	r.inset.StrokeColor = colors.ParseOr(config.BorderColor, fallbackBackground)
	r.inset.StrokeWidth = float32(rect.BorderWidth)
	r.inset.CornerRadius = float32(rect.Radius) * min(scaleX, scaleY)

	label := layout.Label
	r.label.Text = frame.Label
	r.label.Color = colors.ParseOr(config.FontColor, fallbackText)
	r.label.TextSize = float32(label.FontSize) * scaleY
	r.label.TextStyle = fyne.TextStyle{Bold: config.FontWeight >= 600}
	textSize := fyne.MeasureText(r.label.Text, r.label.TextSize, r.label.TextStyle)
	centre := point(label.X, label.Y+label.OffsetY)
	r.label.Move(fyne.NewPos(centre.X-textSize.Width/2, centre.Y-textSize.Height/2))
	r.label.Resize(textSize)
}

// paintSweep recolours ticks lit by the sweep. position counts ticks
// clockwise from twelve o'clock. Only ticks whose intensity changed are
// refreshed.
func (r *clockRenderer) paintSweep(position, trail float64) {
	if !r.sweepOn {
		return
	}
	for index, line := range r.ticks {
		intensity := animation.Intensity(position+twelveOClock, index, trail)
		if intensity == r.lit[index] {
			continue
		}
		r.lit[index] = intensity
		line.StrokeColor = blend(r.tickColor, r.sweepColor, intensity)
		canvas.Refresh(line)
	}
}

func toNRGBA(c color.Color) color.NRGBA {
	if value, ok := c.(color.NRGBA); ok {
		return value
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
