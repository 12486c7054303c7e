// Package svg renders tick-clock frames as standalone SVG documents and
// rasterizes them for previews.
package svg

import (
	"fmt"
	"html"
	"math"
	"strconv"
	"strings"

	"tickclock/internal/card"
	"tickclock/internal/core/geometry"
)

// sweepArcDeg is the angular width of the highlighted trailing wedge.
const sweepArcDeg = 30.0

// Document renders frame as an SVG document. It satisfies card.Serializer,
// so the document itself is the content compared between renders.
func Document(frame card.Frame) string {
	layout := frame.Layout
	config := frame.Config

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s" preserveAspectRatio="none">`,
		num(layout.Width), num(layout.Height), num(layout.Width), num(layout.Height))
	b.WriteString("\n")

	fmt.Fprintf(&b, `<rect class="card-root" x="0" y="0" width="%s" height="%s" fill="%s" stroke="%s" stroke-width="%s"/>`,
		num(layout.Width), num(layout.Height), attr(config.BgColor), attr(config.OuterBorderColor), num(config.OuterBorderWidth*2))
	b.WriteString("\n")

	if layout.Sweep != nil {
		writeSweep(&b, frame)
	} else {
		b.WriteString(`<g class="ticks">`)
		b.WriteString("\n")
		writeTicks(&b, layout, config.TickColor)
		b.WriteString("</g>\n")
	}

	rect := layout.Rect
	fmt.Fprintf(&b, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s" stroke="%s" stroke-width="%s" rx="%s" ry="%s"/>`,
		num(rect.X), num(rect.Y), num(rect.Width), num(rect.Height),
		attr(config.BgColor), attr(config.BorderColor), num(rect.BorderWidth), num(rect.Radius), num(rect.Radius))
	b.WriteString("\n")

	label := layout.Label
	fmt.Fprintf(&b, `<text class="label" x="%s" y="%s" transform="translate(0 %s)" text-anchor="middle" dominant-baseline="central" fill="%s" font-family="%s" font-weight="%d" font-size="%spx" font-stretch="condensed">%s</text>`,
		num(label.X), num(label.Y), strconv.FormatFloat(label.OffsetY, 'f', 2, 64),
		attr(config.FontColor), attr(config.FontFamily), config.FontWeight, strconv.FormatFloat(label.FontSize, 'f', 2, 64),
		html.EscapeString(frame.Label))
	b.WriteString("\n</svg>\n")
	return b.String()
}

func writeTicks(b *strings.Builder, layout geometry.Layout, stroke string) {
	for _, tick := range layout.Ticks {
		fmt.Fprintf(b, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s" stroke-linecap="round"/>`,
			num(tick.X1), num(tick.Y1), num(tick.X2), num(tick.Y2), attr(stroke), num(tick.StrokeWidth))
		b.WriteString("\n")
	}
}

// writeSweep draws the ticks twice: once in the tick colour and once through
// a mask made of the tick shapes, filled by a wedge that rotates once a
// minute. The negative begin offset places the wedge at the current second.
func writeSweep(b *strings.Builder, frame card.Frame) {
	layout := frame.Layout
	sweep := layout.Sweep
	cx, cy := layout.Label.X, layout.Label.Y

	fmt.Fprintf(b, `<defs><mask id="%s" maskUnits="userSpaceOnUse" x="0" y="0" width="%s" height="%s">`,
		attr(sweep.MaskID), num(layout.Width), num(layout.Height))
	b.WriteString("\n")
	writeTicks(b, layout, "white")
	b.WriteString("</mask></defs>\n")

	b.WriteString(`<g class="ticks">`)
	b.WriteString("\n")
	writeTicks(b, layout, frame.Config.TickColor)
	b.WriteString("</g>\n")

	fmt.Fprintf(b, `<g class="sweep" mask="url(#%s)">`, attr(sweep.MaskID))
	fmt.Fprintf(b, `<path d="%s" fill="%s">`, wedgePath(cx, cy, math.Hypot(layout.Width, layout.Height)), attr(frame.Config.SweepColor))
	fmt.Fprintf(b, `<animateTransform attributeName="transform" type="rotate" from="0 %s %s" to="360 %s %s" dur="%gs" begin="%s" repeatCount="indefinite"/>`,
		num(cx), num(cy), num(cx), num(cy), geometry.SweepPeriod.Seconds(), sweep.DelayCSS)
	b.WriteString("</path></g>\n")
}

// wedgePath returns a pie slice whose leading edge points at twelve o'clock.
func wedgePath(cx, cy, radius float64) string {
	lead := -90.0 * math.Pi / 180
	trail := (-90.0 - sweepArcDeg) * math.Pi / 180
	return fmt.Sprintf("M %s %s L %s %s A %s %s 0 0 1 %s %s Z",
		num(cx), num(cy),
		num(cx+radius*math.Cos(trail)), num(cy+radius*math.Sin(trail)),
		num(radius), num(radius),
		num(cx+radius*math.Cos(lead)), num(cy+radius*math.Sin(lead)))
}

func num(value float64) string {
	rounded := math.Round(value*1000) / 1000
	if rounded == 0 {
		rounded = 0
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

func attr(value string) string {
	return html.EscapeString(value)
}
