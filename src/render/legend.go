package render

import (
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// legendRenderable builds the legend element. It is modeled on chart.Legend
// but differs where the chart description needs it to: unnamed series (the
// fill bands) are excluded, the placement string decides where the box is
// anchored, and the vertical offset nudges centered placements.
func legendRenderable(c *chart.Chart, loc string, yOffset, fontSize float64) chart.Renderable {
	return func(r chart.Renderer, cb chart.Box, chartDefaults chart.Style) {
		legendDefaults := chart.Style{
			FillColor:   drawing.ColorWhite,
			FontColor:   chart.DefaultTextColor,
			FontSize:    fontSize,
			StrokeColor: chart.DefaultAxisColor,
			StrokeWidth: chart.DefaultAxisLineWidth,
		}
		ls := chartDefaults.InheritFrom(legendDefaults)

		var labels []string
		var lines []chart.Style
		for _, s := range c.Series {
			if s.GetStyle().Hidden || s.GetName() == "" {
				continue
			}
			labels = append(labels, s.GetName())
			lines = append(lines, s.GetStyle())
		}
		if len(labels) == 0 {
			return
		}

		const (
			padding   = 5
			swatch    = 25
			entryGap  = 5
			minHeight = 12
		)

		r.SetFont(ls.GetFont())
		r.SetFontColor(ls.GetFontColor())
		r.SetFontSize(ls.GetFontSize())

		var maxW, totalH int
		heights := make([]int, len(labels))
		for i, label := range labels {
			tb := r.MeasureText(label)
			h := tb.Height()
			if h < minHeight {
				h = minHeight
			}
			heights[i] = h
			if tb.Width() > maxW {
				maxW = tb.Width()
			}
			totalH += h
			if i > 0 {
				totalH += entryGap
			}
		}
		boxW := padding*2 + swatch + entryGap + maxW
		boxH := padding*2 + totalH

		left, top := placeLegend(loc, cb, boxW, boxH, yOffset)
		box := chart.Box{Left: left, Top: top, Right: left + boxW, Bottom: top + boxH}
		chart.Draw.Box(r, box, ls)

		y := top + padding
		for i, label := range labels {
			cy := y + heights[i]/2
			st := lines[i]
			r.SetStrokeColor(st.GetStrokeColor())
			r.SetStrokeWidth(st.GetStrokeWidth())
			r.SetStrokeDashArray(st.StrokeDashArray)
			r.MoveTo(left+padding, cy)
			r.LineTo(left+padding+swatch, cy)
			r.Stroke()
			chart.Draw.Text(r, label, left+padding+swatch+entryGap, y+heights[i], ls)
			y += heights[i] + entryGap
		}
	}
}

// placeLegend maps a matplotlib-style location string onto a box origin
// inside the canvas. Unknown strings (including "best") anchor top-right.
// Centered placements shift down by |yOffset| of the canvas height when the
// offset is negative, up when positive.
func placeLegend(loc string, cb chart.Box, w, h int, yOffset float64) (left, top int) {
	const inset = 8
	loc = strings.ToLower(strings.TrimSpace(loc))

	centerX := cb.Left + (cb.Width()-w)/2
	centerY := cb.Top + (cb.Height()-h)/2

	switch loc {
	case "upper left":
		left, top = cb.Left+inset, cb.Top+inset
	case "lower left":
		left, top = cb.Left+inset, cb.Bottom-h-inset
	case "lower right":
		left, top = cb.Right-w-inset, cb.Bottom-h-inset
	case "center left", "left":
		left, top = cb.Left+inset, centerY
	case "center right", "right":
		left, top = cb.Right-w-inset, centerY
	case "center":
		left, top = centerX, centerY
	case "upper center", "top":
		left, top = centerX, cb.Top+inset
		top -= int(yOffset * float64(cb.Height()))
	case "lower center", "bottom":
		left, top = centerX, cb.Bottom-h-inset
		top -= int(yOffset * float64(cb.Height()))
	default: // "best", "upper right" and anything unrecognized
		left, top = cb.Right-w-inset, cb.Top+inset
	}
	return left, top
}
