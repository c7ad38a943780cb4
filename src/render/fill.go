package render

import (
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/ptheywood/json2plot/src/chartcfg"
)

// fillSegment is one contiguous run of points where the lower curve sits
// strictly below the upper curve.
type fillSegment struct {
	X  []float64
	Y0 []float64
	Y1 []float64
}

// segmentFill splits a fill region into maximal runs where Y0 < Y1. Points
// where the curves touch or cross break the run; runs shorter than two
// points enclose no area and are dropped.
func segmentFill(f chartcfg.Fill) []fillSegment {
	var segs []fillSegment
	var cur fillSegment
	flush := func() {
		if len(cur.X) >= 2 {
			segs = append(segs, cur)
		}
		cur = fillSegment{}
	}
	for i := range f.X {
		if f.Y0[i] < f.Y1[i] {
			cur.X = append(cur.X, f.X[i])
			cur.Y0 = append(cur.Y0, f.Y0[i])
			cur.Y1 = append(cur.Y1, f.Y1[i])
			continue
		}
		flush()
	}
	flush()
	return segs
}

// fillSeries shades the area between two curves over a shared x-domain.
// It implements chart.Series and BoundedValuesProvider, so the chart's
// automatic range calculation includes both curves, and renders through
// chart.Draw.BoundedSeries the same way go-chart's band series do.
type fillSeries struct {
	Name  string
	Style chart.Style
	X     []float64
	Y0    []float64
	Y1    []float64
}

func (fs fillSeries) GetName() string { return fs.Name }

func (fs fillSeries) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }

func (fs fillSeries) GetStyle() chart.Style { return fs.Style }

func (fs fillSeries) Len() int { return len(fs.X) }

// GetBoundedValues returns the x value with the upper and lower y bounds.
func (fs fillSeries) GetBoundedValues(index int) (x, y1, y2 float64) {
	return fs.X[index], fs.Y1[index], fs.Y0[index]
}

func (fs fillSeries) Validate() error {
	if len(fs.X) == 0 {
		return fmt.Errorf("fill series must have at least one point")
	}
	if len(fs.X) != len(fs.Y0) || len(fs.X) != len(fs.Y1) {
		return fmt.Errorf("fill series coordinate lengths must match")
	}
	return nil
}

func (fs fillSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, defaults chart.Style) {
	style := fs.Style.InheritFrom(defaults)
	chart.Draw.BoundedSeries(r, canvasBox, xrange, yrange, style, fs)
}
