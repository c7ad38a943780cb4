// Package render maps a loaded chart description onto a go-chart figure and
// writes it out as an image or hands it to the interactive viewer.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"
	"regexp"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/ptheywood/json2plot/src/chartcfg"
	"github.com/ptheywood/json2plot/src/logx"
)

// Options controls one rendering pass.
type Options struct {
	Width  int // 0 picks the default, see ChartDimensions
	Height int
	DPI    int // 0 keeps the library default

	// NameFilters and RegexFilters select which series draw. nil means no
	// filtering; a non-nil empty slice filters everything out until a
	// series matches the other list.
	NameFilters  []string
	RegexFilters []*regexp.Regexp
}

// BuildChart assembles the go-chart figure for a chart description. It
// errors only when there is nothing drawable: no series pass the filters
// and no fill region encloses any area.
func BuildChart(cfg *chartcfg.Config, opts Options) (*chart.Chart, error) {
	log := logx.WithComponent("render")

	var series []chart.Series
	for i, s := range cfg.Series {
		if !selectSeries(s, opts.NameFilters, opts.RegexFilters) {
			log.Debug().Str("series", s.Name).Msg("series filtered out")
			continue
		}
		if len(s.X) == 0 {
			log.Debug().Str("series", s.Name).Msg("series has no data points")
			continue
		}
		x, y := s.X, s.Y
		if len(x) == 1 {
			// go-chart cannot range a single X value; pad to two points.
			x = []float64{x[0], x[0] + 1}
			y = []float64{y[0], y[0]}
		}
		series = append(series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: x,
			YValues: y,
			Style:   seriesStyle(s, i),
		})
	}

	for i, f := range cfg.Fills {
		col := ParseColor(f.Color, chart.GetDefaultColor(i))
		style := chart.Style{
			FillColor:   col.WithAlpha(125),
			StrokeColor: col.WithAlpha(60),
			StrokeWidth: 1.0,
		}
		for _, seg := range segmentFill(f) {
			series = append(series, fillSeries{
				Style: style,
				X:     seg.X,
				Y0:    seg.Y0,
				Y1:    seg.Y1,
			})
		}
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("nothing to draw: no series matched and no fill region encloses an area")
	}

	xMin, xMax, yMin, yMax := dataExtents(series)

	xAxis := resolveAxis(axisSpec{
		name:      "x",
		scale:     cfg.XScale,
		logBase:   cfg.XLogBase,
		lim:       cfg.XLim,
		ticks:     cfg.XTicks,
		labels:    cfg.XTickLabels,
		gridMajor: cfg.GridMajor,
		gridMinor: cfg.XTicksMinor && cfg.GridMinor,
		dataMin:   xMin,
		dataMax:   xMax,
	})
	yAxis := resolveAxis(axisSpec{
		name:      "y",
		scale:     cfg.YScale,
		logBase:   cfg.YLogBase,
		lim:       cfg.YLim,
		ticks:     cfg.YTicks,
		labels:    cfg.YTickLabels,
		gridMajor: cfg.GridMajor,
		gridMinor: cfg.YTicksMinor && cfg.GridMinor,
		dataMin:   yMin,
		dataMax:   yMax,
	})

	// Explicit x tick labels render rotated 90 degrees and need extra
	// bottom padding; y labels stay horizontal.
	xTickStyle := chart.Style{FontSize: cfg.TickLabelSize}
	padBottom := 28
	if cfg.XTickLabels != nil && cfg.XTicks != nil {
		xTickStyle.TextRotationDegrees = 90
		padBottom = 90
	}

	title := ""
	if cfg.Title != nil {
		title = *cfg.Title
		if cfg.FontWeightTitle != chartcfg.DefaultFontWeightTitle {
			log.Debug().Float64("fontweight_title", cfg.FontWeightTitle).
				Msg("title font weight is not representable by the renderer backend")
		}
	}

	width, height := ChartDimensions(opts.Width, opts.Height)
	ch := &chart.Chart{
		Title:      title,
		TitleStyle: chart.Style{FontSize: cfg.FontSizeTitle},
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: padBottom}},
		XAxis: chart.XAxis{
			NameStyle:      chart.Style{FontSize: cfg.FontSizeLabel},
			Range:          xAxis.rng,
			TickStyle:      xTickStyle,
			Ticks:          xAxis.ticks,
			GridLines:      xAxis.gridLines,
			GridMajorStyle: xAxis.majorStyle,
			GridMinorStyle: xAxis.minorStyle,
		},
		YAxis: chart.YAxis{
			NameStyle:      chart.Style{FontSize: cfg.FontSizeLabel},
			Range:          yAxis.rng,
			TickStyle:      chart.Style{FontSize: cfg.TickLabelSize},
			Ticks:          yAxis.ticks,
			GridLines:      yAxis.gridLines,
			GridMajorStyle: yAxis.majorStyle,
			GridMinorStyle: yAxis.minorStyle,
		},
		Series: series,
	}
	if cfg.XLabel != nil {
		ch.XAxis.Name = *cfg.XLabel
	}
	if cfg.YLabel != nil {
		ch.YAxis.Name = *cfg.YLabel
	}
	if opts.DPI > 0 {
		ch.DPI = float64(opts.DPI)
	}
	ch.Elements = []chart.Renderable{
		legendRenderable(ch, cfg.LegendLoc, cfg.LegendYOffset, cfg.FontSizeLegend),
	}
	return ch, nil
}

// dataExtents scans every drawn series and fill band for the plotted
// coordinate ranges.
func dataExtents(series []chart.Series) (xMin, xMax, yMin, yMax float64) {
	xMin, yMin = math.MaxFloat64, math.MaxFloat64
	xMax, yMax = -math.MaxFloat64, -math.MaxFloat64
	note := func(x, y float64) {
		xMin = math.Min(xMin, x)
		xMax = math.Max(xMax, x)
		yMin = math.Min(yMin, y)
		yMax = math.Max(yMax, y)
	}
	for _, s := range series {
		switch t := s.(type) {
		case chart.ContinuousSeries:
			for i := range t.XValues {
				note(t.XValues[i], t.YValues[i])
			}
		case fillSeries:
			for i := range t.X {
				note(t.X[i], t.Y0[i])
				note(t.X[i], t.Y1[i])
			}
		}
	}
	if xMin > xMax {
		xMin, xMax = 0, 1
	}
	if yMin > yMax {
		yMin, yMax = 0, 1
	}
	return xMin, xMax, yMin, yMax
}

// RenderImage renders the chart to an in-memory image for the viewer.
func RenderImage(ch *chart.Chart) (image.Image, error) {
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode rendered chart: %w", err)
	}
	return img, nil
}
