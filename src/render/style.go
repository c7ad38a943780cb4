package render

import (
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ptheywood/json2plot/src/chartcfg"
)

// dashPatterns are explicit dash overrides for the named line styles. The
// symbol forms match the source configs; the word forms are accepted too.
var dashPatterns = map[string][]float64{
	"--":      {3, 3},
	"dashed":  {3, 3},
	"-.":      {2, 2, 1, 1},
	"dashdot": {2, 2, 1, 1},
	":":       {1, 1},
	"dotted":  {1, 1},
}

// DashArray returns the dash pattern for a line style, or nil for solid and
// unknown styles.
func DashArray(style string) []float64 {
	return dashPatterns[strings.ToLower(strings.TrimSpace(style))]
}

// colorNames covers the single-letter matplotlib codes plus common CSS names.
var colorNames = map[string]drawing.Color{
	"b":       {B: 255, A: 255},
	"blue":    {B: 255, A: 255},
	"g":       {G: 128, A: 255},
	"green":   {G: 128, A: 255},
	"r":       {R: 255, A: 255},
	"red":     {R: 255, A: 255},
	"c":       {G: 255, B: 255, A: 255},
	"cyan":    {G: 255, B: 255, A: 255},
	"m":       {R: 255, B: 255, A: 255},
	"magenta": {R: 255, B: 255, A: 255},
	"y":       {R: 255, G: 255, A: 255},
	"yellow":  {R: 255, G: 255, A: 255},
	"k":       {A: 255},
	"black":   {A: 255},
	"w":       {R: 255, G: 255, B: 255, A: 255},
	"white":   {R: 255, G: 255, B: 255, A: 255},
	"gray":    {R: 128, G: 128, B: 128, A: 255},
	"grey":    {R: 128, G: 128, B: 128, A: 255},
	"orange":  {R: 255, G: 165, A: 255},
	"purple":  {R: 128, B: 128, A: 255},
	"brown":   {R: 165, G: 42, B: 42, A: 255},
	"pink":    {R: 255, G: 192, B: 203, A: 255},
	"olive":   {R: 128, G: 128, A: 255},
	"navy":    {B: 128, A: 255},
	"teal":    {G: 128, B: 128, A: 255},
}

// ParseColor resolves a color name or hex string ("#rrggbb" or bare hex).
// Unknown values fall back to the given default.
func ParseColor(s string, fallback drawing.Color) drawing.Color {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return fallback
	}
	if c, ok := colorNames[s]; ok {
		return c
	}
	hex := strings.TrimPrefix(s, "#")
	if isHex(hex) {
		return drawing.ColorFromHex(hex)
	}
	return fallback
}

func isHex(s string) bool {
	if len(s) != 3 && len(s) != 6 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f':
		default:
			return false
		}
	}
	return true
}

// seriesStyle builds the go-chart style for one series: stroke color and
// width, dash pattern overrides for dashed/dash-dot/dotted styles, and point
// dots when a marker is configured.
func seriesStyle(s chartcfg.Series, idx int) chart.Style {
	col := ParseColor(s.Color, chart.GetDefaultColor(idx))
	st := chart.Style{
		StrokeColor:     col,
		StrokeWidth:     s.LineWidth,
		StrokeDashArray: DashArray(s.LineStyle),
	}
	if s.Marker != "" {
		// go-chart draws point dots, not marker glyphs; the glyph choice
		// collapses to "dots on".
		st.DotColor = col
		st.DotWidth = s.MarkerSize
	}
	return st
}
