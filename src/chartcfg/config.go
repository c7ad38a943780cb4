// Package chartcfg loads chart descriptions from JSON files.
//
// A description is a single JSON object holding presentation settings
// (title, axis scales, ticks, grids, fonts, legend placement), a list of
// data series and a list of fill regions. Every key is optional and
// independently defaulted; unknown keys are ignored.
package chartcfg

// Defaults for the optional presentation keys.
const (
	DefaultLegendYOffset   = -0.15
	DefaultLegendLoc       = "best"
	DefaultLogBase         = 10.0
	DefaultLineWidth       = 2.0
	DefaultMarkerSize      = 4.0
	DefaultFontSizeTitle   = 16.0
	DefaultFontSizeLabel   = 14.0
	DefaultFontSizeLegend  = 9.0
	DefaultFontWeightTitle = 600.0
	DefaultTickLabelSize   = 13.0
)

// Config is a parsed chart description. Pointer fields and nil slices mean
// "not present in the input"; the renderer only draws what is set.
type Config struct {
	Title  *string
	XLabel *string
	YLabel *string

	LegendYOffset float64
	LegendLoc     string

	// Axis limits: one element pins only the lower bound, two elements pin
	// both. Passed through as given, no ordering requirement.
	XLim []float64
	YLim []float64

	XScale   string // "" (unset), "linear" or "log"
	YScale   string
	XLogBase float64
	YLogBase float64

	XTicks      []float64
	YTicks      []float64
	XTickLabels []string
	YTickLabels []string

	XTicksMinor bool
	YTicksMinor bool
	GridMajor   bool
	GridMinor   bool

	FontSizeTitle   float64
	FontSizeLabel   float64
	FontSizeLegend  float64
	FontWeightTitle float64
	TickLabelSize   float64

	Series []Series
	Fills  []Fill

	// Warnings collects non-fatal issues found while loading: dropped data
	// points, unrecognized boolean values, ignored malformed keys. Callers
	// decide how to surface them.
	Warnings []string
}

// Series is one plotted line. X and Y are aligned and equal length.
// Constructed once during load, immutable afterwards.
type Series struct {
	Name       string
	Color      string
	LineWidth  float64
	LineStyle  string
	Marker     string
	MarkerSize float64
	X          []float64
	Y          []float64
}

// Fill is one shaded region between two curves. X, Y0 and Y1 are aligned
// and equal length; Y0 is the lower curve.
type Fill struct {
	Color string
	X     []float64
	Y0    []float64
	Y1    []float64
}

// Default returns a Config holding the documented defaults for every key.
func Default() *Config {
	return &Config{
		LegendYOffset:   DefaultLegendYOffset,
		LegendLoc:       DefaultLegendLoc,
		XLogBase:        DefaultLogBase,
		YLogBase:        DefaultLogBase,
		FontSizeTitle:   DefaultFontSizeTitle,
		FontSizeLabel:   DefaultFontSizeLabel,
		FontSizeLegend:  DefaultFontSizeLegend,
		FontWeightTitle: DefaultFontWeightTitle,
		TickLabelSize:   DefaultTickLabelSize,
	}
}
