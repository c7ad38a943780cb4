package render

import (
	"fmt"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/ptheywood/json2plot/src/chartcfg"
	"github.com/ptheywood/json2plot/src/logx"
)

// axisSpec is the per-axis slice of a chart description plus the data extent
// of everything drawn against that axis.
type axisSpec struct {
	name      string // "x" or "y", used in log messages
	scale     string
	logBase   float64
	lim       []float64
	ticks     []float64
	labels    []string
	gridMajor bool
	gridMinor bool // already coupled: minor-tick flag AND minor-grid flag
	dataMin   float64
	dataMax   float64
}

// resolvedAxis holds everything the chart assembly needs for one axis.
type resolvedAxis struct {
	rng        chart.Range
	ticks      []chart.Tick
	gridLines  []chart.GridLine
	majorStyle chart.Style
	minorStyle chart.Style
}

// logRange projects values logarithmically, modeled on go-chart's
// LogarithmicRange but carrying an explicit base for tick generation. The
// projection itself is base-independent.
type logRange struct {
	Min    float64
	Max    float64
	Base   float64
	Domain int
}

func (r logRange) String() string {
	return fmt.Sprintf("LogRange [%.2f,%.2f] base %g => %d", r.Min, r.Max, r.Base, r.Domain)
}

func (r logRange) GetMin() float64 { return r.Min }

func (r *logRange) SetMin(min float64) { r.Min = min }

func (r logRange) GetMax() float64 { return r.Max }

func (r *logRange) SetMax(max float64) { r.Max = max }

func (r logRange) GetDelta() float64 { return r.Max - r.Min }

func (r logRange) GetDomain() int { return r.Domain }

func (r *logRange) SetDomain(domain int) { r.Domain = domain }

func (r logRange) IsDescending() bool { return false }

func (r logRange) IsZero() bool {
	return (r.Min == 0 || math.IsNaN(r.Min)) && (r.Max == 0 || math.IsNaN(r.Max))
}

// Translate maps a value into pixel space along the log-scaled axis.
func (r logRange) Translate(value float64) int {
	if value <= 0 || r.Min <= 0 || r.Max <= r.Min {
		return 0
	}
	if value < r.Min {
		value = r.Min
	}
	ratio := math.Log(value/r.Min) / math.Log(r.Max/r.Min)
	return int(math.Ceil(ratio * float64(r.Domain)))
}

// resolveAxis turns an axisSpec into a range, ticks and grid lines.
func resolveAxis(spec axisSpec) resolvedAxis {
	isLog := false
	switch spec.scale {
	case "", "linear":
	case "log":
		isLog = true
	default:
		logx.WithComponent("render").Warn().
			Str("axis", spec.name).
			Str("scale", spec.scale).
			Msg("unsupported axis scale; keeping linear")
	}

	if spec.labels != nil && spec.ticks == nil {
		logx.WithComponent("render").Warn().
			Str("axis", spec.name).
			Msg("tick labels given without tick positions; labels ignored")
	}

	min, max := axisBounds(spec, isLog)
	var rng chart.Range
	if isLog {
		rng = &logRange{Min: min, Max: max, Base: spec.logBase}
	} else {
		rng = &chart.ContinuousRange{Min: min, Max: max, Descending: len(spec.lim) >= 2 && spec.lim[1] < spec.lim[0]}
	}

	ticks := resolveTicks(spec, isLog, min, max)
	out := resolvedAxis{
		rng:        rng,
		ticks:      ticks,
		majorStyle: chart.Style{Hidden: true},
		minorStyle: chart.Style{Hidden: true},
	}
	if spec.gridMajor {
		out.majorStyle = chart.Style{StrokeColor: chart.ColorAlternateGray, StrokeWidth: 1.0}
		for _, tk := range ticks {
			out.gridLines = append(out.gridLines, chart.GridLine{Value: tk.Value})
		}
	}
	if spec.gridMinor {
		out.minorStyle = chart.Style{StrokeColor: chart.ColorAlternateGray.WithAlpha(100), StrokeWidth: 1.0}
		for _, v := range minorGridValues(ticks, isLog) {
			out.gridLines = append(out.gridLines, chart.GridLine{IsMinor: true, Value: v})
		}
	}
	return out
}

// axisBounds resolves the final axis range: nice bounds around the data
// extent, overridden by explicit limits. A one-element limit pins only the
// lower bound. On a log scale a lower bound of exactly 0 becomes 1, since a
// log scale cannot represent 0.
func axisBounds(spec axisSpec, isLog bool) (float64, float64) {
	min, max := niceAxisBounds(spec.dataMin, spec.dataMax)
	if len(spec.lim) >= 1 {
		min = spec.lim[0]
		if isLog && min == 0 {
			min = 1
		}
	}
	if len(spec.lim) >= 2 {
		max = spec.lim[1]
		if max < min {
			// Inverted limits are passed through as a descending axis.
			min, max = max, min
		}
	}
	if isLog && min <= 0 {
		if spec.dataMin > 0 {
			min = spec.dataMin
		} else {
			min = 1
		}
	}
	if max <= min {
		max = min + 1
	}
	return min, max
}

func resolveTicks(spec axisSpec, isLog bool, min, max float64) []chart.Tick {
	if spec.ticks != nil {
		ticks := make([]chart.Tick, 0, len(spec.ticks))
		for i, v := range spec.ticks {
			label := formatTick(v)
			if i < len(spec.labels) {
				label = spec.labels[i]
			}
			ticks = append(ticks, chart.Tick{Value: v, Label: label})
		}
		return ticks
	}
	if isLog {
		return logTicks(min, max, spec.logBase)
	}
	return niceTicks(min, max, 6)
}

// logTicks places ticks at integer powers of base covering [min, max].
func logTicks(min, max, base float64) []chart.Tick {
	if base <= 1 {
		base = chartcfg.DefaultLogBase
	}
	if min <= 0 {
		min = 1
	}
	if max <= min {
		max = min * base
	}
	lo := math.Floor(snapToInt(math.Log(min) / math.Log(base)))
	hi := math.Ceil(snapToInt(math.Log(max) / math.Log(base)))
	ticks := []chart.Tick{}
	for p := lo; p <= hi; p++ {
		v := math.Pow(base, p)
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v)})
		if len(ticks) > 24 {
			break
		}
	}
	return ticks
}

// snapToInt absorbs float error in log-of-power computations so exact
// powers of the base do not gain a spurious extra tick.
func snapToInt(v float64) float64 {
	if r := math.Round(v); math.Abs(v-r) < 1e-9 {
		return r
	}
	return v
}

// minorGridValues returns one grid position between each pair of adjacent
// ticks: the midpoint on a linear axis, the geometric midpoint on a log axis.
func minorGridValues(ticks []chart.Tick, isLog bool) []float64 {
	if len(ticks) < 2 {
		return nil
	}
	out := make([]float64, 0, len(ticks)-1)
	for i := 1; i < len(ticks); i++ {
		a, b := ticks[i-1].Value, ticks[i].Value
		if isLog {
			if a > 0 && b > 0 {
				out = append(out, math.Sqrt(a*b))
			}
			continue
		}
		out = append(out, (a+b)/2)
	}
	return out
}

// niceAxisBounds pads the data extent by 5% on both sides and rounds to
// increments matching the span's order of magnitude.
func niceAxisBounds(min, max float64) (float64, float64) {
	if math.IsNaN(min) || math.IsNaN(max) {
		return min, max
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	pad := span * 0.05
	if pad <= 0 {
		pad = 1
	}
	a := min - pad
	b := max + pad
	mag := math.Pow(10, math.Floor(math.Log10(span)))
	if !math.IsInf(mag, 0) && mag > 0 {
		a = math.Floor(a/mag) * mag
		b = math.Ceil(b/mag) * mag
	}
	return a, b
}

// niceTicks generates up to n tick marks between [min, max] using nice
// increments (1, 2, 2.5, 5, 10 scaled by powers of ten).
func niceTicks(min, max float64, n int) []chart.Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	mag := math.Pow(10, math.Floor(math.Log10((max-min)/float64(n-1))))
	candidates := []float64{1, 2, 2.5, 5, 10}
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range candidates {
		step := c * mag
		count := math.Ceil((max - min) / step)
		if count < 2 {
			count = 2
		}
		score := math.Abs(count - float64(n))
		if score < bestScore {
			bestScore = score
			bestStep = step
		}
	}
	start := math.Floor(min/bestStep) * bestStep
	end := math.Ceil(max/bestStep) * bestStep
	ticks := []chart.Tick{}
	for v := start; v <= end+bestStep/2; v += bestStep {
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v)})
		if len(ticks) > n+2 {
			break
		}
	}
	return ticks
}

func formatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 100:
		return fmt.Sprintf("%.0f", v)
	case av >= 10:
		return fmt.Sprintf("%.1f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
