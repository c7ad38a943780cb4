package chartcfg

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Load reads the JSON chart description at path. It fails with
// ErrFileNotFound when the path does not reference an existing file and
// ErrInvalidFormat when the content does not decode as a JSON object.
// Everything else is best-effort: malformed values keep their defaults and
// are recorded on Config.Warnings.
func Load(path string) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFormat, path)
	}
	cfg := Default()
	cfg.fromRaw(raw)
	return cfg, nil
}

func (c *Config) fromRaw(raw map[string]any) {
	if s, ok := c.stringKey(raw, "title"); ok {
		c.Title = &s
	}
	if s, ok := c.stringKey(raw, "x_label"); ok {
		c.XLabel = &s
	}
	if s, ok := c.stringKey(raw, "y_label"); ok {
		c.YLabel = &s
	}

	if f, ok := c.numberKey(raw, "legend_y_offset"); ok {
		c.LegendYOffset = f
	}
	if s, ok := c.stringKey(raw, "legend_loc"); ok {
		c.LegendLoc = s
	}

	if v, ok := c.numberSliceKey(raw, "x_lim"); ok {
		c.XLim = v
	}
	if v, ok := c.numberSliceKey(raw, "y_lim"); ok {
		c.YLim = v
	}

	if s, ok := c.stringKey(raw, "x_scale"); ok {
		c.XScale = s
	}
	if s, ok := c.stringKey(raw, "y_scale"); ok {
		c.YScale = s
	}
	if f, ok := c.numberKey(raw, "x_log_base"); ok {
		c.XLogBase = f
	}
	if f, ok := c.numberKey(raw, "y_log_base"); ok {
		c.YLogBase = f
	}

	if v, ok := c.numberSliceKey(raw, "x_ticks"); ok {
		c.XTicks = v
	}
	if v, ok := c.numberSliceKey(raw, "y_ticks"); ok {
		c.YTicks = v
	}
	if v, ok := c.stringSliceKey(raw, "x_ticks_labels"); ok {
		c.XTickLabels = v
	}
	if v, ok := c.stringSliceKey(raw, "y_ticks_labels"); ok {
		c.YTickLabels = v
	}

	c.XTicksMinor = c.boolKey(raw, "x_ticks_minor", c.XTicksMinor)
	c.YTicksMinor = c.boolKey(raw, "y_ticks_minor", c.YTicksMinor)
	c.GridMajor = c.boolKey(raw, "grid_major", c.GridMajor)
	c.GridMinor = c.boolKey(raw, "grid_minor", c.GridMinor)

	if v, ok := raw["series"].([]any); ok {
		c.Series = c.parseSeries(v)
	}
	if v, ok := raw["fill"].([]any); ok {
		c.Fills = c.parseFills(v)
	}

	if f, ok := c.numberKey(raw, "fontsize_title"); ok {
		c.FontSizeTitle = f
	}
	if f, ok := c.numberKey(raw, "fontsize_label"); ok {
		c.FontSizeLabel = f
	}
	if f, ok := c.numberKey(raw, "fontsize_legend"); ok {
		c.FontSizeLegend = f
	}
	if f, ok := c.numberKey(raw, "fontweight_title"); ok {
		c.FontWeightTitle = f
	}
	if f, ok := c.numberKey(raw, "labelsize_tick"); ok {
		c.TickLabelSize = f
	}
}

func (c *Config) parseSeries(raw []any) []Series {
	out := make([]Series, 0, len(raw))
	for i, entry := range raw {
		m, ok := entry.(map[string]any)
		if !ok {
			c.warnf("series[%d]: entry is not an object; dropped", i)
			continue
		}
		s := Series{LineWidth: DefaultLineWidth, MarkerSize: DefaultMarkerSize}
		if v, ok := m["name"].(string); ok {
			s.Name = v
		}
		if v, ok := m["color"].(string); ok {
			s.Color = v
		}
		if v, ok := m["linewidth"].(float64); ok {
			s.LineWidth = v
		}
		if v, ok := m["linestyle"].(string); ok {
			s.LineStyle = v
		}
		if v, ok := m["marker"].(string); ok {
			s.Marker = v
		}
		if v, ok := m["marker_size"].(float64); ok {
			s.MarkerSize = v
		}
		if data, ok := m["data"].([]any); ok {
			for j, p := range data {
				if !appendPoint(&s, p) {
					c.warnf("series[%d] %q: dropped data point %d: unsupported shape", i, s.Name, j)
				}
			}
		}
		out = append(out, s)
	}
	return out
}

// appendPoint normalizes one raw data point onto the series:
// [x, y] appends both, [y] and bare numbers take the next index as x.
func appendPoint(s *Series, p any) bool {
	switch pt := p.(type) {
	case []any:
		switch len(pt) {
		case 2:
			x, okx := asFloat(pt[0])
			y, oky := asFloat(pt[1])
			if okx && oky {
				s.X = append(s.X, x)
				s.Y = append(s.Y, y)
				return true
			}
		case 1:
			if y, ok := asFloat(pt[0]); ok {
				s.X = append(s.X, float64(len(s.X)))
				s.Y = append(s.Y, y)
				return true
			}
		}
	case float64:
		s.X = append(s.X, float64(len(s.X)))
		s.Y = append(s.Y, pt)
		return true
	}
	return false
}

func (c *Config) parseFills(raw []any) []Fill {
	out := make([]Fill, 0, len(raw))
	for i, entry := range raw {
		m, ok := entry.(map[string]any)
		if !ok {
			c.warnf("fill[%d]: entry is not an object; dropped", i)
			continue
		}
		var f Fill
		if v, ok := m["color"].(string); ok {
			f.Color = v
		}
		if data, ok := m["data"].([]any); ok {
			for j, p := range data {
				if !appendFillPoint(&f, p) {
					c.warnf("fill[%d]: dropped data point %d: unsupported shape", i, j)
				}
			}
		}
		out = append(out, f)
	}
	return out
}

// appendFillPoint normalizes one raw fill point: [x, y0, y1] is kept as-is,
// [x, y1] expands to (x, 0, y1).
func appendFillPoint(f *Fill, p any) bool {
	pt, ok := p.([]any)
	if !ok {
		return false
	}
	switch len(pt) {
	case 3:
		x, okx := asFloat(pt[0])
		y0, ok0 := asFloat(pt[1])
		y1, ok1 := asFloat(pt[2])
		if okx && ok0 && ok1 {
			f.X = append(f.X, x)
			f.Y0 = append(f.Y0, y0)
			f.Y1 = append(f.Y1, y1)
			return true
		}
	case 2:
		x, okx := asFloat(pt[0])
		y1, ok1 := asFloat(pt[1])
		if okx && ok1 {
			f.X = append(f.X, x)
			f.Y0 = append(f.Y0, 0)
			f.Y1 = append(f.Y1, y1)
			return true
		}
	}
	return false
}

func (c *Config) warnf(format string, args ...any) {
	c.Warnings = append(c.Warnings, fmt.Sprintf(format, args...))
}

// stringKey reads a string-valued key. Empty strings count as absent.
func (c *Config) stringKey(raw map[string]any, key string) (string, bool) {
	v, ok := raw[key]
	if !ok || v == nil {
		return "", false
	}
	s, ok := v.(string)
	if !ok {
		c.warnf("%s: expected a string, got %T; using default", key, v)
		return "", false
	}
	if s == "" {
		return "", false
	}
	return s, true
}

func (c *Config) numberKey(raw map[string]any, key string) (float64, bool) {
	v, ok := raw[key]
	if !ok || v == nil {
		return 0, false
	}
	f, ok := v.(float64)
	if !ok {
		c.warnf("%s: expected a number, got %T; using default", key, v)
		return 0, false
	}
	return f, true
}

// numberSliceKey reads a non-empty array of numbers. Empty arrays count as
// absent; arrays with non-numeric members are ignored with a warning.
func (c *Config) numberSliceKey(raw map[string]any, key string) ([]float64, bool) {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil, false
	}
	arr, ok := v.([]any)
	if !ok {
		c.warnf("%s: expected an array, got %T; using default", key, v)
		return nil, false
	}
	if len(arr) == 0 {
		return nil, false
	}
	out := make([]float64, 0, len(arr))
	for _, e := range arr {
		f, ok := asFloat(e)
		if !ok {
			c.warnf("%s: non-numeric member %v; key ignored", key, e)
			return nil, false
		}
		out = append(out, f)
	}
	return out, true
}

func (c *Config) stringSliceKey(raw map[string]any, key string) ([]string, bool) {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil, false
	}
	arr, ok := v.([]any)
	if !ok {
		c.warnf("%s: expected an array, got %T; using default", key, v)
		return nil, false
	}
	if len(arr) == 0 {
		return nil, false
	}
	out := make([]string, 0, len(arr))
	for _, e := range arr {
		s, ok := e.(string)
		if !ok {
			c.warnf("%s: non-string member %v; key ignored", key, e)
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

// boolKey accepts JSON booleans, the integers 0/1 and the strings
// "true"/"false" (any case) or "1"/"0". Anything else keeps the default and
// records a warning.
func (c *Config) boolKey(raw map[string]any, key string, def bool) bool {
	v, ok := raw[key]
	if !ok || v == nil {
		return def
	}
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		if t == 1 {
			return true
		}
		if t == 0 {
			return false
		}
	case string:
		switch strings.ToLower(t) {
		case "true", "1":
			return true
		case "false", "0":
			return false
		}
	}
	c.warnf("%s: unrecognized boolean value %v; using %v", key, v, def)
	return def
}

func asFloat(v any) (float64, bool) {
	f, ok := v.(float64)
	return f, ok
}
