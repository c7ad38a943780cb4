package chartcfg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chart.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `{}`))
	require.NoError(t, err)

	assert.Nil(t, cfg.Title)
	assert.Nil(t, cfg.XLabel)
	assert.Nil(t, cfg.YLabel)
	assert.Equal(t, -0.15, cfg.LegendYOffset)
	assert.Equal(t, "best", cfg.LegendLoc)
	assert.Nil(t, cfg.XLim)
	assert.Nil(t, cfg.YLim)
	assert.Empty(t, cfg.XScale)
	assert.Empty(t, cfg.YScale)
	assert.Equal(t, 10.0, cfg.XLogBase)
	assert.Equal(t, 10.0, cfg.YLogBase)
	assert.Nil(t, cfg.XTicks)
	assert.Nil(t, cfg.YTicks)
	assert.Nil(t, cfg.XTickLabels)
	assert.Nil(t, cfg.YTickLabels)
	assert.False(t, cfg.XTicksMinor)
	assert.False(t, cfg.YTicksMinor)
	assert.False(t, cfg.GridMajor)
	assert.False(t, cfg.GridMinor)
	assert.Equal(t, 16.0, cfg.FontSizeTitle)
	assert.Equal(t, 14.0, cfg.FontSizeLabel)
	assert.Equal(t, 9.0, cfg.FontSizeLegend)
	assert.Equal(t, 600.0, cfg.FontWeightTitle)
	assert.Equal(t, 13.0, cfg.TickLabelSize)
	assert.Nil(t, cfg.Series)
	assert.Nil(t, cfg.Fills)
	assert.Empty(t, cfg.Warnings)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.ErrorIs(t, err, ErrFileNotFound)
}

func TestLoadInvalidJSON(t *testing.T) {
	_, err := Load(writeConfig(t, `not json`))
	require.ErrorIs(t, err, ErrInvalidFormat)
}

func TestLoadTopLevelArrayIsInvalid(t *testing.T) {
	_, err := Load(writeConfig(t, `[1, 2, 3]`))
	require.ErrorIs(t, err, ErrInvalidFormat)
}

func TestSeriesPointNormalization(t *testing.T) {
	cfg, err := Load(writeConfig(t, `{"series": [{"name": "a", "data": [[0, 1], [1, 2], 2]}]}`))
	require.NoError(t, err)
	require.Len(t, cfg.Series, 1)

	s := cfg.Series[0]
	assert.Equal(t, []float64{0, 1, 2}, s.X)
	assert.Equal(t, []float64{1, 2, 2}, s.Y)
}

func TestSeriesSingletonTakesNextIndex(t *testing.T) {
	cfg, err := Load(writeConfig(t, `{"series": [{"data": [[5], [7], [2, 9]]}]}`))
	require.NoError(t, err)
	require.Len(t, cfg.Series, 1)

	s := cfg.Series[0]
	assert.Equal(t, []float64{0, 1, 2}, s.X)
	assert.Equal(t, []float64{5, 7, 9}, s.Y)
}

func TestSeriesSkipsMalformedPointsWithWarnings(t *testing.T) {
	cfg, err := Load(writeConfig(t, `{"series": [{"name": "a", "data": [[1, 2, 3], "oops", [0, 1]]}]}`))
	require.NoError(t, err)
	require.Len(t, cfg.Series, 1)

	s := cfg.Series[0]
	assert.Equal(t, []float64{0}, s.X)
	assert.Equal(t, []float64{1}, s.Y)
	assert.Len(t, cfg.Warnings, 2)
	assert.Contains(t, cfg.Warnings[0], "dropped data point 0")
	assert.Contains(t, cfg.Warnings[1], "dropped data point 1")
}

func TestSeriesStyleFields(t *testing.T) {
	cfg, err := Load(writeConfig(t, `{"series": [
		{"name": "styled", "color": "#ff0000", "linewidth": 1.5, "linestyle": "--", "marker": "o", "marker_size": 6, "data": [0]},
		{"data": [0]}
	]}`))
	require.NoError(t, err)
	require.Len(t, cfg.Series, 2)

	styled := cfg.Series[0]
	assert.Equal(t, "styled", styled.Name)
	assert.Equal(t, "#ff0000", styled.Color)
	assert.Equal(t, 1.5, styled.LineWidth)
	assert.Equal(t, "--", styled.LineStyle)
	assert.Equal(t, "o", styled.Marker)
	assert.Equal(t, 6.0, styled.MarkerSize)

	plain := cfg.Series[1]
	assert.Empty(t, plain.Name)
	assert.Equal(t, 2.0, plain.LineWidth)
	assert.Equal(t, 4.0, plain.MarkerSize)
}

func TestFillNormalization(t *testing.T) {
	cfg, err := Load(writeConfig(t, `{"fill": [{"color": "g", "data": [[0, 1, 2], [1, 3]]}]}`))
	require.NoError(t, err)
	require.Len(t, cfg.Fills, 1)

	f := cfg.Fills[0]
	assert.Equal(t, "g", f.Color)
	assert.Equal(t, []float64{0, 1}, f.X)
	assert.Equal(t, []float64{1, 0}, f.Y0)
	assert.Equal(t, []float64{2, 3}, f.Y1)
}

func TestFillSkipsMalformedPoints(t *testing.T) {
	cfg, err := Load(writeConfig(t, `{"fill": [{"data": [[0], 5, [1, 2, 3, 4], [0, 1]]}]}`))
	require.NoError(t, err)
	require.Len(t, cfg.Fills, 1)

	f := cfg.Fills[0]
	assert.Equal(t, []float64{0}, f.X)
	assert.Len(t, cfg.Warnings, 3)
}

func TestBooleanParsing(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		want    bool
		warning bool
	}{
		{"integer one", `1`, true, false},
		{"string True", `"True"`, true, false},
		{"json true", `true`, true, false},
		{"json false", `false`, false, false},
		{"string false", `"false"`, false, false},
		{"integer zero", `0`, false, false},
		{"unrecognized", `"yes"`, false, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, `{"grid_major": `+tc.raw+`}`))
			require.NoError(t, err)
			assert.Equal(t, tc.want, cfg.GridMajor)
			if tc.warning {
				assert.NotEmpty(t, cfg.Warnings)
			} else {
				assert.Empty(t, cfg.Warnings)
			}
		})
	}
}

func TestEmptyValuesFallBackToDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `{"legend_loc": "", "x_ticks": [], "x_ticks_labels": [], "title": ""}`))
	require.NoError(t, err)

	assert.Equal(t, "best", cfg.LegendLoc)
	assert.Nil(t, cfg.XTicks)
	assert.Nil(t, cfg.XTickLabels)
	assert.Nil(t, cfg.Title)
}

func TestLimitsAcceptedWhenNonEmpty(t *testing.T) {
	cfg, err := Load(writeConfig(t, `{"x_lim": [5], "y_lim": [0, 10]}`))
	require.NoError(t, err)

	assert.Equal(t, []float64{5}, cfg.XLim)
	assert.Equal(t, []float64{0, 10}, cfg.YLim)
}

func TestScaleAndTicksKeys(t *testing.T) {
	cfg, err := Load(writeConfig(t, `{
		"x_scale": "log", "x_log_base": 2,
		"y_ticks": [0, 5, 10], "y_ticks_labels": ["lo", "mid", "hi"]
	}`))
	require.NoError(t, err)

	assert.Equal(t, "log", cfg.XScale)
	assert.Equal(t, 2.0, cfg.XLogBase)
	assert.Equal(t, []float64{0, 5, 10}, cfg.YTicks)
	assert.Equal(t, []string{"lo", "mid", "hi"}, cfg.YTickLabels)
}
