package render

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/ptheywood/json2plot/src/chartcfg"
)

func buildTestChart(t *testing.T) *chart.Chart {
	t.Helper()
	cfg := chartcfg.Default()
	cfg.Series = []chartcfg.Series{
		{Name: "a", LineWidth: 2, X: []float64{0, 1, 2}, Y: []float64{1, 2, 3}},
	}
	ch, err := BuildChart(cfg, Options{Width: 800, Height: 300})
	require.NoError(t, err)
	return ch
}

func TestSaveNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	var out bytes.Buffer

	require.NoError(t, Save(buildTestChart(t), path, SaveOptions{Out: &out}))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("\x89PNG")))
	assert.Contains(t, out.String(), "Figure saved to file: "+path)
	assert.Contains(t, out.String(), "(Default DPI)")
}

func TestSaveDeclineLeavesFileUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, os.WriteFile(path, []byte("original"), 0o644))
	var out bytes.Buffer

	err := Save(buildTestChart(t), path, SaveOptions{
		Out:     &out,
		Confirm: func(string) bool { return false },
	})
	require.NoError(t, err)

	b, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, []byte("original"), b)
	assert.Contains(t, out.String(), "Figure not saved - file protected")
}

func TestSaveConfirmAsksWithPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, os.WriteFile(path, []byte("original"), 0o644))

	var question string
	err := Save(buildTestChart(t), path, SaveOptions{
		Out: &bytes.Buffer{},
		Confirm: func(q string) bool {
			question = q
			return true
		},
	})
	require.NoError(t, err)
	assert.Contains(t, question, path)

	b, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.True(t, bytes.HasPrefix(b, []byte("\x89PNG")))
}

func TestSaveForceSkipsConfirmation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, os.WriteFile(path, []byte("original"), 0o644))

	err := Save(buildTestChart(t), path, SaveOptions{
		Out:   &bytes.Buffer{},
		Force: true,
		Confirm: func(string) bool {
			t.Fatal("confirm must not be called with --force")
			return false
		},
	})
	require.NoError(t, err)

	b, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.True(t, bytes.HasPrefix(b, []byte("\x89PNG")))
}

func TestSaveSVGByExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.svg")
	var out bytes.Buffer

	require.NoError(t, Save(buildTestChart(t), path, SaveOptions{Out: &out}))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "<svg")
}

func TestSaveReportsDPI(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	var out bytes.Buffer

	require.NoError(t, Save(buildTestChart(t), path, SaveOptions{DPI: 300, Out: &out}))
	assert.Contains(t, out.String(), "(300 DPI)")
}
