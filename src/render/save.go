package render

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
)

// SaveOptions controls writing a rendered figure to disk.
type SaveOptions struct {
	DPI   int
	Force bool

	// Confirm is asked before overwriting an existing file when Force is
	// not set. nil declines.
	Confirm func(question string) bool

	// Out receives the user-facing saved/not-saved messages. Defaults to
	// os.Stdout.
	Out io.Writer
}

// Save renders the chart and writes it to path. The image format follows
// the file extension (.svg renders vector output, everything else PNG).
// When the target exists and neither the force flag nor the confirmation
// allows overwriting, the file is left untouched and no error is returned.
func Save(ch *chart.Chart, path string, o SaveOptions) error {
	out := o.Out
	if out == nil {
		out = os.Stdout
	}

	if fileExists(path) && !o.Force {
		ok := false
		if o.Confirm != nil {
			ok = o.Confirm(fmt.Sprintf("The file %s exists, do you wish to overwrite?", path))
		}
		if !ok {
			fmt.Fprintln(out, "Figure not saved - file protected")
			return nil
		}
	}

	if o.DPI > 0 {
		ch.DPI = float64(o.DPI)
	}
	provider := chart.PNG
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		provider = chart.SVG
	}
	var buf bytes.Buffer
	if err := ch.Render(provider, &buf); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	dpiLabel := "Default"
	if o.DPI > 0 {
		dpiLabel = strconv.Itoa(o.DPI)
	}
	fmt.Fprintf(out, "Figure saved to file: %s (%s DPI)\n", path, dpiLabel)
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
