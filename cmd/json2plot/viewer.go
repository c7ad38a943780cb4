package main

import (
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"github.com/fsnotify/fsnotify"
	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/ptheywood/json2plot/src/chartcfg"
	"github.com/ptheywood/json2plot/src/logx"
	"github.com/ptheywood/json2plot/src/render"
)

// runViewer shows the rendered chart in a window and blocks until it is
// closed. With watch enabled the input file is monitored and the figure
// re-rendered on change.
func runViewer(inputPath string, opts render.Options, ch *chart.Chart, watch bool) error {
	img, err := render.RenderImage(ch)
	if err != nil {
		return err
	}

	a := app.New()
	title := "json2plot"
	if ch.Title != "" {
		title = ch.Title
	}
	w := a.NewWindow(title)

	ci := canvas.NewImageFromImage(img)
	ci.FillMode = canvas.ImageFillContain
	w.SetContent(ci)
	w.Resize(fyne.NewSize(float32(ch.Width), float32(ch.Height)))

	if watch {
		go watchAndReload(inputPath, opts, ci)
	}

	w.ShowAndRun()
	return nil
}

// watchAndReload re-renders the figure whenever the input file is written.
// A failed reload keeps the last good image on screen.
func watchAndReload(path string, opts render.Options, ci *canvas.Image) {
	logger := logx.WithComponent("watch")

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Warn().Err(err).Msg("cannot create file watcher")
		return
	}
	defer watcher.Close()

	// Watch the directory: editors often replace the file via rename, which
	// drops a watch placed on the file itself.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		logger.Warn().Err(err).Msg("cannot watch input directory")
		return
	}
	logger.Info().Str("file", path).Msg("watching for changes")

	var last time.Time
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(path) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			// Editors fire event bursts on save; collapse them.
			if time.Since(last) < 200*time.Millisecond {
				continue
			}
			last = time.Now()

			cfg, err := chartcfg.Load(path)
			if err != nil {
				logger.Warn().Err(err).Msg("reload failed; keeping last figure")
				continue
			}
			for _, w := range cfg.Warnings {
				logger.Warn().Msg(w)
			}
			ch, err := render.BuildChart(cfg, opts)
			if err != nil {
				logger.Warn().Err(err).Msg("rebuild failed; keeping last figure")
				continue
			}
			img, err := render.RenderImage(ch)
			if err != nil {
				logger.Warn().Err(err).Msg("re-render failed; keeping last figure")
				continue
			}
			ci.Image = img
			ci.Refresh()
			logger.Debug().Msg("figure refreshed")
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn().Err(err).Msg("watcher error")
		}
	}
}
