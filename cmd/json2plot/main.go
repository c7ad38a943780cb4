// json2plot renders a JSON chart description to an image file or an
// interactive window.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ptheywood/json2plot/src/chartcfg"
	"github.com/ptheywood/json2plot/src/logx"
	"github.com/ptheywood/json2plot/src/render"
)

var (
	verbose      bool
	force        bool
	outputFile   string
	dpi          int
	width        int
	height       int
	watch        bool
	seriesFilter []string
	seriesRegex  []string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "json2plot [flags] input_file",
		Short: "Generate a line plot from a JSON chart description",
		Long: `json2plot reads a JSON description of a 2-D chart (title, axis scales,
ticks, labeled data series, shaded regions) and renders it, either to an
image file or into an interactive window.`,
		Args:          cobra.ExactArgs(1),
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "increase verbosity of output")
	rootCmd.Flags().BoolVarP(&force, "force", "f", false, "force overwriting of files (suppress user confirmation)")
	rootCmd.Flags().StringVarP(&outputFile, "output-file", "o", "", "file to output plot to (default: show interactively)")
	rootCmd.Flags().IntVar(&dpi, "dpi", 0, "DPI for output file")
	rootCmd.Flags().IntVar(&width, "width", 0, "figure width in pixels")
	rootCmd.Flags().IntVar(&height, "height", 0, "figure height in pixels")
	rootCmd.Flags().BoolVar(&watch, "watch", false, "re-render when the input file changes (interactive mode only)")
	rootCmd.Flags().StringArrayVar(&seriesFilter, "series-filter", nil, "series name substrings to render")
	rootCmd.Flags().StringArrayVar(&seriesRegex, "series-regex", nil, "regular expressions matched against series names")

	if err := rootCmd.Execute(); err != nil {
		logx.Base().Error().Msg(err.Error())
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	level := "info"
	if verbose {
		level = "debug"
	}
	logx.Configure(logx.Config{Level: level})
	logger := logx.WithComponent("cli")

	cfg, err := chartcfg.Load(args[0])
	if err != nil {
		return err
	}
	for _, w := range cfg.Warnings {
		logger.Warn().Msg(w)
	}

	opts := render.Options{Width: width, Height: height, DPI: dpi}
	// Distinguish "flag not given" (no filtering) from "given but empty"
	// (nothing passes until matched).
	if cmd.Flags().Changed("series-filter") {
		opts.NameFilters = seriesFilter
		if opts.NameFilters == nil {
			opts.NameFilters = []string{}
		}
	}
	if cmd.Flags().Changed("series-regex") {
		opts.RegexFilters, err = render.CompilePatterns(seriesRegex)
		if err != nil {
			return err
		}
	}

	ch, err := render.BuildChart(cfg, opts)
	if err != nil {
		return err
	}

	if outputFile == "" {
		return runViewer(args[0], opts, ch, watch)
	}
	if watch {
		logger.Warn().Msg("--watch only applies to interactive mode; ignored")
	}
	return render.Save(ch, outputFile, render.SaveOptions{
		DPI:   dpi,
		Force: force,
		Confirm: func(question string) bool {
			return askYesNo(question, os.Stdin, os.Stdout)
		},
	})
}
