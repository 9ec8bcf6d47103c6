package commands

import (
	"fmt"
	"path/filepath"

	"git.home.luguber.info/inful/rexdocs/internal/config"
	"git.home.luguber.info/inful/rexdocs/internal/generator"
	"git.home.luguber.info/inful/rexdocs/internal/metrics"
)

// ColorsCmd implements the 'colors' command.
type ColorsCmd struct {
	Output string `short:"o" help:"Colour sheet file (default: output.directory/output.color_sheet)"`
}

func (c *ColorsCmd) Run(global *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	path := c.Output
	if path == "" {
		file := cfg.Output.ColorSheetFile()
		if file == "" {
			file = config.DefaultColorSheet
		}
		path = filepath.Join(cfg.Output.Directory, file)
	}

	out := global.out()
	rec := metrics.NewPrometheusRecorder(nil)
	gen, err := generator.New(cfg,
		generator.WithRecorder(rec),
		generator.WithPageObserver(func(p generator.PageResult) { printPage(out, p) }),
	)
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	_, _ = fmt.Fprintf(out, "Generating colour sheet -> %s\n", path)
	report, err := gen.GenerateColorSheet(ctx, path)
	if report != nil {
		printSummary(out, report)
	}
	writeMetrics(cfg, rec)
	return err
}
