package commands

import (
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/rexdocs/internal/config"
	"git.home.luguber.info/inful/rexdocs/internal/generator"
	"git.home.luguber.info/inful/rexdocs/internal/metrics"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	Output string   `short:"o" help:"Output directory (overrides output.directory)"`
	Page   []string `name:"page" help:"Render only the named page; repeatable"`
}

func (g *GenerateCmd) Run(global *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	if g.Output != "" {
		cfg.Output.Directory = g.Output
	}

	out := global.out()
	rec := metrics.NewPrometheusRecorder(nil)
	opts := []generator.Option{
		generator.WithRecorder(rec),
		generator.WithPages(g.Page...),
		generator.WithPageObserver(func(p generator.PageResult) { printPage(out, p) }),
	}
	if len(g.Page) == 0 {
		opts = append(opts, generator.WithColorSheet(cfg.Output.ColorSheetFile()))
	}
	gen, err := generator.New(cfg, opts...)
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	_, _ = fmt.Fprintf(out, "Generating %s -> %s\n", cfg.Source.Root, cfg.Output.Directory)
	report, err := gen.Generate(ctx)
	if report != nil {
		printSummary(out, report)
	}
	writeMetrics(cfg, rec)
	return err
}

// writeMetrics flushes the recorder to the configured textfile. Failures are
// logged only; metrics never fail a run.
func writeMetrics(cfg *config.Config, rec *metrics.PrometheusRecorder) {
	if cfg.Metrics.Textfile == "" {
		return
	}
	if err := rec.WriteTextfile(cfg.Metrics.Textfile); err != nil {
		slog.Warn("Failed to write metrics textfile", "path", cfg.Metrics.Textfile, "error", err)
		return
	}
	slog.Debug("Metrics written", "path", cfg.Metrics.Textfile)
}
