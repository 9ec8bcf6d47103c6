// Package commands implements the rexdocs subcommands.
package commands

import (
	"context"
	stderrors "errors"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/rexdocs/internal/config"
)

// Global carries state shared by every subcommand.
type Global struct {
	Out io.Writer
}

func (g *Global) out() io.Writer {
	if g == nil || g.Out == nil {
		return os.Stdout
	}
	return g.Out
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"rexdocs.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Generate GenerateCmd `cmd:"" help:"Generate the documentation pages"`
	Colors   ColorsCmd   `cmd:"" help:"Generate only the standalone theme colour sheet"`
	Check    CheckCmd    `cmd:"" help:"Verify internal links in generated pages"`
	Init     InitCmd     `cmd:"" help:"Initialize a new configuration file"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := config.LogLevelInfo
	if c.Verbose {
		level = config.LogLevelDebug
	}
	slog.SetDefault(newLogger(os.Stderr, level, config.LogFormatText))
	return nil
}

func newLogger(w io.Writer, level config.LogLevel, format config.LogFormat) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level.SlogLevel()}
	if format == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// loadConfig reads the configuration named by --config. A missing file falls
// back to the built-in defaults. Logging settings from the file apply unless
// --verbose was given.
func loadConfig(root *CLI) (*config.Config, error) {
	cfg, err := config.Load(root.Config)
	switch {
	case stderrors.Is(err, config.ErrNotFound):
		slog.Debug("Configuration file not found, using defaults", "path", root.Config)
		cfg = config.Default()
	case err != nil:
		return nil, err
	}

	if !root.Verbose && (cfg.Logging.Level != "" || cfg.Logging.Format != "") {
		slog.SetDefault(newLogger(os.Stderr,
			config.NormalizeLogLevel(cfg.Logging.Level),
			config.NormalizeLogFormat(cfg.Logging.Format)))
	}
	slog.Debug("Configuration loaded", "config", cfg.String())
	return cfg, nil
}

// signalContext returns a context canceled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
