package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/rexdocs/cmd/rexdocs/commands"
	"git.home.luguber.info/inful/rexdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/rexdocs/internal/version"
)

func main() {
	cli := &commands.CLI{}
	parser := kong.Parse(cli,
		kong.Name("rexdocs"),
		kong.Description("Generate HTML reference pages for the RexBox SCSS design tokens."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	global := &commands.Global{Out: os.Stdout}
	if err := parser.Run(global, cli); err != nil {
		errors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
	}
}
