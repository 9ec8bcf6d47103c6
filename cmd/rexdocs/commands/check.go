package commands

import (
	"fmt"

	"git.home.luguber.info/inful/rexdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/rexdocs/internal/linkverify"
)

// CheckCmd implements the 'check' command.
type CheckCmd struct {
	Output string `short:"o" help:"Directory to check (overrides output.directory)"`
}

func (c *CheckCmd) Run(global *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	dir := cfg.Output.Directory
	if c.Output != "" {
		dir = c.Output
	}

	ctx, stop := signalContext()
	defer stop()

	res, err := linkverify.Verify(ctx, dir)
	if err != nil {
		return err
	}

	out := global.out()
	for _, b := range res.Broken {
		_, _ = fmt.Fprintf(out, "  %s %s: <%s> %s\n", style(errorStyle, "broken"), b.Page, b.Tag, b.URL)
	}
	summary := fmt.Sprintf("pages=%d links=%d broken=%d", res.Pages, res.Links, len(res.Broken))
	if !res.OK() {
		_, _ = fmt.Fprintln(out, style(errorStyle, summary))
		return errors.ValidationError("generated pages contain broken internal links").
			WithContext("path", dir).
			WithContext("broken", len(res.Broken)).
			Build()
	}
	_, _ = fmt.Fprintln(out, style(successStyle, summary))
	return nil
}
