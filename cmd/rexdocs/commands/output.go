package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"

	"git.home.luguber.info/inful/rexdocs/internal/generator"
	"git.home.luguber.info/inful/rexdocs/internal/metrics"
)

var (
	noColor = os.Getenv("NO_COLOR") != ""

	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func style(s lipgloss.Style, text string) string {
	if noColor {
		return text
	}
	return s.Render(text)
}

// printPage writes one progress line for a written page.
func printPage(w io.Writer, p generator.PageResult) {
	mark := style(successStyle, "✓")
	if p.Result != metrics.ResultSuccess {
		mark = style(errorStyle, "✗")
	}
	_, _ = fmt.Fprintf(w, "  %s %-20s %s\n", mark, p.File,
		style(dimStyle, fmt.Sprintf("%d entries, %s", p.Entries, p.Duration.Round(100*time.Microsecond))))
}

// printSummary writes the closing block of a run.
func printSummary(w io.Writer, r *generator.Report) {
	var status string
	switch r.Outcome {
	case generator.OutcomeSuccess:
		status = style(successStyle, string(r.Outcome))
	case generator.OutcomeWarning, generator.OutcomeCanceled:
		status = style(warnStyle, string(r.Outcome))
	default:
		status = style(errorStyle, string(r.Outcome))
	}
	_, _ = fmt.Fprintf(w, "%s %s\n", style(headerStyle, "Run "+shortID(r.RunID)), status)
	_, _ = fmt.Fprintln(w, style(dimStyle, r.Summary()))
	for _, path := range r.Missing {
		_, _ = fmt.Fprintf(w, "  %s %s\n", style(warnStyle, "missing"), path)
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
