// Package generator orchestrates a documentation run: it prepares the output
// directory, loads the SCSS catalog and renders every selected page to disk.
package generator

import (
	"bytes"
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/rexdocs/internal/config"
	"git.home.luguber.info/inful/rexdocs/internal/foundation/errors"
	generrors "git.home.luguber.info/inful/rexdocs/internal/generator/errors"
	"git.home.luguber.info/inful/rexdocs/internal/logfields"
	"git.home.luguber.info/inful/rexdocs/internal/metrics"
	"git.home.luguber.info/inful/rexdocs/internal/observability"
	"git.home.luguber.info/inful/rexdocs/internal/pages"
	"git.home.luguber.info/inful/rexdocs/internal/tokens"
)

// Generator renders the documentation site described by a configuration.
type Generator struct {
	cfg      *config.Config
	renderer *pages.Renderer
	recorder metrics.Recorder
	selected []string
	observer func(PageResult)
	sheet    string
}

// Option configures a Generator.
type Option func(*Generator)

// WithRecorder sets the metrics recorder. The default records nothing.
func WithRecorder(r metrics.Recorder) Option {
	return func(g *Generator) {
		if r != nil {
			g.recorder = r
		}
	}
}

// WithPages restricts a run to the named pages. Navigation still lists every
// configured page.
func WithPages(names ...string) Option {
	return func(g *Generator) { g.selected = names }
}

// WithPageObserver registers a callback invoked after each page is written.
func WithPageObserver(fn func(PageResult)) Option {
	return func(g *Generator) { g.observer = fn }
}

// WithColorSheet makes Generate finish by writing the standalone colour sheet
// to file inside the output directory. An empty name leaves it out.
func WithColorSheet(file string) Option {
	return func(g *Generator) { g.sheet = file }
}

// New validates the page selection and prepares the renderer.
func New(cfg *config.Config, opts ...Option) (*Generator, error) {
	if cfg == nil {
		return nil, errors.InternalError("generator requires a configuration").Build()
	}
	g := &Generator{cfg: cfg, recorder: metrics.NoopRecorder{}}
	for _, opt := range opts {
		opt(g)
	}
	for _, name := range g.selected {
		if _, ok := pages.Lookup(name); !ok {
			return nil, errors.ValidationError("unknown page").
				WithContext("page", name).
				WithContext("valid_pages", strings.Join(pages.Names(), ", ")).
				Build()
		}
	}
	r, err := pages.NewRenderer(cfg.Site)
	if err != nil {
		return nil, err
	}
	g.renderer = r
	return g, nil
}

// runState is the mutable state shared by the stages of one run.
type runState struct {
	report  *Report
	catalog *tokens.Catalog
}

type stage struct {
	name StageName
	fn   func(ctx context.Context, st *runState) error
}

// Generate runs prepare_output, load_sources and render_pages, followed by
// color_sheet when WithColorSheet named a file. The report is returned even
// when the run fails.
func (g *Generator) Generate(ctx context.Context) (*Report, error) {
	dir := g.cfg.Output.Directory
	stages := []stage{
		{StagePrepareOutput, g.prepareOutput},
		{StageLoadSources, g.loadSources},
		{StageRenderPages, g.renderPages},
	}
	if g.sheet != "" {
		stages = append(stages, stage{StageColorSheet, g.colorSheet(dir, g.sheet)})
	}
	return g.run(ctx, dir, stages)
}

// GenerateColorSheet writes the standalone colour sheet to path.
func (g *Generator) GenerateColorSheet(ctx context.Context, path string) (*Report, error) {
	dir, file := filepath.Split(filepath.Clean(path))
	if dir == "" {
		dir = "."
	}
	return g.run(ctx, dir, []stage{
		{StagePrepareOutput, func(_ context.Context, _ *runState) error { return ensureDir(dir) }},
		{StageLoadSources, g.loadSources},
		{StageColorSheet, g.colorSheet(dir, file)},
	})
}

func (g *Generator) colorSheet(dir, file string) func(context.Context, *runState) error {
	return func(ctx context.Context, st *runState) error {
		return g.writePage(ctx, st, dir, "theme-colors", file, func(buf *bytes.Buffer) (int, error) {
			return g.renderer.RenderColorSheet(buf, st.catalog)
		})
	}
}

func (g *Generator) run(ctx context.Context, outputDir string, stages []stage) (*Report, error) {
	runID := uuid.NewString()
	ctx = observability.WithRunID(ctx, runID)
	st := &runState{report: newReport(runID, outputDir)}

	observability.InfoContext(ctx, "Starting documentation run", logfields.Output(outputDir))
	err := g.runStages(ctx, st, stages)
	st.report.finish(g.recorder)

	if err != nil {
		observability.ErrorContext(ctx, "Documentation run failed",
			logfields.Outcome(string(st.report.Outcome)), logfields.Error(err))
		return st.report, err
	}
	observability.InfoContext(ctx, "Documentation run complete",
		logfields.Outcome(string(st.report.Outcome)),
		logfields.Entries(st.report.Entries()),
		logfields.DurationMS(float64(st.report.Duration().Milliseconds())))
	return st.report, nil
}

// runStages executes stages in order, recording timing and stopping on the first error.
func (g *Generator) runStages(ctx context.Context, st *runState, stages []stage) error {
	for _, s := range stages {
		if err := ctx.Err(); err != nil {
			return st.cancel(s.name, err)
		}
		stageCtx := observability.WithStage(ctx, string(s.name))
		observability.DebugContext(stageCtx, "Stage started")

		t0 := time.Now()
		err := s.fn(stageCtx, st)
		st.report.StageDurations[s.name] = time.Since(t0)

		if err != nil {
			if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
				return st.cancel(s.name, err)
			}
			st.report.Errors = append(st.report.Errors, err)
			return err
		}
		observability.DebugContext(stageCtx, "Stage complete",
			logfields.DurationMS(float64(st.report.StageDurations[s.name].Milliseconds())))
	}
	return nil
}

func (st *runState) cancel(name StageName, cause error) error {
	st.report.Outcome = OutcomeCanceled
	if errors.IsClassified(cause) {
		return cause
	}
	return errors.WrapError(cause, errors.CategoryRuntime, "documentation run canceled").
		WithContext("stage", string(name)).
		Warning().
		Build()
}

func ensureDir(dir string) error {
	info, err := os.Stat(dir)
	switch {
	case err == nil && !info.IsDir():
		return errors.WrapError(generrors.ErrOutputNotDirectory, errors.CategoryFileSystem, "output path is not a directory").
			WithContext("path", dir).
			Build()
	case err == nil:
		return nil
	case !stderrors.Is(err, os.ErrNotExist):
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to inspect output directory").
			WithContext("path", dir).
			Build()
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to create output directory").
			WithContext("path", dir).
			Build()
	}
	return nil
}

func (g *Generator) prepareOutput(ctx context.Context, _ *runState) error {
	dir := g.cfg.Output.Directory
	if err := ensureDir(dir); err != nil {
		return err
	}
	if !g.cfg.Output.Clean {
		return nil
	}
	return g.removeStale(ctx, dir)
}

// removeStale deletes top-level .html files that no configured page or the
// colour sheet would produce.
func (g *Generator) removeStale(ctx context.Context, dir string) error {
	keep := []string{g.cfg.Output.ColorSheetFile(), g.sheet}
	for _, d := range g.renderer.Pages() {
		keep = append(keep, d.File)
	}
	matches, err := filepath.Glob(filepath.Join(dir, "*.html"))
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "invalid output glob").Build()
	}
	for _, path := range matches {
		if slices.Contains(keep, filepath.Base(path)) {
			continue
		}
		if err := os.Remove(path); err != nil {
			return errors.WrapError(err, errors.CategoryFileSystem, "failed to remove stale page").
				WithContext("path", path).
				Build()
		}
		observability.DebugContext(ctx, "Removed stale page", logfields.Path(path))
	}
	return nil
}

func (g *Generator) loadSources(ctx context.Context, st *runState) error {
	cat, err := tokens.Load(g.cfg.Source)
	if err != nil {
		return err
	}
	st.catalog = cat
	st.report.Missing = cat.Missing
	for _, path := range cat.Missing {
		observability.WarnContext(ctx, "SCSS source not found; its sections will be empty", logfields.Source(path))
	}
	observability.InfoContext(ctx, "Loaded SCSS sources",
		logfields.Entries(cat.Colors.Len()+cat.Aliases.Len()),
		logfields.Source(g.cfg.Source.Root))
	return nil
}

// pagesToRender returns the selected pages in navigation order.
func (g *Generator) pagesToRender() []pages.Definition {
	if len(g.selected) == 0 {
		return g.renderer.Pages()
	}
	var out []pages.Definition
	for _, d := range pages.Definitions() {
		if slices.Contains(g.selected, d.Name) {
			out = append(out, d)
		}
	}
	return out
}

func (g *Generator) renderPages(ctx context.Context, st *runState) error {
	defs := g.pagesToRender()
	if len(defs) == 0 {
		return errors.WrapError(generrors.ErrNoPages, errors.CategoryValidation, "no pages to render").Build()
	}
	for _, d := range defs {
		if err := ctx.Err(); err != nil {
			g.recorder.IncPageResult(d.Name, metrics.ResultCanceled)
			return err
		}
		err := g.writePage(ctx, st, g.cfg.Output.Directory, d.Name, d.File, func(buf *bytes.Buffer) (int, error) {
			return g.renderer.Render(buf, d.Name, st.catalog)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// writePage renders one page into memory and writes it atomically.
func (g *Generator) writePage(ctx context.Context, st *runState, dir, name, file string, render func(*bytes.Buffer) (int, error)) error {
	ctx = observability.WithPage(ctx, name)
	t0 := time.Now()

	var buf bytes.Buffer
	entries, err := render(&buf)
	if err == nil {
		_, err = WriteFile(dir, file, buf.Bytes())
		if err != nil {
			err = errors.WrapError(err, errors.CategoryFileSystem, "failed to write page").
				WithContext("page", name).
				WithContext("path", filepath.Join(dir, file)).
				Build()
		}
	}
	dur := time.Since(t0)
	g.recorder.ObservePageDuration(name, dur)

	if err != nil {
		g.recorder.IncPageResult(name, metrics.ResultFailed)
		return err
	}

	result := PageResult{Name: name, File: file, Entries: entries, Duration: dur, Result: metrics.ResultSuccess}
	st.report.Pages = append(st.report.Pages, result)
	g.recorder.IncPageResult(name, metrics.ResultSuccess)
	g.recorder.SetPageEntries(name, entries)
	observability.InfoContext(ctx, "Page written",
		logfields.Output(filepath.Join(dir, file)),
		logfields.Entries(entries),
		logfields.DurationMS(float64(dur.Microseconds())/1000))
	if g.observer != nil {
		g.observer(result)
	}
	return nil
}
