package generator

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/rexdocs/internal/config"
	"git.home.luguber.info/inful/rexdocs/internal/foundation/errors"
	generrors "git.home.luguber.info/inful/rexdocs/internal/generator/errors"
	"git.home.luguber.info/inful/rexdocs/internal/metrics"
)

type testRecorder struct {
	pageResults  map[string]map[metrics.ResultLabel]int
	pageEntries  map[string]int
	runOutcomes  map[string]int
	pageObserved int
	runObserved  int
	missing      int
}

func newTestRecorder() *testRecorder {
	return &testRecorder{
		pageResults: map[string]map[metrics.ResultLabel]int{},
		pageEntries: map[string]int{},
		runOutcomes: map[string]int{},
	}
}

func (t *testRecorder) ObservePageDuration(string, time.Duration) { t.pageObserved++ }
func (t *testRecorder) IncPageResult(page string, result metrics.ResultLabel) {
	m, ok := t.pageResults[page]
	if !ok {
		m = map[metrics.ResultLabel]int{}
		t.pageResults[page] = m
	}
	m[result]++
}
func (t *testRecorder) SetPageEntries(page string, n int) { t.pageEntries[page] = n }
func (t *testRecorder) ObserveRunDuration(time.Duration)  { t.runObserved++ }
func (t *testRecorder) IncRunOutcome(outcome string)      { t.runOutcomes[outcome]++ }
func (t *testRecorder) SetMissingSources(n int)           { t.missing = n }

func writeSource(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

// fullSource writes every configured source so a run has nothing missing.
func fullSource(t *testing.T, root string) {
	t.Helper()
	writeSource(t, root, config.DefaultColors, "$white: #FFFFFF;\n$primary-500: #3B82F6;\n")
	writeSource(t, root, config.DefaultTheme, "$primary: $primary-500;\n")
	writeSource(t, root, config.DefaultBreakpoints, `("md": 768px)`)
	writeSource(t, root, config.DefaultTypography, "$font-size-base: rem(16);\n")
	writeSource(t, root, config.DefaultSpacing, "$spacer: 4px;\n")
	writeSource(t, root, config.DefaultFonts, "$font-basic: sans-serif;\n")
	writeSource(t, root, config.DefaultBorders, ".border { }")
	writeSource(t, root, config.DefaultStacks, ".vstack { }")
	writeSource(t, root, config.DefaultVerticalRule, ".vr { }")
	for _, name := range []string{"rounded", "border-radius", "backdrop", "button-hover", "clearfix", "ellipsis", "transform", "transition"} {
		writeSource(t, root, "mixins/_"+name+".scss", "@mixin "+name+" {\n}\n")
	}
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Source.Root = filepath.Join(t.TempDir(), "rexbox")
	cfg.Output.Directory = filepath.Join(t.TempDir(), "docs")
	return cfg
}

func TestGenerateWritesEveryPage(t *testing.T) {
	cfg := testConfig(t)
	fullSource(t, cfg.Source.Root)
	rec := newTestRecorder()
	var observed []string

	g, err := New(cfg, WithRecorder(rec), WithPageObserver(func(r PageResult) { observed = append(observed, r.Name) }))
	require.NoError(t, err)

	report, err := g.Generate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, OutcomeSuccess, report.Outcome)
	assert.NotEmpty(t, report.RunID)
	assert.Empty(t, report.Missing)
	assert.Equal(t, config.DefaultPages, observed)
	require.Len(t, report.Pages, len(config.DefaultPages))
	for _, p := range report.Pages {
		data, readErr := os.ReadFile(filepath.Join(cfg.Output.Directory, p.File))
		require.NoError(t, readErr, p.File)
		assert.Contains(t, string(data), "<!DOCTYPE html>")
		assert.Equal(t, 1, rec.pageResults[p.Name][metrics.ResultSuccess])
	}
	assert.Equal(t, 8, rec.pageEntries["mixins"])
	assert.Equal(t, 1, rec.runOutcomes["success"])
	assert.Equal(t, 1, rec.runObserved)
	assert.Contains(t, report.StageDurations, StageRenderPages)
	assert.Contains(t, report.Summary(), "outcome=success")
}

func TestGenerateMissingSourcesIsWarning(t *testing.T) {
	cfg := testConfig(t)
	rec := newTestRecorder()
	g, err := New(cfg, WithRecorder(rec))
	require.NoError(t, err)

	report, err := g.Generate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, OutcomeWarning, report.Outcome)
	assert.NotEmpty(t, report.Missing)
	assert.Equal(t, len(report.Missing), rec.missing)
	assert.Len(t, report.Pages, len(config.DefaultPages))
	assert.FileExists(t, filepath.Join(cfg.Output.Directory, "colors.html"))
}

func TestGenerateSelectedPages(t *testing.T) {
	cfg := testConfig(t)
	g, err := New(cfg, WithPages("spacing", "colors"))
	require.NoError(t, err)

	report, err := g.Generate(context.Background())
	require.NoError(t, err)

	require.Len(t, report.Pages, 2)
	assert.Equal(t, "colors", report.Pages[0].Name)
	assert.Equal(t, "spacing", report.Pages[1].Name)
	assert.NoFileExists(t, filepath.Join(cfg.Output.Directory, "fonts.html"))
}

func TestNewRejectsUnknownPage(t *testing.T) {
	_, err := New(testConfig(t), WithPages("buttons"))
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryValidation))
}

func TestGenerateCanceled(t *testing.T) {
	cfg := testConfig(t)
	rec := newTestRecorder()
	g, err := New(cfg, WithRecorder(rec))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	report, err := g.Generate(ctx)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, context.Canceled))
	assert.Equal(t, OutcomeCanceled, report.Outcome)
	assert.Empty(t, report.Pages)
	assert.Equal(t, 1, rec.runOutcomes["canceled"])
}

func TestGenerateCanceledBetweenPages(t *testing.T) {
	cfg := testConfig(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, err := New(cfg, WithPageObserver(func(PageResult) { cancel() }))
	require.NoError(t, err)

	report, err := g.Generate(ctx)
	require.Error(t, err)
	assert.Equal(t, OutcomeCanceled, report.Outcome)
	assert.Len(t, report.Pages, 1)
}

func TestGenerateOutputIsFile(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(cfg.Output.Directory, []byte("x"), 0o600))

	g, err := New(cfg)
	require.NoError(t, err)
	report, err := g.Generate(context.Background())
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, generrors.ErrOutputNotDirectory))
	assert.True(t, errors.HasCategory(err, errors.CategoryFileSystem))
	assert.Equal(t, OutcomeFailed, report.Outcome)
}

func TestGenerateCleanRemovesStalePages(t *testing.T) {
	cfg := testConfig(t)
	cfg.Output.Clean = true
	require.NoError(t, os.MkdirAll(cfg.Output.Directory, 0o750))
	stale := filepath.Join(cfg.Output.Directory, "buttons.html")
	sheet := filepath.Join(cfg.Output.Directory, cfg.Output.ColorSheetFile())
	other := filepath.Join(cfg.Output.Directory, "notes.txt")
	for _, p := range []string{stale, sheet, other} {
		require.NoError(t, os.WriteFile(p, []byte("old"), 0o600))
	}

	g, err := New(cfg)
	require.NoError(t, err)
	_, err = g.Generate(context.Background())
	require.NoError(t, err)

	assert.NoFileExists(t, stale)
	assert.FileExists(t, sheet)
	assert.FileExists(t, other)
}

func TestGenerateColorSheet(t *testing.T) {
	cfg := testConfig(t)
	fullSource(t, cfg.Source.Root)
	path := filepath.Join(t.TempDir(), "out", "sheet.html")

	g, err := New(cfg)
	require.NoError(t, err)
	report, err := g.GenerateColorSheet(context.Background(), path)
	require.NoError(t, err)

	require.Len(t, report.Pages, 1)
	assert.Equal(t, "sheet.html", report.Pages[0].File)
	// primary alias, primary scale entry and two palette swatches
	assert.Equal(t, 4, report.Pages[0].Entries)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Theme Colors")
	assert.Contains(t, report.StageDurations, StageColorSheet)
}

func TestGenerateWithColorSheetIsOneRun(t *testing.T) {
	cfg := testConfig(t)
	fullSource(t, cfg.Source.Root)
	rec := newTestRecorder()

	g, err := New(cfg, WithRecorder(rec), WithColorSheet("palette.html"))
	require.NoError(t, err)
	report, err := g.Generate(context.Background())
	require.NoError(t, err)

	require.Len(t, report.Pages, len(config.DefaultPages)+1)
	last := report.Pages[len(report.Pages)-1]
	assert.Equal(t, "palette.html", last.File)
	assert.FileExists(t, filepath.Join(cfg.Output.Directory, "palette.html"))
	assert.Contains(t, report.StageDurations, StageColorSheet)
	assert.Equal(t, map[string]int{"success": 1}, rec.runOutcomes)
	assert.Equal(t, 1, rec.runObserved)
}

func TestGenerateColorSheetWriteFailureFailsRun(t *testing.T) {
	cfg := testConfig(t)
	fullSource(t, cfg.Source.Root)
	require.NoError(t, os.MkdirAll(filepath.Join(cfg.Output.Directory, "palette.html"), 0o750))
	rec := newTestRecorder()

	g, err := New(cfg, WithRecorder(rec), WithColorSheet("palette.html"))
	require.NoError(t, err)
	report, err := g.Generate(context.Background())
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryFileSystem))

	assert.Equal(t, OutcomeFailed, report.Outcome)
	assert.Len(t, report.Errors, 1)
	assert.Len(t, report.Pages, len(config.DefaultPages))
	assert.Equal(t, map[string]int{"failed": 1}, rec.runOutcomes)
	assert.Equal(t, 1, rec.pageResults["theme-colors"][metrics.ResultFailed])
	assert.Contains(t, report.Summary(), "errors=1")
}
