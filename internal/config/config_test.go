package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/rexdocs/internal/foundation/errors"
)

func TestLoadYAMLAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rexdocs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
source:
  root: ../rexbox
  colors: palette/_colors.scss
output:
  directory: ./site
site:
  title: RexBox Docs
  pages: [index, colors]
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "../rexbox", cfg.Source.Root)
	assert.Equal(t, "palette/_colors.scss", cfg.Source.Colors)
	assert.Equal(t, DefaultTheme, cfg.Source.Theme)
	assert.Equal(t, "./site", cfg.Output.Directory)
	assert.Equal(t, DefaultColorSheet, cfg.Output.ColorSheetFile())
	assert.Equal(t, "RexBox Docs", cfg.Site.Title)
	assert.Equal(t, DefaultLanguage, cfg.Site.Language)
	assert.Equal(t, []string{"index", "colors"}, cfg.Site.Pages)
	assert.Equal(t, string(LogLevelInfo), cfg.Logging.Level)
	assert.Equal(t, string(LogFormatText), cfg.Logging.Format)
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rexdocs.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[source]
root = "vendor/rexbox"

[site]
title = "Tokens"

[logging]
level = "DEBUG"
format = "json"
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "vendor/rexbox", cfg.Source.Root)
	assert.Equal(t, "Tokens", cfg.Site.Title)
	assert.Equal(t, DefaultPages, cfg.Site.Pages)
	assert.Equal(t, string(LogLevelDebug), cfg.Logging.Level)
	assert.Equal(t, string(LogFormatJSON), cfg.Logging.Format)
}

func TestLoadExpandsEnvironment(t *testing.T) {
	t.Setenv("REXDOCS_TEST_ROOT", "/srv/rexbox")
	dir := t.TempDir()
	path := filepath.Join(dir, "rexdocs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("source:\n  root: ${REXDOCS_TEST_ROOT}\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/rexbox", cfg.Source.Root)
	assert.Equal(t, filepath.Join("/srv/rexbox", DefaultColors), cfg.Source.Path(cfg.Source.Colors))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, ErrNotFound))
	assert.True(t, errors.HasCategory(err, errors.CategoryConfig))
}

func TestParseRejectsUnknownPage(t *testing.T) {
	_, err := Parse("cfg.yaml", []byte("site:\n  pages: [index, buttons]\n"))
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryValidation))
}

func TestParseRejectsDuplicatePage(t *testing.T) {
	_, err := Parse("cfg.yaml", []byte("site:\n  pages: [colors, colors]\n"))
	require.Error(t, err)
}

func TestParseRejectsNotesForUnknownPage(t *testing.T) {
	_, err := Parse("cfg.yaml", []byte("site:\n  notes:\n    widgets: hello\n"))
	require.Error(t, err)
}

func TestParseRejectsNestedColorSheet(t *testing.T) {
	_, err := Parse("cfg.yaml", []byte("output:\n  color_sheet: sub/colors.html\n"))
	require.Error(t, err)
}

func TestParseRejectsColorSheetOverwritingPage(t *testing.T) {
	_, err := Parse("cfg.yaml", []byte("output:\n  color_sheet: colors.html\n"))
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryValidation))
}

func TestColorSheetCanBeDisabled(t *testing.T) {
	cfg, err := Parse("cfg.yaml", []byte("output:\n  color_sheet: \"\"\n"))
	require.NoError(t, err)
	assert.Empty(t, cfg.Output.ColorSheetFile())

	cfg, err = Parse("cfg.toml", []byte("[output]\ncolor_sheet = \"\"\n"))
	require.NoError(t, err)
	assert.Empty(t, cfg.Output.ColorSheetFile())

	cfg, err = Parse("cfg.yaml", []byte("output:\n  directory: site\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultColorSheet, cfg.Output.ColorSheetFile())

	cfg, err = Parse("cfg.yaml", []byte("output:\n  color_sheet: palette.html\n"))
	require.NoError(t, err)
	assert.Equal(t, "palette.html", cfg.Output.ColorSheetFile())
}

func TestSourcePathKeepsAbsolute(t *testing.T) {
	s := SourceConfig{Root: "rexbox"}
	assert.Equal(t, "/abs/_colors.scss", s.Path("/abs/_colors.scss"))
	assert.Equal(t, filepath.Join("rexbox", "theme", "_index.scss"), s.Path("theme/_index.scss"))
	assert.Empty(t, s.Path(""))
}

func TestInitWritesLoadableConfig(t *testing.T) {
	for _, name := range []string{"rexdocs.yaml", "rexdocs.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, Init(path, false))

			cfg, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, DefaultSourceRoot, cfg.Source.Root)
			assert.Contains(t, cfg.Site.Notes, "colors")
			assert.Empty(t, cfg.Metrics.Textfile)

			err = Init(path, false)
			require.Error(t, err)
			require.NoError(t, Init(path, true))
		})
	}
}

func TestNormalizeLogLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"":         LogLevelInfo,
		" Debug ":  LogLevelDebug,
		"warning":  LogLevelWarn,
		"ERROR":    LogLevelError,
		"nonsense": LogLevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeLogLevel(in), "input %q", in)
	}
}
