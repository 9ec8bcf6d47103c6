package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/rexdocs/internal/config"
	"git.home.luguber.info/inful/rexdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/rexdocs/internal/pages"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

// fixture creates a RexBox checkout with colours and theme aliases only, and a
// config pointing at it.
func fixture(t *testing.T) (cfgPath, siteDir string) {
	t.Helper()
	return fixtureWithOutput(t, "")
}

// fixtureWithOutput appends extra YAML lines to the output section.
func fixtureWithOutput(t *testing.T, extra string) (cfgPath, siteDir string) {
	t.Helper()
	dir := t.TempDir()
	root := filepath.Join(dir, "rexbox")
	siteDir = filepath.Join(dir, "site")
	writeFile(t, filepath.Join(root, "variables", "_colors.scss"), "$white: #fff;\n$primary: #112233;\n$slate-50: #f8fafc;\n")
	writeFile(t, filepath.Join(root, "theme", "_index.scss"), "$bg-primary: $primary;\n$text-inverse: $white;\n")

	cfgPath = filepath.Join(dir, "rexdocs.yaml")
	writeFile(t, cfgPath, fmt.Sprintf(`source:
  root: %s
output:
  directory: %s
%smetrics:
  textfile: %s
`, root, siteDir, extra, filepath.Join(dir, "rexdocs.prom")))
	return cfgPath, siteDir
}

func TestLoadConfigFallsBackToDefaults(t *testing.T) {
	cfg, err := loadConfig(&CLI{Config: filepath.Join(t.TempDir(), "absent.yaml")})
	require.NoError(t, err)
	assert.Equal(t, config.DefaultOutputDir, cfg.Output.Directory)
	assert.Equal(t, config.DefaultColorSheet, cfg.Output.ColorSheetFile())
}

func TestLoadConfigRejectsUnknownPage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rexdocs.yaml")
	writeFile(t, path, "site:\n  pages: [nope]\n")

	_, err := loadConfig(&CLI{Config: path})
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryValidation))
}

func TestInitCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rexdocs.yaml")
	var out bytes.Buffer
	root := &CLI{Config: path}

	require.NoError(t, (&InitCmd{}).Run(&Global{Out: &out}, root))
	assert.FileExists(t, path)
	assert.Contains(t, out.String(), "initialized successfully")

	err := (&InitCmd{}).Run(&Global{Out: &out}, root)
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryConfig))

	require.NoError(t, (&InitCmd{Force: true}).Run(&Global{Out: &out}, root))

	cfg, err := loadConfig(root)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultTitle, cfg.Site.Title)
}

func TestGenerateThenCheck(t *testing.T) {
	cfgPath, siteDir := fixture(t)
	root := &CLI{Config: cfgPath}
	var out bytes.Buffer

	require.NoError(t, (&GenerateCmd{}).Run(&Global{Out: &out}, root))

	for _, d := range pages.Definitions() {
		assert.FileExists(t, filepath.Join(siteDir, d.File))
		assert.Contains(t, out.String(), d.File)
	}
	assert.FileExists(t, filepath.Join(siteDir, config.DefaultColorSheet))
	assert.Contains(t, out.String(), "outcome=warning", "most sources are missing")
	assert.Contains(t, out.String(), "missing")

	prom, err := os.ReadFile(filepath.Join(filepath.Dir(cfgPath), "rexdocs.prom"))
	require.NoError(t, err)
	assert.Contains(t, string(prom), "rexdocs_run_outcomes_total")

	out.Reset()
	require.NoError(t, (&CheckCmd{}).Run(&Global{Out: &out}, root))
	assert.Contains(t, out.String(), "broken=0")
}

func TestGenerateColorSheetFailureIsReported(t *testing.T) {
	cfgPath, siteDir := fixture(t)
	require.NoError(t, os.MkdirAll(filepath.Join(siteDir, config.DefaultColorSheet), 0o750))
	var out bytes.Buffer

	err := (&GenerateCmd{}).Run(&Global{Out: &out}, &CLI{Config: cfgPath})
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryFileSystem))
	assert.Contains(t, out.String(), "errors=1")
	assert.Contains(t, out.String(), "outcome=failed")

	prom, err := os.ReadFile(filepath.Join(filepath.Dir(cfgPath), "rexdocs.prom"))
	require.NoError(t, err)
	assert.Contains(t, string(prom), "rexdocs_run_duration_seconds_count 1")
	assert.Contains(t, string(prom), `rexdocs_run_outcomes_total{outcome="failed"} 1`)
	assert.NotContains(t, string(prom), `outcome="warning"`)
}

func TestGenerateWithColorSheetDisabled(t *testing.T) {
	cfgPath, siteDir := fixtureWithOutput(t, "  color_sheet: \"\"\n")
	var out bytes.Buffer

	require.NoError(t, (&GenerateCmd{}).Run(&Global{Out: &out}, &CLI{Config: cfgPath}))
	assert.FileExists(t, filepath.Join(siteDir, "colors.html"))
	assert.NoFileExists(t, filepath.Join(siteDir, config.DefaultColorSheet))
}

func TestGenerateSelectedPage(t *testing.T) {
	cfgPath, _ := fixture(t)
	siteDir := filepath.Join(t.TempDir(), "only-colors")
	var out bytes.Buffer

	cmd := &GenerateCmd{Output: siteDir, Page: []string{"colors"}}
	require.NoError(t, cmd.Run(&Global{Out: &out}, &CLI{Config: cfgPath}))

	assert.FileExists(t, filepath.Join(siteDir, "colors.html"))
	assert.NoFileExists(t, filepath.Join(siteDir, "index.html"))
	assert.NoFileExists(t, filepath.Join(siteDir, config.DefaultColorSheet))
}

func TestGenerateUnknownPage(t *testing.T) {
	cfgPath, _ := fixture(t)
	err := (&GenerateCmd{Page: []string{"nope"}}).Run(&Global{Out: &bytes.Buffer{}}, &CLI{Config: cfgPath})
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryValidation))
}

func TestColorsCmd(t *testing.T) {
	cfgPath, _ := fixture(t)
	sheet := filepath.Join(t.TempDir(), "sheets", "colors.html")
	var out bytes.Buffer

	require.NoError(t, (&ColorsCmd{Output: sheet}).Run(&Global{Out: &out}, &CLI{Config: cfgPath}))

	data, err := os.ReadFile(sheet)
	require.NoError(t, err)
	assert.Contains(t, string(data), "#112233")
	assert.Contains(t, out.String(), "colors.html")
}

func TestCheckReportsBrokenLinks(t *testing.T) {
	cfgPath, _ := fixture(t)
	site := t.TempDir()
	writeFile(t, filepath.Join(site, "index.html"), `<a href="gone.html">gone</a>`)
	var out bytes.Buffer

	err := (&CheckCmd{Output: site}).Run(&Global{Out: &out}, &CLI{Config: cfgPath})
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryValidation))
	assert.Contains(t, out.String(), "gone.html")
	assert.Contains(t, out.String(), "broken=1")
}
