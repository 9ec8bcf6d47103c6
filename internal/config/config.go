package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/rexdocs/internal/foundation/errors"
)

// ErrNotFound is the cause attached when the configuration file does not exist.
var ErrNotFound = stderrors.New("configuration file not found")

// Config represents the application configuration.
type Config struct {
	Source  SourceConfig  `yaml:"source" toml:"source"`
	Output  OutputConfig  `yaml:"output" toml:"output"`
	Site    SiteConfig    `yaml:"site" toml:"site"`
	Metrics MetricsConfig `yaml:"metrics,omitempty" toml:"metrics,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty" toml:"logging,omitempty"`
}

// SourceConfig locates the RexBox SCSS files. Relative file paths are resolved against Root.
type SourceConfig struct {
	Root         string `yaml:"root" toml:"root"`
	Colors       string `yaml:"colors,omitempty" toml:"colors,omitempty"`
	Theme        string `yaml:"theme,omitempty" toml:"theme,omitempty"`
	Breakpoints  string `yaml:"breakpoints,omitempty" toml:"breakpoints,omitempty"`
	Typography   string `yaml:"typography,omitempty" toml:"typography,omitempty"`
	Spacing      string `yaml:"spacing,omitempty" toml:"spacing,omitempty"`
	Fonts        string `yaml:"fonts,omitempty" toml:"fonts,omitempty"`
	MixinsDir    string `yaml:"mixins_dir,omitempty" toml:"mixins_dir,omitempty"`
	Borders      string `yaml:"borders,omitempty" toml:"borders,omitempty"`
	Stacks       string `yaml:"stacks,omitempty" toml:"stacks,omitempty"`
	VerticalRule string `yaml:"vertical_rule,omitempty" toml:"vertical_rule,omitempty"`
}

// Path resolves a source-relative path against Root. Absolute paths are returned unchanged.
func (s SourceConfig) Path(rel string) string {
	if rel == "" || filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(s.Root, rel)
}

// OutputConfig represents output configuration.
type OutputConfig struct {
	Directory string `yaml:"directory" toml:"directory"`
	Clean     bool   `yaml:"clean" toml:"clean"` // remove stale *.html before writing
	// ColorSheet names the standalone colour sheet inside Directory. Unset means
	// DefaultColorSheet; an explicit empty string disables the sheet.
	ColorSheet *string `yaml:"color_sheet" toml:"color_sheet"`
}

// ColorSheetFile returns the colour sheet file name, or "" when disabled.
func (o OutputConfig) ColorSheetFile() string {
	if o.ColorSheet == nil {
		return ""
	}
	return *o.ColorSheet
}

// SiteConfig controls page chrome and which pages are generated.
type SiteConfig struct {
	Title    string            `yaml:"title" toml:"title"`
	Language string            `yaml:"language" toml:"language"`
	Pages    []string          `yaml:"pages,omitempty" toml:"pages,omitempty"`
	Notes    map[string]string `yaml:"notes,omitempty" toml:"notes,omitempty"` // page name -> markdown
}

// MetricsConfig enables Prometheus textfile output.
type MetricsConfig struct {
	Textfile string `yaml:"textfile,omitempty" toml:"textfile,omitempty"`
}

// LoggingConfig mirrors the CLI logging switches.
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty" toml:"level,omitempty"`
	Format string `yaml:"format,omitempty" toml:"format,omitempty"`
}

// Load loads configuration from the specified file. Files ending in .toml are decoded as
// TOML, everything else as YAML. Environment variables are expanded before decoding.
func Load(configPath string) (*Config, error) {
	if err := loadEnvFile(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.WrapError(ErrNotFound, errors.CategoryConfig, "configuration file not found").
				Fatal().WithContext("path", configPath).Build()
		}
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to read config file").
			Fatal().WithContext("path", configPath).Build()
	}

	cfg, err := Parse(configPath, []byte(os.ExpandEnv(string(data))))
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes raw configuration bytes, applies defaults and validates the result.
// The file name only selects the decoder.
func Parse(name string, data []byte) (*Config, error) {
	var cfg Config
	var err error
	if isTOML(name) {
		err = toml.Unmarshal(data, &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to unmarshal config").
			Fatal().WithContext("path", name).Build()
	}

	if err := applyDefaults(&cfg); err != nil {
		return nil, err
	}
	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	_ = applyDefaults(cfg)
	return cfg
}

// Init creates a new configuration file with example content.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return errors.ConfigError("configuration file already exists (use --force to overwrite)").
			WithContext("path", configPath).Build()
	}

	example := Default()
	example.Site.Notes = map[string]string{
		"colors": "Palette values come from `variables/_colors.scss`; semantic names from `theme/_index.scss`.",
	}

	var data []byte
	var err error
	if isTOML(configPath) {
		data, err = toml.Marshal(example)
	} else {
		data, err = yaml.Marshal(example)
	}
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to marshal config").Build()
	}

	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write config file").
			WithContext("path", configPath).Build()
	}
	return nil
}

func isTOML(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".toml")
}

// String renders a short human summary used in debug logs.
func (c *Config) String() string {
	return fmt.Sprintf("source=%s output=%s pages=%d", c.Source.Root, c.Output.Directory, len(c.Site.Pages))
}
