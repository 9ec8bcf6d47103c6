package config

// Default source layout of a RexBox checkout.
const (
	DefaultSourceRoot   = "rexbox"
	DefaultColors       = "variables/_colors.scss"
	DefaultTheme        = "theme/_index.scss"
	DefaultBreakpoints  = "breakpoints/_index.scss"
	DefaultTypography   = "variables/_typo.scss"
	DefaultSpacing      = "variables/_spacing.scss"
	DefaultFonts        = "fonts/_variables.scss"
	DefaultMixinsDir    = "mixins"
	DefaultBorders      = "utilities/_borders.scss"
	DefaultStacks       = "utilities/_stacks.scss"
	DefaultVerticalRule = "utilities/_vertical-rule.scss"

	DefaultOutputDir  = "docs"
	DefaultColorSheet = "theme-colors.html"
	DefaultTitle      = "RexBox"
	DefaultLanguage   = "en"
)

// DefaultPages lists every page the generator knows, in navigation order.
var DefaultPages = []string{
	"index",
	"colors",
	"typography",
	"fonts",
	"breakpoints",
	"spacing",
	"borders",
	"stacks",
	"vertical-rule",
	"mixins",
}

// PageFile is the output file a page is written to.
func PageFile(name string) string { return name + ".html" }

// DefaultApplier applies defaults for a specific configuration domain.
type DefaultApplier interface {
	ApplyDefaults(cfg *Config) error
	Domain() string
}

// SourceDefaultApplier fills in the RexBox source layout.
type SourceDefaultApplier struct{}

func (SourceDefaultApplier) Domain() string { return "source" }

func (SourceDefaultApplier) ApplyDefaults(cfg *Config) error {
	s := &cfg.Source
	setDefault(&s.Root, DefaultSourceRoot)
	setDefault(&s.Colors, DefaultColors)
	setDefault(&s.Theme, DefaultTheme)
	setDefault(&s.Breakpoints, DefaultBreakpoints)
	setDefault(&s.Typography, DefaultTypography)
	setDefault(&s.Spacing, DefaultSpacing)
	setDefault(&s.Fonts, DefaultFonts)
	setDefault(&s.MixinsDir, DefaultMixinsDir)
	setDefault(&s.Borders, DefaultBorders)
	setDefault(&s.Stacks, DefaultStacks)
	setDefault(&s.VerticalRule, DefaultVerticalRule)
	return nil
}

// OutputDefaultApplier handles output configuration defaults.
type OutputDefaultApplier struct{}

func (OutputDefaultApplier) Domain() string { return "output" }

func (OutputDefaultApplier) ApplyDefaults(cfg *Config) error {
	setDefault(&cfg.Output.Directory, DefaultOutputDir)
	if cfg.Output.ColorSheet == nil {
		sheet := DefaultColorSheet
		cfg.Output.ColorSheet = &sheet
	}
	return nil
}

// SiteDefaultApplier handles page chrome defaults.
type SiteDefaultApplier struct{}

func (SiteDefaultApplier) Domain() string { return "site" }

func (SiteDefaultApplier) ApplyDefaults(cfg *Config) error {
	setDefault(&cfg.Site.Title, DefaultTitle)
	setDefault(&cfg.Site.Language, DefaultLanguage)
	if len(cfg.Site.Pages) == 0 {
		cfg.Site.Pages = append([]string(nil), DefaultPages...)
	}
	return nil
}

// LoggingDefaultApplier normalizes logging settings.
type LoggingDefaultApplier struct{}

func (LoggingDefaultApplier) Domain() string { return "logging" }

func (LoggingDefaultApplier) ApplyDefaults(cfg *Config) error {
	cfg.Logging.Level = string(NormalizeLogLevel(cfg.Logging.Level))
	cfg.Logging.Format = string(NormalizeLogFormat(cfg.Logging.Format))
	return nil
}

var defaultAppliers = []DefaultApplier{
	SourceDefaultApplier{},
	OutputDefaultApplier{},
	SiteDefaultApplier{},
	LoggingDefaultApplier{},
}

func applyDefaults(cfg *Config) error {
	for _, applier := range defaultAppliers {
		if err := applier.ApplyDefaults(cfg); err != nil {
			return err
		}
	}
	return nil
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}
