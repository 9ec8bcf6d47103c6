package tokens

import (
	"path/filepath"

	"git.home.luguber.info/inful/rexdocs/internal/config"
	"git.home.luguber.info/inful/rexdocs/internal/scss"
)

// MixinGroup is one mixins/_<name>.scss file and the mixins it declares.
type MixinGroup struct {
	Name   string
	Title  string
	Mixins []scss.Mixin
}

// MixinGroupDef names a mixin source file and its page heading.
type MixinGroupDef struct {
	Name  string
	Title string
}

// MixinGroups lists the mixin files in page order.
var MixinGroups = []MixinGroupDef{
	{"rounded", "Rounded Mixins"},
	{"border-radius", "Border Radius Mixins"},
	{"backdrop", "Backdrop Mixins"},
	{"button-hover", "Button Hover Mixin"},
	{"clearfix", "Clearfix Mixin"},
	{"ellipsis", "Ellipsis Mixin"},
	{"transform", "Transform Mixins"},
	{"transition", "Transition Mixins"},
}

// Catalog holds every token table extracted in one run.
type Catalog struct {
	Colors       *scss.Table[string]
	Aliases      *scss.Table[scss.Alias]
	Breakpoints  *scss.Table[string]
	Typography   scss.Typography
	Spacing      *scss.Table[string]
	Fonts        *scss.Table[string]
	Mixins       []MixinGroup
	Borders      scss.BorderClasses
	Stacks       []string
	VerticalRule []string

	// Missing lists configured source files that did not exist.
	Missing []string
}

// Palette groups the color variables by category.
func (c *Catalog) Palette() []PaletteGroup { return GroupPalette(c.Colors) }

// Semantic groups the theme aliases.
func (c *Catalog) Semantic() []SemanticGroup { return GroupSemantic(c.Aliases) }

// Primary returns the primary color scale.
func (c *Catalog) Primary() []Swatch { return PrimaryScale(c.Aliases) }

// MixinCount is the number of mixins across all groups.
func (c *Catalog) MixinCount() int {
	n := 0
	for _, g := range c.Mixins {
		n += len(g.Mixins)
	}
	return n
}

type loader struct {
	src     config.SourceConfig
	missing []string
}

func (l *loader) read(rel string) (string, error) {
	path := l.src.Path(rel)
	content, ok, err := scss.ReadSource(path)
	if err != nil {
		return "", err
	}
	if !ok && path != "" {
		l.missing = append(l.missing, path)
	}
	return content, nil
}

// Load reads every configured SCSS source and extracts the catalog. Missing files
// produce empty tables and are listed in Catalog.Missing; only unreadable files fail.
func Load(src config.SourceConfig) (*Catalog, error) {
	l := &loader{src: src}
	cat := &Catalog{}

	colors, err := l.read(src.Colors)
	if err != nil {
		return nil, err
	}
	cat.Colors = scss.ExtractColorVariables(colors)

	theme, err := l.read(src.Theme)
	if err != nil {
		return nil, err
	}
	cat.Aliases = scss.ExtractThemeMappings(theme, cat.Colors)

	bps, err := l.read(src.Breakpoints)
	if err != nil {
		return nil, err
	}
	cat.Breakpoints = scss.ExtractBreakpoints(bps)

	typo, err := l.read(src.Typography)
	if err != nil {
		return nil, err
	}
	cat.Typography = scss.ExtractTypography(typo)

	spacing, err := l.read(src.Spacing)
	if err != nil {
		return nil, err
	}
	cat.Spacing = scss.ExtractSpacing(spacing)

	fonts, err := l.read(src.Fonts)
	if err != nil {
		return nil, err
	}
	cat.Fonts = scss.ExtractFonts(fonts)

	for _, def := range MixinGroups {
		content, err := l.read(filepath.Join(src.MixinsDir, "_"+def.Name+".scss"))
		if err != nil {
			return nil, err
		}
		if mixins := scss.ExtractMixins(content); len(mixins) > 0 {
			cat.Mixins = append(cat.Mixins, MixinGroup{Name: def.Name, Title: def.Title, Mixins: mixins})
		}
	}

	borders, err := l.read(src.Borders)
	if err != nil {
		return nil, err
	}
	cat.Borders = scss.ExtractBorders(borders)

	stacks, err := l.read(src.Stacks)
	if err != nil {
		return nil, err
	}
	cat.Stacks = scss.ExtractClasses(stacks, scss.StackPattern)

	vr, err := l.read(src.VerticalRule)
	if err != nil {
		return nil, err
	}
	cat.VerticalRule = scss.ExtractClasses(vr, scss.VerticalRulePattern)

	cat.Missing = l.missing
	return cat, nil
}
