// Package pages renders the token catalog into the static HTML documentation site.
//
// Every page is a Definition in the registry. A definition builds a view model
// from the catalog, which the embedded templates turn into HTML wrapped in the
// shared sidebar layout.
package pages

import (
	"slices"

	"git.home.luguber.info/inful/rexdocs/internal/tokens"
)

// Index is the name of the landing page.
const Index = "index"

// Definition describes one generated page.
type Definition struct {
	Name     string // registry key, also used in config and CLI flags
	File     string // output file name
	Title    string // navigation and <title> text
	Subtitle string
	Summary  string // card text on the landing page
	build    func(cat *tokens.Catalog, nav []Definition) (view any, entries int)
}

var registry = []Definition{
	{
		Name: Index, File: "index.html", Title: "Home",
		Subtitle: "Every RexBox variable and setting in one reference.",
		build:    buildIndex,
	},
	{
		Name: "colors", File: "colors.html", Title: "Colors",
		Subtitle: "Theme aliases and the variables color palette.",
		Summary:  "Semantic theme colors, the primary scale and every palette swatch.",
		build:    buildColors,
	},
	{
		Name: "typography", File: "typography.html", Title: "Typography",
		Subtitle: "Font size and weight tokens.",
		Summary:  "Font size scale in rem and px, and font weights.",
		build:    buildTypography,
	},
	{
		Name: "fonts", File: "fonts.html", Title: "Fonts",
		Subtitle: "Font family variables and icon fonts.",
		Summary:  "Font family stacks and the Material Icons classes.",
		build:    buildFonts,
	},
	{
		Name: "breakpoints", File: "breakpoints.html", Title: "Breakpoints",
		Subtitle: "Breakpoint values for responsive layouts.",
		Summary:  "The breakpoint map and the up/down/between mixins.",
		build:    buildBreakpoints,
	},
	{
		Name: "spacing", File: "spacing.html", Title: "Spacing",
		Subtitle: "Spacing variables and utility classes.",
		Summary:  "Spacer variables and the margin, padding and gap utilities.",
		build:    buildSpacing,
	},
	{
		Name: "borders", File: "borders.html", Title: "Borders",
		Subtitle: "Bootstrap style border utility classes.",
		Summary:  "Border sides, widths, colors, radius and opacity utilities.",
		build:    buildBorders,
	},
	{
		Name: "stacks", File: "stacks.html", Title: "Stacks",
		Subtitle: "Bootstrap style stack helpers.",
		Summary:  "Vertical and horizontal flexbox stacks.",
		build:    buildStacks,
	},
	{
		Name: "vertical-rule", File: "vertical-rule.html", Title: "Vertical Rule",
		Subtitle: "Vertical divider helper.",
		Summary:  "The .vr divider for flex layouts.",
		build:    buildVerticalRule,
	},
	{
		Name: "mixins", File: "mixins.html", Title: "Mixins",
		Subtitle: "Available SCSS mixins.",
		Summary:  "Rounded, backdrop, button hover, clearfix, ellipsis, transform and transition mixins.",
		build:    buildMixins,
	},
}

// Definitions returns every known page in navigation order.
func Definitions() []Definition {
	return slices.Clone(registry)
}

// Lookup returns the definition registered under name.
func Lookup(name string) (Definition, bool) {
	i := slices.IndexFunc(registry, func(d Definition) bool { return d.Name == name })
	if i < 0 {
		return Definition{}, false
	}
	return registry[i], true
}

// Names returns the registered page names in navigation order.
func Names() []string {
	names := make([]string, len(registry))
	for i, d := range registry {
		names[i] = d.Name
	}
	return names
}
