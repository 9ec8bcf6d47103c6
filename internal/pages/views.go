package pages

import (
	"fmt"
	"html/template"
	"path"
	"strings"

	"git.home.luguber.info/inful/rexdocs/internal/scss"
	"git.home.luguber.info/inful/rexdocs/internal/tokens"
)

const (
	outline     = "border: 1px solid #e2e8f0;"
	neutralText = "#1e293b"
)

type card struct {
	Name, File, Title, Summary string
}

type indexView struct{ Cards []card }

func buildIndex(_ *tokens.Catalog, nav []Definition) (any, int) {
	var v indexView
	for _, d := range nav {
		if d.Name == Index {
			continue
		}
		v.Cards = append(v.Cards, card{Name: d.Name, File: d.File, Title: d.Title, Summary: d.Summary})
	}
	return v, len(v.Cards)
}

type swatchView struct {
	Name, Value string
	Style       template.CSS
}

type semanticView struct {
	Name, Base, Value string
	Style             template.CSS
	Swatch            bool
	SwatchStyle       template.CSS
	Sample            string
	SampleStyle       template.CSS
}

type semanticGroupView struct {
	Title  string
	Colors []semanticView
}

type paletteGroupView struct {
	Category string
	Swatches []swatchView
}

type colorsView struct {
	Semantic []semanticGroupView
	Primary  []swatchView
	Palette  []paletteGroupView
}

// Hex values reaching these helpers come from the color regex, so they are
// safe to splice into inline styles.
func css(format string, args ...any) template.CSS {
	// #nosec G203 -- values are validated hex colors or fixed strings.
	return template.CSS(fmt.Sprintf(format, args...))
}

func newSwatch(s tokens.Swatch) swatchView {
	style := "background: " + s.Value + ";"
	if tokens.NeedsOutline(s.Value) {
		style += " " + outline
	}
	return swatchView{Name: s.Name, Value: s.Value, Style: css("%s", style)}
}

func newSemantic(kind tokens.SemanticKind, c tokens.SemanticColor) semanticView {
	v := semanticView{Name: c.Name, Base: c.Base, Value: c.Value}
	switch kind {
	case tokens.KindBackground:
		border := ""
		if tokens.NeedsOutline(c.Value) {
			border = " " + outline
		}
		text := neutralText
		if strings.HasPrefix(c.Name, "bg-dark") || tokens.IsDark(c.Value) {
			text = "#ffffff"
		}
		v.Style = css("background: %s;%s", c.Value, border)
		v.Sample = "background-color: $" + c.Name + ";"
		v.SampleStyle = css("color: %s;", text)
	case tokens.KindText:
		if c.Name == "text-inverse" || tokens.NeedsOutline(c.Value) {
			v.Style = css("background: #111827;")
		} else {
			v.Style = css("background: #ffffff; %s", outline)
		}
		v.Sample = "color: $" + c.Name + ";"
		v.SampleStyle = css("color: %s;", c.Value)
	case tokens.KindBorder:
		v.Style = css("background: #ffffff; border: 2px solid %s;", c.Value)
		v.Sample = "border: 1px solid $" + c.Name + ";"
		v.SampleStyle = css("color: %s;", neutralText)
	case tokens.KindLink:
		v.Style = css("background: #ffffff; %s", outline)
		v.Sample = "color: $" + c.Name + ";"
		v.SampleStyle = css("color: %s; text-decoration: underline;", c.Value)
	default:
		v.Swatch = true
		v.SwatchStyle = css("background: %s;", c.Value)
	}
	return v
}

// colorsFromCatalog builds the colors view and counts every swatch on it.
func colorsFromCatalog(cat *tokens.Catalog) (colorsView, int) {
	var v colorsView
	n := 0
	for _, g := range cat.Semantic() {
		gv := semanticGroupView{Title: g.Title}
		for _, c := range g.Colors {
			gv.Colors = append(gv.Colors, newSemantic(g.Kind, c))
		}
		n += len(gv.Colors)
		v.Semantic = append(v.Semantic, gv)
	}
	for _, s := range cat.Primary() {
		v.Primary = append(v.Primary, newSwatch(s))
	}
	n += len(v.Primary)
	for _, g := range cat.Palette() {
		gv := paletteGroupView{Category: g.Category}
		for _, s := range g.Swatches {
			gv.Swatches = append(gv.Swatches, newSwatch(s))
		}
		n += len(gv.Swatches)
		v.Palette = append(v.Palette, gv)
	}
	return v, n
}

func buildColors(cat *tokens.Catalog, _ []Definition) (any, int) {
	return colorsFromCatalog(cat)
}

type typographyView struct {
	Sizes   []tokens.Entry[scss.FontSize]
	Weights []tokens.Entry[string]
}

func buildTypography(cat *tokens.Catalog, _ []Definition) (any, int) {
	v := typographyView{
		Sizes:   tokens.OrderedSizes(cat.Typography.Sizes),
		Weights: tokens.OrderedWeights(cat.Typography.Weights),
	}
	return v, len(v.Sizes) + len(v.Weights)
}

type fontView struct {
	Name, Stack, Description string
	Style                    template.CSS
}

type fontsView struct{ Fonts []fontView }

func buildFonts(cat *tokens.Catalog, _ []Definition) (any, int) {
	var v fontsView
	for name, stack := range cat.Fonts.All() {
		v.Fonts = append(v.Fonts, fontView{
			Name:        name,
			Stack:       stack,
			Description: fontDescriptions[name],
			// #nosec G203 -- font stacks come from the project's own SCSS sources.
			Style: template.CSS("font-family: " + stack + ";"),
		})
	}
	return v, len(v.Fonts)
}

type namedValue struct {
	Name, Value, Description string
}

type breakpointsView struct{ Breakpoints []namedValue }

func buildBreakpoints(cat *tokens.Catalog, _ []Definition) (any, int) {
	var v breakpointsView
	for _, e := range tokens.SortBreakpoints(cat.Breakpoints) {
		v.Breakpoints = append(v.Breakpoints, namedValue{Name: e.Key, Value: e.Value, Description: breakpointDescriptions[e.Key]})
	}
	return v, len(v.Breakpoints)
}

type spacingView struct{ Spacing []namedValue }

func buildSpacing(cat *tokens.Catalog, _ []Definition) (any, int) {
	var v spacingView
	for _, e := range tokens.EntriesOf(cat.Spacing) {
		v.Spacing = append(v.Spacing, namedValue{Name: e.Key, Value: e.Value, Description: spacingDescriptions[e.Key]})
	}
	return v, len(v.Spacing)
}

type classView struct {
	Name, Description string
	Style             template.CSS
}

type classGroupView struct {
	Title, Lead string
	Classes     []classView
}

type bordersView struct{ Groups []classGroupView }

func buildBorders(cat *tokens.Catalog, _ []Definition) (any, int) {
	b := cat.Borders
	group := func(title, lead string, names []string, describe func(string) (string, template.CSS)) classGroupView {
		g := classGroupView{Title: title, Lead: lead}
		for _, name := range names {
			desc, style := describe(name)
			g.Classes = append(g.Classes, classView{Name: name, Description: desc, Style: style})
		}
		return g
	}
	v := bordersView{Groups: []classGroupView{
		group("Border Additive/Subtractive", "Add or remove borders on one or all sides.", b.Additive, describeAdditive),
		group("Border Width", "Set the border width.", b.Width, describeWidth),
		group("Border Color", "Set the border color from the theme.", b.Color, func(name string) (string, template.CSS) {
			return titleWord(strings.TrimPrefix(name, "border-")) + " theme color", css("border: 2px solid #94a3b8;")
		}),
		group("Border Radius", "Round the corners of an element.", b.Radius, describeRadius),
		group("Border Opacity", "Set the opacity of the border color.", b.Opacity, describeOpacity),
	}}
	return v, b.Len()
}

func describeAdditive(name string) (string, template.CSS) {
	desc := additiveBorderDescriptions[name]
	removes := strings.HasSuffix(name, "-0")
	side := strings.TrimPrefix(strings.TrimSuffix(strings.TrimPrefix(name, "border"), "-0"), "-")
	switch {
	case side == "" && removes:
		return desc, css("border: 0;")
	case side == "":
		return desc, css("border: 1px solid #94a3b8;")
	case removes:
		return desc, css("border: 1px solid #94a3b8; border-%s: 0;", physicalSide(side))
	}
	return desc, css("border-%s: 1px solid #94a3b8;", physicalSide(side))
}

func physicalSide(side string) string {
	switch side {
	case "end":
		return "right"
	case "start":
		return "left"
	}
	return side
}

func describeWidth(name string) (string, template.CSS) {
	w := strings.TrimPrefix(name, "border-")
	if w != "0" {
		w += "px"
	}
	return "border-width: " + w, css("border: %s solid #94a3b8;", w)
}

func describeRadius(name string) (string, template.CSS) {
	if desc, ok := radiusSides[name]; ok {
		return desc, css("border: 1px solid #94a3b8; border-radius: 8px;")
	}
	if r, ok := radiusValues[name]; ok {
		return "border-radius: " + r, css("border: 1px solid #94a3b8; border-radius: %s;", r)
	}
	return "", css("border: 1px solid #94a3b8;")
}

func describeOpacity(name string) (string, template.CSS) {
	pct := strings.TrimPrefix(name, "border-opacity-")
	return "border opacity " + pct + "%", css("border: 2px solid rgba(37, 99, 235, %s);", opacityFraction(pct))
}

func opacityFraction(pct string) string {
	switch pct {
	case "0":
		return "0"
	case "100":
		return "1"
	}
	return "0." + strings.TrimSuffix(pct, "0")
}

func titleWord(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

type helperView struct {
	Name, Description, CSS string
}

type helpersView struct{ Classes []helperView }

func helpers(names []string, info map[string]helperInfo) (any, int) {
	var v helpersView
	for _, name := range names {
		h := info[name]
		v.Classes = append(v.Classes, helperView{Name: name, Description: h.Description, CSS: h.CSS})
	}
	return v, len(v.Classes)
}

func buildStacks(cat *tokens.Catalog, _ []Definition) (any, int) {
	return helpers(cat.Stacks, stackHelpers)
}

func buildVerticalRule(cat *tokens.Catalog, _ []Definition) (any, int) {
	return helpers(cat.VerticalRule, verticalRuleHelpers)
}

type mixinView struct {
	Name, Params, Description, Usage string
}

type mixinGroupView struct {
	Title, File string
	Mixins      []mixinView
}

type mixinsView struct{ Groups []mixinGroupView }

func buildMixins(cat *tokens.Catalog, _ []Definition) (any, int) {
	var v mixinsView
	for _, g := range cat.Mixins {
		gv := mixinGroupView{Title: g.Title, File: path.Join("mixins", "_"+g.Name+".scss")}
		for _, m := range g.Mixins {
			gv.Mixins = append(gv.Mixins, newMixin(m))
		}
		v.Groups = append(v.Groups, gv)
	}
	return v, cat.MixinCount()
}

func newMixin(m scss.Mixin) mixinView {
	info, ok := mixinDescriptions[m.Name]
	if !ok {
		info.Usage = "@include " + m.Name + ";"
		if m.Params != "" {
			info.Usage = "@include " + m.Name + "(...);"
		}
	}
	return mixinView{Name: m.Name, Params: m.Params, Description: info.Description, Usage: info.Usage}
}
