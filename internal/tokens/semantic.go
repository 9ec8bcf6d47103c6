package tokens

import (
	"fmt"
	"slices"
	"strings"

	"git.home.luguber.info/inful/rexdocs/internal/scss"
)

// SemanticKind identifies a semantic color group.
type SemanticKind string

const (
	KindBackground SemanticKind = "background"
	KindText       SemanticKind = "text"
	KindBorder     SemanticKind = "border"
	KindBrand      SemanticKind = "brand"
	KindState      SemanticKind = "state"
	KindStock      SemanticKind = "stock"
	KindLink       SemanticKind = "link"
)

// SemanticColor is a theme alias with its resolved value.
type SemanticColor struct {
	Name  string
	Base  string
	Value string
}

// SemanticGroup is a titled, ordered set of theme aliases.
type SemanticGroup struct {
	Kind   SemanticKind
	Title  string
	Colors []SemanticColor
}

type semanticRule struct {
	kind  SemanticKind
	title string
	match func(name string) bool
}

func prefixed(p string) func(string) bool {
	return func(name string) bool { return strings.HasPrefix(name, p) }
}

func oneOf(names ...string) func(string) bool {
	return func(name string) bool { return slices.Contains(names, name) }
}

// First matching rule wins.
var semanticRules = []semanticRule{
	{KindBackground, "Background Colors", prefixed("bg-")},
	{KindText, "Text Colors", prefixed("text-")},
	{KindBorder, "Border Colors", prefixed("border-")},
	{KindBrand, "Brand Colors", oneOf("primary", "secondary", "point")},
	{KindState, "State Colors", oneOf("success", "warning", "error", "info", "valid", "invalid")},
	{KindStock, "Stock / Finance Colors", oneOf(
		"positive", "negative", "neutral",
		"stock-up", "stock-down", "stock-neutral", "stock-positive", "stock-negative",
		"value-red", "value-blue", "gapup", "gapdown",
	)},
	{KindLink, "Link Colors", prefixed("link")},
}

// GroupSemantic sorts theme aliases into semantic groups. Aliases that match no
// rule are left out, as are empty groups. Brand colors put primary first and the
// rest by name; every other group is ordered by step.
func GroupSemantic(aliases *scss.Table[scss.Alias]) []SemanticGroup {
	buckets := make([][]SemanticColor, len(semanticRules))
	for name, a := range aliases.All() {
		for i, rule := range semanticRules {
			if rule.match(name) {
				buckets[i] = append(buckets[i], SemanticColor{Name: name, Base: a.Base, Value: a.Value})
				break
			}
		}
	}

	var groups []SemanticGroup
	for i, rule := range semanticRules {
		colors := buckets[i]
		if len(colors) == 0 {
			continue
		}
		if rule.kind == KindBrand {
			slices.SortStableFunc(colors, compareBrand)
		} else {
			SortByStep(colors, semanticName)
		}
		groups = append(groups, SemanticGroup{Kind: rule.kind, Title: rule.title, Colors: colors})
	}
	return groups
}

func compareBrand(a, b SemanticColor) int {
	switch {
	case a.Name == b.Name:
		return 0
	case a.Name == "primary":
		return -1
	case b.Name == "primary":
		return 1
	}
	return strings.Compare(a.Name, b.Name)
}

func semanticName(c SemanticColor) string { return c.Name }

// PrimaryScale returns primary, primary-50 and primary-100 through primary-900,
// skipping those the theme does not define.
func PrimaryScale(aliases *scss.Table[scss.Alias]) []Swatch {
	names := []string{"primary", "primary-50"}
	for step := 100; step <= 900; step += 100 {
		names = append(names, fmt.Sprintf("primary-%d", step))
	}
	var scale []Swatch
	for _, name := range names {
		if a, ok := aliases.Get(name); ok {
			scale = append(scale, Swatch{Name: name, Value: a.Value})
		}
	}
	return scale
}
