package tokens

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"git.home.luguber.info/inful/rexdocs/internal/scss"
)

// GlobalCategory collects black/white and every color outside the known families.
const GlobalCategory = "Global"

var globalNames = []string{"white", "white-real", "black", "black-real"}

// Swatch is one named color.
type Swatch struct {
	Name  string
	Value string
}

// PaletteGroup is a palette category with its swatches in display order.
type PaletteGroup struct {
	Category string
	Swatches []Swatch
}

// PaletteCategories are the color families recognised by name prefix, in the
// order they are tried.
var PaletteCategories = []string{
	"Slate", "Gray", "Zinc", "Neutral", "Stone",
	"Lime", "Green", "Emerald", "Teal", "Cyan",
	"Sky", "Blue", "Indigo", "Violet", "Purple",
	"Fuchsia", "Pink", "Rose", "Red", "Orange",
	"Amber", "Yellow",
}

// CategoryOf returns the first palette category whose lower-cased name
// prefixes the variable (`slate-50` → `Slate`, `gray` → `Gray`). Anything else,
// `primary-500` included, is Global.
func CategoryOf(name string) string {
	for _, cat := range PaletteCategories {
		if strings.HasPrefix(name, strings.ToLower(cat)) {
			return cat
		}
	}
	return GlobalCategory
}

// GroupPalette buckets colors by category. Global comes first. The remaining
// categories are ranked by the first appearance of their hyphen prefix in the
// source; categories never seen as a prefix sort last, alphabetically. Within a
// bucket names are sorted alphabetically and then by step.
func GroupPalette(colors *scss.Table[string]) []PaletteGroup {
	buckets := map[string][]Swatch{}
	for name, value := range colors.All() {
		cat := CategoryOf(name)
		buckets[cat] = append(buckets[cat], Swatch{Name: name, Value: value})
	}

	rank := prefixRank(colors)
	rankOf := func(cat string) int {
		if cat == GlobalCategory {
			return -1
		}
		if r, ok := rank[cat]; ok {
			return r
		}
		return len(rank)
	}
	order := make([]string, 0, len(buckets))
	for cat := range buckets {
		order = append(order, cat)
	}
	slices.SortFunc(order, func(a, b string) int {
		return cmp.Or(cmp.Compare(rankOf(a), rankOf(b)), strings.Compare(a, b))
	})

	groups := make([]PaletteGroup, 0, len(order))
	for _, cat := range order {
		swatches := buckets[cat]
		slices.SortFunc(swatches, func(a, b Swatch) int { return strings.Compare(a.Name, b.Name) })
		SortByStep(swatches, swatchName)
		groups = append(groups, PaletteGroup{Category: cat, Swatches: swatches})
	}
	return groups
}

// prefixRank maps the title-cased first segment of each hyphenated name to the
// position it first appears at.
func prefixRank(colors *scss.Table[string]) map[string]int {
	title := cases.Title(language.Und)
	rank := map[string]int{}
	for name := range colors.All() {
		if slices.Contains(globalNames, name) {
			continue
		}
		prefix, _, found := strings.Cut(name, "-")
		if !found {
			continue
		}
		key := title.String(prefix)
		if _, ok := rank[key]; !ok {
			rank[key] = len(rank)
		}
	}
	return rank
}

func swatchName(s Swatch) string { return s.Name }
