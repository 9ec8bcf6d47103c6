package scss

import (
	"regexp"
	"slices"
)

var (
	borderAdditivePattern = regexp.MustCompile(`\.(border(?:-[a-z0-9-]+)?)\s*{`)
	borderWidthPattern    = regexp.MustCompile(`\.(border-[0-5])\s*{`)
	borderColorPattern    = regexp.MustCompile(`\.(border-(?:primary|secondary|success|warning|error|danger|info|light|dark|white|black|positive|negative|neutral))\s*{`)
	borderRadiusPattern   = regexp.MustCompile(`\.(rounded(?:-[a-z0-9-]+)?)\s*{`)
	borderOpacityPattern  = regexp.MustCompile(`\.(border-opacity-(?:0|10|25|50|75|100))\s*{`)

	// StackPattern matches the flexbox stack helpers.
	StackPattern = regexp.MustCompile(`\.((?:v|h)stack)\s*{`)
	// VerticalRulePattern matches the vertical rule helper.
	VerticalRulePattern = regexp.MustCompile(`\.(vr)\s*{`)
)

// additiveBorders are the side/add/remove helpers; other `.border-*` selectors
// belong to the width, color and opacity groups.
var additiveBorders = []string{
	"border", "border-0",
	"border-top", "border-top-0",
	"border-end", "border-end-0",
	"border-bottom", "border-bottom-0",
	"border-start", "border-start-0",
}

// BorderClasses groups the border utility selectors found in the borders source.
type BorderClasses struct {
	Additive []string
	Width    []string
	Color    []string
	Radius   []string
	Opacity  []string
}

// Len returns the total number of classes across all groups.
func (b BorderClasses) Len() int {
	return len(b.Additive) + len(b.Width) + len(b.Color) + len(b.Radius) + len(b.Opacity)
}

// ExtractBorders sorts border utility selectors into their groups.
func ExtractBorders(content string) BorderClasses {
	additive := ExtractClasses(content, borderAdditivePattern)
	additive = slices.DeleteFunc(additive, func(name string) bool {
		return !slices.Contains(additiveBorders, name)
	})
	return BorderClasses{
		Additive: additive,
		Width:    ExtractClasses(content, borderWidthPattern),
		Color:    ExtractClasses(content, borderColorPattern),
		Radius:   ExtractClasses(content, borderRadiusPattern),
		Opacity:  ExtractClasses(content, borderOpacityPattern),
	}
}

// ExtractClasses returns the first capture group of every match, de-duplicated,
// in order of first appearance.
func ExtractClasses(content string, re *regexp.Regexp) []string {
	var classes []string
	seen := make(map[string]bool)
	for _, m := range re.FindAllStringSubmatch(content, -1) {
		if len(m) < 2 || seen[m[1]] {
			continue
		}
		seen[m[1]] = true
		classes = append(classes, m[1])
	}
	return classes
}
