package scss

import "regexp"

var mixinPattern = regexp.MustCompile(`@mixin\s+([a-z0-9-]+)\s*(?:\(([^)]*)\))?\s*{`)

// Mixin is a `@mixin` declaration with its raw parameter list.
type Mixin struct {
	Name   string
	Params string
}

// ExtractMixins returns mixin declarations in source order.
func ExtractMixins(content string) []Mixin {
	var mixins []Mixin
	for _, m := range mixinPattern.FindAllStringSubmatch(content, -1) {
		mixins = append(mixins, Mixin{Name: m[1], Params: m[2]})
	}
	return mixins
}
