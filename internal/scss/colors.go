package scss

import (
	"regexp"
	"strings"
)

var (
	colorVarPattern = regexp.MustCompile(`\$([a-z0-9-]+):\s*(#[0-9a-fA-F]{3,6}|#[0-9a-fA-F]{8})\s*;`)
	aliasPattern    = regexp.MustCompile(`\$([a-z0-9-]+):\s*\$([a-z0-9-]+)\s*;`)
)

// Alias is a semantic color resolved one level through the palette.
type Alias struct {
	Base  string // palette variable the alias points at
	Value string // resolved hex value
}

// ExtractColorVariables collects `$name: #hex;` declarations. Hex values are upper-cased.
func ExtractColorVariables(content string) *Table[string] {
	colors := NewTable[string]()
	for _, m := range colorVarPattern.FindAllStringSubmatch(content, -1) {
		colors.Set(m[1], strings.ToUpper(m[2]))
	}
	return colors
}

// ExtractThemeMappings collects `$semantic: $base;` declarations whose base is a known
// palette color. Aliases of aliases are not followed.
func ExtractThemeMappings(content string, colors *Table[string]) *Table[Alias] {
	aliases := NewTable[Alias]()
	for _, m := range aliasPattern.FindAllStringSubmatch(content, -1) {
		value, ok := colors.Get(m[2])
		if !ok {
			continue
		}
		aliases.Set(m[1], Alias{Base: m[2], Value: value})
	}
	return aliases
}
