package scss

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	breakpointPattern = regexp.MustCompile(`"([^"]+)":\s*(\d+px)`)
	fontSizePattern   = regexp.MustCompile(`\$font-size-([a-z0-9-]+):\s*rem\((\d+)\);`)
	fontWeightPattern = regexp.MustCompile(`\$font-weight-([a-z]+):\s*(\d+);`)
	spacingPattern    = regexp.MustCompile(`\$([a-z]+):\s*(\d+px);`)
	fontFamilyPattern = regexp.MustCompile(`\$font-([a-z0-9-]+):\s*([^;]+);`)
)

// FontSize is a `rem(<px>)` font size token.
type FontSize struct {
	PX  int
	Rem string
}

// Typography holds font size and weight tokens keyed by their suffix (`sm`, `bold`, ...).
type Typography struct {
	Sizes   *Table[FontSize]
	Weights *Table[string]
}

// ExtractBreakpoints collects `"name": <n>px` entries of the breakpoint map.
func ExtractBreakpoints(content string) *Table[string] {
	return collectPairs(breakpointPattern, content)
}

// ExtractTypography collects `$font-size-*: rem(<px>);` and `$font-weight-*: <n>;` tokens.
func ExtractTypography(content string) Typography {
	typo := Typography{Sizes: NewTable[FontSize](), Weights: NewTable[string]()}
	for _, m := range fontSizePattern.FindAllStringSubmatch(content, -1) {
		px, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		typo.Sizes.Set(m[1], FontSize{PX: px, Rem: FormatRem(px)})
	}
	for _, m := range fontWeightPattern.FindAllStringSubmatch(content, -1) {
		typo.Weights.Set(m[1], m[2])
	}
	return typo
}

// ExtractSpacing collects single-word `$name: <n>px;` spacing variables.
func ExtractSpacing(content string) *Table[string] {
	return collectPairs(spacingPattern, content)
}

// ExtractFonts collects `$font-*: <stack>;` font family variables with the stack trimmed.
func ExtractFonts(content string) *Table[string] {
	fonts := NewTable[string]()
	for _, m := range fontFamilyPattern.FindAllStringSubmatch(content, -1) {
		fonts.Set(m[1], strings.TrimSpace(m[2]))
	}
	return fonts
}

// FormatRem converts pixels to rem against a 16px root. Whole numbers keep one
// decimal place, so 16 becomes "1.0rem" and 14 becomes "0.875rem".
func FormatRem(px int) string {
	s := strconv.FormatFloat(float64(px)/16, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s + "rem"
}

func collectPairs(re *regexp.Regexp, content string) *Table[string] {
	t := NewTable[string]()
	for _, m := range re.FindAllStringSubmatch(content, -1) {
		t.Set(m[1], m[2])
	}
	return t
}
