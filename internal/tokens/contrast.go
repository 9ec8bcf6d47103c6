package tokens

import "github.com/lucasb-eyer/go-colorful"

const (
	darkLightness    = 0.5
	outlineLightness = 0.985
)

// lightness returns the CIE L* of a hex color scaled to 0..1. The alpha digits of
// #rgba and #rrggbbaa values are dropped.
func lightness(hex string) (float64, bool) {
	switch len(hex) {
	case 5:
		hex = hex[:4]
	case 9:
		hex = hex[:7]
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0, false
	}
	l, _, _ := c.Lab()
	return l, true
}

// IsDark reports whether light text reads better on hex than dark text.
func IsDark(hex string) bool {
	l, ok := lightness(hex)
	return ok && l < darkLightness
}

// NeedsOutline reports whether a swatch of hex would vanish against a white page.
func NeedsOutline(hex string) bool {
	l, ok := lightness(hex)
	return ok && l >= outlineLightness
}

// SampleTextColor is the text color for a sample rendered on background hex.
func SampleTextColor(hex string) string {
	if IsDark(hex) {
		return "#ffffff"
	}
	return "#1e293b"
}
