package tokens

import (
	"regexp"
	"slices"
	"strconv"
)

var stepSuffix = regexp.MustCompile(`-(\d+)$`)

// StepOf returns the numeric shade suffix of a token name (`red-600` → 600).
// Names without a suffix report ok=false.
func StepOf(name string) (int, bool) {
	m := stepSuffix.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// SortByStep orders items so that names without a step come first, followed by
// ascending step value. Ties keep their input order.
func SortByStep[T any](items []T, name func(T) string) {
	slices.SortStableFunc(items, func(a, b T) int {
		sa, okA := StepOf(name(a))
		sb, okB := StepOf(name(b))
		switch {
		case !okA && !okB:
			return 0
		case !okA:
			return -1
		case !okB:
			return 1
		}
		return sa - sb
	})
}
