package tokens

import (
	"slices"
	"strconv"
	"strings"

	"git.home.luguber.info/inful/rexdocs/internal/scss"
)

// SizeOrder is the display order of font size keys.
var SizeOrder = []string{"3xs", "2xs", "xs", "sm", "base", "lg", "xl", "2xl", "3xl", "4xl", "5xl", "6xl", "7xl", "8xl", "9xl"}

// WeightOrder is the display order of font weight keys.
var WeightOrder = []string{"light", "normal", "medium", "semibold", "bold", "black"}

// Entry is a generic ordered key/value pair.
type Entry[V any] struct {
	Key   string
	Value V
}

// SortBreakpoints orders breakpoints by pixel value; equal values keep source order.
func SortBreakpoints(bps *scss.Table[string]) []Entry[string] {
	entries := entriesOf(bps)
	slices.SortStableFunc(entries, func(a, b Entry[string]) int {
		return pixels(a.Value) - pixels(b.Value)
	})
	return entries
}

// OrderedSizes lists font sizes in SizeOrder followed by any other keys in source order.
func OrderedSizes(sizes *scss.Table[scss.FontSize]) []Entry[scss.FontSize] {
	return fixedOrder(sizes, SizeOrder)
}

// OrderedWeights lists font weights in WeightOrder followed by any other keys in source order.
func OrderedWeights(weights *scss.Table[string]) []Entry[string] {
	return fixedOrder(weights, WeightOrder)
}

func fixedOrder[V any](t *scss.Table[V], order []string) []Entry[V] {
	entries := make([]Entry[V], 0, t.Len())
	for _, key := range order {
		if v, ok := t.Get(key); ok {
			entries = append(entries, Entry[V]{Key: key, Value: v})
		}
	}
	for key, v := range t.All() {
		if !slices.Contains(order, key) {
			entries = append(entries, Entry[V]{Key: key, Value: v})
		}
	}
	return entries
}

func entriesOf[V any](t *scss.Table[V]) []Entry[V] {
	entries := make([]Entry[V], 0, t.Len())
	for k, v := range t.All() {
		entries = append(entries, Entry[V]{Key: k, Value: v})
	}
	return entries
}

// EntriesOf lists a table in source order.
func EntriesOf[V any](t *scss.Table[V]) []Entry[V] { return entriesOf(t) }

func pixels(v string) int {
	n, err := strconv.Atoi(strings.TrimSuffix(v, "px"))
	if err != nil {
		return 0
	}
	return n
}
