package scss

import "iter"

// Table is a string-keyed map that remembers first-insertion order.
// Setting an existing key replaces its value without moving it.
type Table[V any] struct {
	keys   []string
	values map[string]V
}

// NewTable returns an empty table.
func NewTable[V any]() *Table[V] {
	return &Table[V]{values: make(map[string]V)}
}

// Set stores value under key.
func (t *Table[V]) Set(key string, value V) {
	if _, ok := t.values[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.values[key] = value
}

// Get returns the value stored under key.
func (t *Table[V]) Get(key string) (V, bool) {
	if t == nil {
		var zero V
		return zero, false
	}
	v, ok := t.values[key]
	return v, ok
}

// Has reports whether key is present.
func (t *Table[V]) Has(key string) bool {
	_, ok := t.Get(key)
	return ok
}

// Len returns the number of entries.
func (t *Table[V]) Len() int {
	if t == nil {
		return 0
	}
	return len(t.keys)
}

// Keys returns the keys in insertion order.
func (t *Table[V]) Keys() []string {
	if t == nil {
		return nil
	}
	return append([]string(nil), t.keys...)
}

// All iterates entries in insertion order.
func (t *Table[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		if t == nil {
			return
		}
		for _, k := range t.keys {
			if !yield(k, t.values[k]) {
				return
			}
		}
	}
}
