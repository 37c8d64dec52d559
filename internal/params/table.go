// Package params stores solver parameters as ordered key -> value lists.
package params

import (
	"iter"
	"reflect"
)

// Table maps parameter names to value lists, preserving insertion order.
// It is not safe for concurrent use.
type Table struct {
	keys   []string
	values map[string][]any
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{values: make(map[string][]any)}
}

// Set stores value under key. Slices and arrays are stored element by
// element; any other value, strings included, becomes a one-element list.
// Setting an existing key replaces its value and keeps its position.
func (t *Table) Set(key string, value any) {
	if _, ok := t.values[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.values[key] = normalize(value)
}

// Get returns the value list stored under key.
func (t *Table) Get(key string) ([]any, bool) {
	v, ok := t.values[key]
	if !ok {
		return nil, false
	}
	return append([]any(nil), v...), true
}

// Keys returns the parameter names in insertion order.
func (t *Table) Keys() []string {
	return append([]string(nil), t.keys...)
}

// Len returns the number of parameters.
func (t *Table) Len() int {
	return len(t.keys)
}

// Entries yields (key, values) pairs in insertion order. The sequence can be
// ranged over any number of times.
func (t *Table) Entries() iter.Seq2[string, []any] {
	return func(yield func(string, []any) bool) {
		for _, k := range t.keys {
			if !yield(k, append([]any(nil), t.values[k]...)) {
				return
			}
		}
	}
}

func normalize(value any) []any {
	if value == nil {
		return []any{nil}
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			// byte slices are text, not sequences
			return []any{string(rv.Bytes())}
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out
	default:
		return []any{value}
	}
}
