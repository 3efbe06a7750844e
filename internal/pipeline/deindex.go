package pipeline

import "strconv"

// Deref resolves the engine's indexed payload format. The engine stores
// repeated values once in a flat table and references them elsewhere by
// position as a digit-string; Deref rebuilds the fully materialized value.
//
// A digit-string within the table's bounds is replaced by the dereferenced
// table entry, which may itself chain through further indices. Maps and
// slices are rebuilt with every value resolved; keys and all other scalars
// pass through untouched.
//
// The table must be acyclic. There is no cycle guard: a self-referential
// table recurses without bound.
func Deref(v any, table []any) any {
	switch val := v.(type) {
	case string:
		if idx, ok := tableIndex(val); ok && idx < len(table) {
			return Deref(table[idx], table)
		}
		return val
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, elem := range val {
			out[k] = Deref(elem, table)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = Deref(elem, table)
		}
		return out
	default:
		return v
	}
}

// tableIndex reports whether s is a string of decimal digits, and its value.
func tableIndex(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		// Digits but too large to be an index.
		return 0, false
	}
	return n, true
}
