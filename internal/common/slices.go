package common

import (
	"cmp"
	"slices"
)

// NilIfEmpty returns nil for an empty slice and the slice itself otherwise.
// Resolved lists use nil to mean "absent", never an empty list.
func NilIfEmpty[S ~[]E, E any](s S) S {
	if len(s) == 0 {
		return nil
	}

	return s
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[M ~map[K]V, K cmp.Ordered, V any](m M) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}
