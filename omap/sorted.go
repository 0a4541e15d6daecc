package omap

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// SortedKeys returns the map's keys in ascending order rather than
// insertion order.
func SortedKeys[K constraints.Ordered, V any](m Map[K, V]) []K {
	keys := m.Keys()
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}
