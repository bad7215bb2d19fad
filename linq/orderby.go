package linq

import "sort"

// orderKey is one level of a multi-key ordering.
// cmp returns a negative number when a sorts before b in ascending order.
type orderKey[T any] struct {
	cmp  func(a, b T) int
	desc bool
}

func asc[T any](cmp func(a, b T) int) orderKey[T] {
	return orderKey[T]{cmp: cmp}
}

func desc[T any](cmp func(a, b T) int) orderKey[T] {
	return orderKey[T]{cmp: cmp, desc: true}
}

// orderBy returns a sorted copy of items. Each key breaks ties left by the
// previous one and items equal on every key keep their input order.
func orderBy[T any](items []T, keys ...orderKey[T]) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)

	sort.SliceStable(sorted, func(i, j int) bool {
		for _, key := range keys {
			c := key.cmp(sorted[i], sorted[j])
			if c == 0 {
				continue
			}
			if key.desc {
				return c > 0
			}
			return c < 0
		}
		return false
	})

	return sorted
}
