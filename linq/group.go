package linq

// group is the set of items sharing one key
type group[K comparable, V any] struct {
	key   K
	items []V
}

// groupBy partitions items by key. Groups appear in the order their key is
// first encountered and items keep their input order inside a group.
func groupBy[K comparable, V any](items []V, keyFn func(V) K) []group[K, V] {
	index := make(map[K]int)
	groups := make([]group[K, V], 0)

	for _, item := range items {
		key := keyFn(item)
		if i, exists := index[key]; exists {
			groups[i].items = append(groups[i].items, item)
			continue
		}
		index[key] = len(groups)
		groups = append(groups, group[K, V]{key: key, items: []V{item}})
	}

	return groups
}

// filter returns the items matching pred, in input order
func filter[T any](items []T, pred func(T) bool) []T {
	result := make([]T, 0)
	for _, item := range items {
		if pred(item) {
			result = append(result, item)
		}
	}
	return result
}
