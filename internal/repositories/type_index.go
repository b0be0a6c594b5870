package repositories

// idIndex groups transaction ids under a key, preserving insertion order.
// It is not safe for concurrent use; TransactionRepository guards it.
type idIndex[K comparable] struct {
	ids map[K][]int64
}

func newIDIndex[K comparable]() idIndex[K] {
	return idIndex[K]{ids: make(map[K][]int64)}
}

func (x idIndex[K]) add(key K, id int64) {
	x.ids[key] = append(x.ids[key], id)
}

// get returns the ids stored under key. The slice is shared with the index.
func (x idIndex[K]) get(key K) []int64 {
	return x.ids[key]
}

// snapshot returns a copy that is never nil.
func (x idIndex[K]) snapshot(key K) []int64 {
	ids := x.ids[key]
	out := make([]int64, len(ids))
	copy(out, ids)
	return out
}

// typeIndex maps a type label to the ids of that type.
type typeIndex = idIndex[string]

// childIndex maps a parent id to its direct children.
type childIndex = idIndex[int64]
