// Package reconcile classifies a submitted collection against its original
// by key membership, producing the create/update/delete sets a save
// orchestration needs to issue.
package reconcile

// Result holds the three disjoint sets produced by Diff
type Result[T any] struct {
	ToCreate []T // present only in the submission
	ToUpdate []T // present in both, submitted version kept
	ToDelete []T // present only in the original
}

// Diff compares the original and submitted collections by the key extracted
// from each item. Items whose key appears in both collections land in
// ToUpdate (carrying the submitted version); submission-only items land in
// ToCreate; original-only items land in ToDelete. Order within each set
// follows the input order.
func Diff[T any, K comparable](original, submitted []T, key func(T) K) Result[T] {
	originalKeys := make(map[K]struct{}, len(original))
	for _, item := range original {
		originalKeys[key(item)] = struct{}{}
	}

	submittedKeys := make(map[K]struct{}, len(submitted))
	for _, item := range submitted {
		submittedKeys[key(item)] = struct{}{}
	}

	var result Result[T]
	for _, item := range submitted {
		if _, ok := originalKeys[key(item)]; ok {
			result.ToUpdate = append(result.ToUpdate, item)
		} else {
			result.ToCreate = append(result.ToCreate, item)
		}
	}
	for _, item := range original {
		if _, ok := submittedKeys[key(item)]; !ok {
			result.ToDelete = append(result.ToDelete, item)
		}
	}
	return result
}

// Move returns a copy of the slice with the item at from moved to to,
// preserving the relative order of all other items. Out-of-range indices
// return the slice unchanged.
func Move[T any](items []T, from, to int) []T {
	moved := make([]T, len(items))
	copy(moved, items)
	if from < 0 || from >= len(moved) || to < 0 || to >= len(moved) || from == to {
		return moved
	}
	item := moved[from]
	if from < to {
		copy(moved[from:], moved[from+1:to+1])
	} else {
		copy(moved[to+1:], moved[to:from])
	}
	moved[to] = item
	return moved
}
