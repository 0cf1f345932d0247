package quicksort

import "cmp"

// Search looks for target in the sorted slice v. It returns the index of the first element that is
// not less than target and whether that element equals target. If target is greater than every
// element, the index is len(v).
func Search[T cmp.Ordered](v []T, target T) (int, bool) {
	return SearchFunc(v, target, cmp.Less[T])
}

// SearchFunc is like Search for a slice sorted by less.
func SearchFunc[T any](v []T, target T, less func(a, b T) bool) (int, bool) {
	lo, hi := 0, len(v)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if less(v[mid], target) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo, lo < len(v) && !less(target, v[lo])
}
