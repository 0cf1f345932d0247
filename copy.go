package quicksort

import (
	"cmp"
	"slices"
)

// Sorted returns a sorted copy of v. v itself is not modified.
//
// Sorted is the straightforward functional formulation of quicksort: the first element is the
// pivot, the remaining elements are split into a slice of smaller elements and a slice of greater
// or equal elements, and the sorted halves are joined around the pivot. It allocates on every level
// and recurses once per pivot, so it is mainly useful as a reference for the in-place sorts.
func Sorted[T cmp.Ordered](v []T) []T {
	return SortedFunc(v, cmp.Less[T])
}

// SortedFunc is like Sorted but orders elements using less.
func SortedFunc[T any](v []T, less func(a, b T) bool) []T {
	if len(v) <= 1 {
		return slices.Clone(v)
	}

	pivot := v[0]
	var left, right []T
	for _, x := range v[1:] {
		if less(x, pivot) {
			left = append(left, x)
		} else {
			right = append(right, x)
		}
	}

	ret := make([]T, 0, len(v))
	ret = append(ret, SortedFunc(left, less)...)
	ret = append(ret, pivot)
	ret = append(ret, SortedFunc(right, less)...)
	return ret
}
