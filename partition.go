package quicksort

import "cmp"

// Partition rearranges v[low:high+1] around the pivot v[high] and returns the pivot's final index
// p. Afterwards, every element in v[low:p] is less than v[p] and every element in v[p+1:high+1] is
// greater than or equal to v[p]. Elements outside of the range are not touched.
//
// low <= high must hold and both must be valid indices of v. Sorting functions only call it on
// ranges of at least two elements.
func Partition[T cmp.Ordered](v []T, low, high int) int {
	return PartitionFunc(v, low, high, cmp.Less[T])
}

// PartitionFunc is like Partition but orders elements using less.
func PartitionFunc[T any](v []T, low, high int, less func(a, b T) bool) int {
	pivot := v[high]
	i := low
	for j := low; j < high; j++ {
		if less(v[j], pivot) {
			v[i], v[j] = v[j], v[i]
			i++
		}
	}
	v[i], v[high] = v[high], v[i]
	return i
}
