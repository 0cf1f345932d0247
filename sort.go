package quicksort

import (
	"cmp"
	"math/bits"
)

//go:generate go run ./specialize -o gen_sort_ints.go sort.go partition.go

// Sort sorts v in increasing order and returns it.
func Sort[T cmp.Ordered](v []T, opts ...Option) []T {
	return SortRangeFunc(v, 0, len(v)-1, cmp.Less[T], opts...)
}

// SortRange sorts v[low:high+1] in increasing order and returns v. A range with low >= high is
// already sorted and left as is.
func SortRange[T cmp.Ordered](v []T, low, high int, opts ...Option) []T {
	return SortRangeFunc(v, low, high, cmp.Less[T], opts...)
}

// SortFunc sorts v in increasing order as determined by less and returns it. less must describe a
// strict weak ordering.
func SortFunc[T any](v []T, less func(a, b T) bool, opts ...Option) []T {
	return SortRangeFunc(v, 0, len(v)-1, less, opts...)
}

// SortRangeFunc sorts v[low:high+1] in increasing order as determined by less and returns v.
func SortRangeFunc[T any](v []T, low, high int, less func(a, b T) bool, opts ...Option) []T {
	if low >= high {
		return v
	}
	c := fromOptions(opts)
	if c.threshold > 0 && high-low+1 > c.threshold {
		sortParallel(v, low, high, less, c.pivot, c.threshold)
		return v
	}
	sortRange(v, low, high, less, c.pivot)
	return v
}

// SortInts sorts v in increasing order and returns it. It behaves like Sort with the default
// options, but compares with < directly instead of calling through a function value.
func SortInts(v []int) []int {
	sortRangeInts(v, 0, len(v)-1)
	return v
}

// IsSorted reports whether v is sorted in increasing order.
func IsSorted[T cmp.Ordered](v []T) bool {
	return IsSortedFunc(v, cmp.Less[T])
}

// IsSortedFunc reports whether v is sorted in increasing order as determined by less.
func IsSortedFunc[T any](v []T, less func(a, b T) bool) bool {
	for i := 1; i < len(v); i++ {
		if less(v[i], v[i-1]) {
			return false
		}
	}
	return true
}

// debug enables invariant checks in the sort loops.
var debug = false

// span is a closed range [low, high] of indices that still needs sorting.
type span struct {
	low, high int
}

// sortRange sorts v[low:high+1]. The larger side of each partition is pushed onto a stack and the
// loop continues with the smaller side, which keeps the stack below log2(n) entries.
func sortRange[T any](v []T, low, high int, less func(a, b T) bool, policy Pivot) {
	var stack []span
	n := high - low + 1
	for {
		for low < high {
			if policy != PivotLast {
				movePivot(v, low, high, less, policy)
			}
			p := PartitionFunc(v, low, high, less)
			if p-low < high-p {
				stack = append(stack, span{p + 1, high})
				high = p - 1
			} else {
				stack = append(stack, span{low, p - 1})
				low = p + 1
			}
			if debug {
				if len(stack) > bits.Len(uint(n)) {
					panic("invariant violation")
				}
			}
		}
		if len(stack) == 0 {
			return
		}
		next := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		low, high = next.low, next.high
	}
}
