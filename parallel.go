package quicksort

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// sortParallel sorts v[low:high+1]. Whenever the right side of a partition holds more than
// threshold elements, it is handed to another goroutine. At most GOMAXPROCS goroutines run at a
// time. Sides at or below the threshold, or sides for which no goroutine is available, are sorted
// by the current goroutine. It returns once every range is sorted.
//
// The two sides of a partition never overlap, so goroutines never touch the same element.
func sortParallel[T any](v []T, low, high int, less func(a, b T) bool, policy Pivot, threshold int) {
	// The group is only used to limit and join goroutines, sorting never fails.
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	var sortSpan func(low, high int)
	sortSpan = func(low, high int) {
		for high-low+1 > threshold {
			if policy != PivotLast {
				movePivot(v, low, high, less, policy)
			}
			p := PartitionFunc(v, low, high, less)
			right := span{p + 1, high}
			if !offload(&g, right, threshold, sortSpan) {
				sortRange(v, right.low, right.high, less, policy)
			}
			high = p - 1
		}
		sortRange(v, low, high, less, policy)
	}

	sortSpan(low, high)
	_ = g.Wait()
}

// offload starts sortSpan for s on another goroutine if s is larger than threshold and the group
// has room for another goroutine. It reports whether it did.
func offload(g *errgroup.Group, s span, threshold int, sortSpan func(low, high int)) bool {
	if s.high-s.low+1 <= threshold {
		return false
	}
	return g.TryGo(func() error {
		sortSpan(s.low, s.high)
		return nil
	})
}
