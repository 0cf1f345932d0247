package quicksort

import (
	"fmt"
	"math/rand/v2"
)

// Pivot is a policy for choosing the pivot element of a range.
//
//go:generate go run golang.org/x/tools/cmd/stringer -type=Pivot
type Pivot int

const (
	PivotLast          Pivot = iota // Element at the end of the range
	PivotFirst                      // Element at the start of the range
	PivotMedianOfThree              // Median of the first, middle and last element
	PivotRandom                     // Uniformly chosen element
)

var pivotNames = map[string]Pivot{
	"last":   PivotLast,
	"first":  PivotFirst,
	"median": PivotMedianOfThree,
	"random": PivotRandom,
}

// ParsePivot returns the policy called name, one of "last", "first", "median", or "random".
func ParsePivot(name string) (Pivot, error) {
	p, ok := pivotNames[name]
	if !ok {
		return 0, fmt.Errorf("unknown pivot policy %q", name)
	}
	return p, nil
}

// movePivot swaps the element chosen by policy into v[high], where the partition scan expects it.
// PivotLast leaves the range untouched.
func movePivot[T any](v []T, low, high int, less func(a, b T) bool, policy Pivot) {
	var i int
	switch policy {
	case PivotFirst:
		i = low
	case PivotMedianOfThree:
		i = medianOfThree(v, low, low+(high-low)/2, high, less)
	case PivotRandom:
		i = low + rand.IntN(high-low+1)
	default:
		return
	}
	v[i], v[high] = v[high], v[i]
}

func medianOfThree[T any](v []T, a, b, c int, less func(a, b T) bool) int {
	if less(v[b], v[a]) {
		a, b = b, a
	}
	if less(v[c], v[b]) {
		b = c
		if less(v[b], v[a]) {
			b = a
		}
	}
	return b
}
