package seq

import (
	"cmp"
	"fmt"
	"slices"

	"znkr.io/quicksort"
)

// Variant selects one of the sort implementations.
type Variant string

const (
	InPlace  Variant = "inplace"  // quicksort.Sort
	Copy     Variant = "copy"     // quicksort.Sorted
	Parallel Variant = "parallel" // quicksort.Sort with WithParallel
	Ints     Variant = "ints"     // quicksort.SortInts, int sequences only
)

// Variants lists all variants in a stable order.
var Variants = []Variant{InPlace, Copy, Parallel, Ints}

// DefaultParallelThreshold is the parallel threshold used unless one is given explicitly.
const DefaultParallelThreshold = 4096

// ParseVariant returns the variant called name.
func ParseVariant(name string) (Variant, error) {
	v := Variant(name)
	if !slices.Contains(Variants, v) {
		return "", fmt.Errorf("unknown sort variant %q", name)
	}
	return v, nil
}

// Supports reports whether variant can sort sequences of kind.
func (v Variant) Supports(kind Kind) bool {
	return v != Ints || kind == Int
}

// Sort sorts s using variant. The in-place variants reorder s and return it, Copy returns a new
// sequence and leaves s untouched. opts are passed on to the quicksort package, except for Copy
// and Ints which have no options.
func (s *Sequence) Sort(variant Variant, opts ...quicksort.Option) (*Sequence, error) {
	if !variant.Supports(s.Kind) {
		return nil, fmt.Errorf("variant %s can't sort %s values", variant, s.Kind)
	}
	if variant == Parallel {
		opts = append([]quicksort.Option{quicksort.WithParallel(DefaultParallelThreshold)}, opts...)
	}

	switch s.Kind {
	case Int:
		if variant == Ints {
			quicksort.SortInts(s.Ints)
			return s, nil
		}
		v, ok := sortSlice(s.Ints, variant, opts)
		if !ok {
			return OfInts(v...), nil
		}
		s.Ints = v
	case Float:
		v, ok := sortSlice(s.Floats, variant, opts)
		if !ok {
			return OfFloats(v...), nil
		}
		s.Floats = v
	case String:
		v, ok := sortSlice(s.Strings, variant, opts)
		if !ok {
			return OfStrings(v...), nil
		}
		s.Strings = v
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, s.Kind)
	}
	return s, nil
}

// sortSlice sorts v and reports whether the result is v itself.
func sortSlice[T cmp.Ordered](v []T, variant Variant, opts []quicksort.Option) ([]T, bool) {
	if variant == Copy {
		return quicksort.Sorted(v), false
	}
	return quicksort.Sort(v, opts...), true
}

// Trusted returns a sorted copy of s produced by the standard library. It serves as the reference
// ordering when checking the quicksort variants.
func (s *Sequence) Trusted() *Sequence {
	t := s.Clone()
	slices.Sort(t.Ints)
	slices.Sort(t.Floats)
	slices.Sort(t.Strings)
	return t
}
