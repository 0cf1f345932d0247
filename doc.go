// Package quicksort implements in-place quicksort over slices of ordered elements.
//
// The in-place sorts partition a range around a pivot with a Lomuto scan and then process both
// sides independently until every range holds at most one element. Pending ranges are kept on an
// explicit stack rather than the call stack. The larger side of a partition is always deferred, so
// auxiliary space stays within O(log n) even when the partitions are maximally unbalanced.
//
// The default pivot is the last element of a range. With that policy, already sorted and reverse
// sorted input take O(n²) comparisons; use [WithPivot] to pick another policy for such input.
//
// None of the sorts is stable. Elements that compare equal may end up in any relative order.
package quicksort
