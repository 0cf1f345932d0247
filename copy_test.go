package quicksort

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSorted(t *testing.T) {
	for _, tt := range sortTests {
		t.Run(tt.name, func(t *testing.T) {
			in := slices.Clone(tt.in)
			got := Sorted(in)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Sorted(%v) result is different (-want +got):\n%s", tt.in, diff)
			}
			if diff := cmp.Diff(tt.in, in); diff != "" {
				t.Errorf("Sorted(%v) modified its input (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestSorted_DoesNotAlias(t *testing.T) {
	in := []int{1}
	got := Sorted(in)
	got[0] = 2
	if in[0] != 1 {
		t.Errorf("result of Sorted aliases its input")
	}
}

func TestSorted_MatchesSort(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	for range 100 {
		in := make([]int, r.IntN(200))
		for i := range in {
			in[i] = r.IntN(50)
		}
		want := Sort(slices.Clone(in))
		got := Sorted(in)
		if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("Sorted(%v) disagrees with Sort (-want +got):\n%s", in, diff)
		}
	}
}

func TestSortedFunc(t *testing.T) {
	got := SortedFunc([]string{"ccc", "a", "bb", "dddd", ""}, func(a, b string) bool { return len(a) < len(b) })
	want := []string{"", "a", "bb", "ccc", "dddd"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SortedFunc result is different (-want +got):\n%s", diff)
	}
}
