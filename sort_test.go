package quicksort

import (
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var sortTests = []struct {
	name string
	in   []int
	want []int
}{
	{"empty", []int{}, []int{}},
	{"nil", nil, nil},
	{"single", []int{1}, []int{1}},
	{"two_sorted", []int{1, 2}, []int{1, 2}},
	{"two_reversed", []int{2, 1}, []int{1, 2}},
	{"mixed", []int{3, 1, 4, 1, 5, 9, 2, 6}, []int{1, 1, 2, 3, 4, 5, 6, 9}},
	{"reversed", []int{5, 4, 3, 2, 1}, []int{1, 2, 3, 4, 5}},
	{"sorted", []int{1, 2, 3, 4, 5}, []int{1, 2, 3, 4, 5}},
	{"all_equal", []int{1, 1, 1}, []int{1, 1, 1}},
	{"negative", []int{0, -3, 7, -3, 2}, []int{-3, -3, 0, 2, 7}},
	{"interleaved", []int{3, 4, 1, 2}, []int{1, 2, 3, 4}},
}

var pivots = []Pivot{PivotLast, PivotFirst, PivotMedianOfThree, PivotRandom}

func TestSort(t *testing.T) {
	for _, pivot := range pivots {
		for _, tt := range sortTests {
			t.Run(pivot.String()+"/"+tt.name, func(t *testing.T) {
				in := slices.Clone(tt.in)
				got := Sort(in, WithPivot(pivot))
				if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
					t.Errorf("Sort(%v) result is different (-want +got):\n%s", tt.in, diff)
				}
				if len(in) > 0 && &got[0] != &in[0] {
					t.Errorf("Sort(%v) returned a different slice", tt.in)
				}
			})
		}
	}
}

func TestSortRange(t *testing.T) {
	tests := []struct {
		name      string
		in        []int
		low, high int
		want      []int
	}{
		{"full", []int{3, 2, 1}, 0, 2, []int{1, 2, 3}},
		{"prefix", []int{3, 2, 1, 0}, 0, 1, []int{2, 3, 1, 0}},
		{"suffix", []int{3, 2, 1, 0}, 2, 3, []int{3, 2, 0, 1}},
		{"middle", []int{9, 5, 4, 3, 0}, 1, 3, []int{9, 3, 4, 5, 0}},
		{"single_element", []int{2, 1}, 1, 1, []int{2, 1}},
		{"empty_range", []int{2, 1}, 1, 0, []int{2, 1}},
		{"empty_slice", []int{}, 0, -1, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SortRange(slices.Clone(tt.in), tt.low, tt.high)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SortRange(%v, %d, %d) result is different (-want +got):\n%s", tt.in, tt.low, tt.high, diff)
			}
		})
	}
}

func TestSortFunc(t *testing.T) {
	in := []string{"pear", "Apple", "fig", "banana", "apple"}
	got := SortFunc(in, func(a, b string) bool {
		return strings.ToLower(a) < strings.ToLower(b) || strings.ToLower(a) == strings.ToLower(b) && a < b
	})
	want := []string{"Apple", "apple", "banana", "fig", "pear"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SortFunc result is different (-want +got):\n%s", diff)
	}
}

func TestSortFunc_Descending(t *testing.T) {
	got := SortFunc([]int{3, 1, 4, 1, 5}, func(a, b int) bool { return a > b })
	want := []int{5, 4, 3, 1, 1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SortFunc result is different (-want +got):\n%s", diff)
	}
}

func TestSortInts(t *testing.T) {
	for _, tt := range sortTests {
		t.Run(tt.name, func(t *testing.T) {
			got := SortInts(slices.Clone(tt.in))
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("SortInts(%v) result is different (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestSort_Random(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for _, n := range []int{2, 3, 10, 100, 1000, 5000} {
		for _, pivot := range pivots {
			in := make([]int, n)
			for i := range in {
				in[i] = r.IntN(n/2 + 1)
			}
			want := slices.Clone(in)
			slices.Sort(want)

			got := Sort(slices.Clone(in), WithPivot(pivot))
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Sort of %d random elements with %v is different (-want +got):\n%s", n, pivot, diff)
			}
		}
	}
}

func TestSort_Adversarial(t *testing.T) {
	const n = 5000
	inputs := map[string][]int{
		"sorted":   make([]int, n),
		"reversed": make([]int, n),
		"equal":    make([]int, n),
		"organ":    make([]int, n),
	}
	for i := range n {
		inputs["sorted"][i] = i
		inputs["reversed"][i] = n - i
		inputs["equal"][i] = 7
		inputs["organ"][i] = min(i, n-i)
	}

	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			got := Sort(slices.Clone(in))
			if !IsSorted(got) {
				t.Errorf("Sort(%s) is not sorted", name)
			}
		})
	}
}

func TestSort_StackDepth(t *testing.T) {
	debug = true
	t.Cleanup(func() { debug = false })

	const n = 1 << 14
	r := rand.New(rand.NewPCG(3, 4))
	inputs := map[string][]int{
		"sorted":   make([]int, n),
		"reversed": make([]int, n),
		"equal":    make([]int, n),
		"random":   make([]int, n),
	}
	for i := range n {
		inputs["sorted"][i] = i
		inputs["reversed"][i] = n - i
		inputs["equal"][i] = 7
		inputs["random"][i] = r.IntN(n)
	}

	for name, in := range inputs {
		for _, pivot := range pivots {
			t.Run(name+"/"+pivot.String(), func(t *testing.T) {
				got := Sort(slices.Clone(in), WithPivot(pivot))
				if !IsSorted(got) {
					t.Errorf("Sort(%s) with %v is not sorted", name, pivot)
				}
			})
		}
		t.Run(name+"/ints", func(t *testing.T) {
			if got := SortInts(slices.Clone(in)); !IsSorted(got) {
				t.Errorf("SortInts(%s) is not sorted", name)
			}
		})
	}
}

func TestSort_Floats(t *testing.T) {
	got := Sort([]float64{2.5, -1, 0, 2.5, -0.5})
	want := []float64{-1, -0.5, 0, 2.5, 2.5}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Sort result is different (-want +got):\n%s", diff)
	}
}

func TestSort_Idempotent(t *testing.T) {
	in := Sort([]int{9, 8, 7, 1, 2, 3, 5, 5})
	want := slices.Clone(in)
	got := Sort(in)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("sorting a sorted slice changed it (-want +got):\n%s", diff)
	}
}

func TestIsSorted(t *testing.T) {
	tests := []struct {
		in   []int
		want bool
	}{
		{nil, true},
		{[]int{1}, true},
		{[]int{1, 1, 2}, true},
		{[]int{2, 1}, false},
		{[]int{1, 3, 2}, false},
	}

	for _, tt := range tests {
		if got := IsSorted(tt.in); got != tt.want {
			t.Errorf("IsSorted(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func BenchmarkSort(b *testing.B) {
	v := make([]int, 100)
	for b.Loop() {
		b.StopTimer()
		for i := range v {
			v[i] = rand.Int()
		}
		b.StartTimer()
		Sort(v)
	}
}

func BenchmarkSortFunc(b *testing.B) {
	v := make([]int, 100)
	for b.Loop() {
		b.StopTimer()
		for i := range v {
			v[i] = rand.Int()
		}
		b.StartTimer()
		SortFunc(v, func(a, b int) bool { return a < b })
	}
}

func BenchmarkSortInts(b *testing.B) {
	v := make([]int, 100)
	for b.Loop() {
		b.StopTimer()
		for i := range v {
			v[i] = rand.Int()
		}
		b.StartTimer()
		SortInts(v)
	}
}
