// Package harness checks the sort variants against a trusted ordering.
package harness

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/fatih/color"
	"znkr.io/diff"
	"znkr.io/diff/textdiff"
	"znkr.io/quicksort"
	"znkr.io/quicksort/qsort/seq"
)

// ErrFailed is returned by Report if at least one result is wrong.
var ErrFailed = errors.New("wrong sort result")

// Case is a named input sequence.
type Case struct {
	Name  string
	Input *seq.Sequence
}

// DefaultCases returns the fixed set of inputs every variant must handle, as sequences of kind.
func DefaultCases(kind seq.Kind) []Case {
	shapes := []struct {
		name string
		v    []int
	}{
		{"mixed", []int{3, 1, 4, 1, 5, 9, 2, 6}},
		{"single", []int{1}},
		{"empty", []int{}},
		{"reversed", []int{5, 4, 3, 2, 1}},
		{"sorted", []int{1, 2, 3, 4, 5}},
		{"all-equal", []int{1, 1, 1}},
	}
	ret := make([]Case, 0, len(shapes))
	for _, s := range shapes {
		ret = append(ret, Case{s.name, convert(kind, s.v)})
	}
	return ret
}

// convert turns v into a sequence of kind that has the same order as v.
func convert(kind seq.Kind, v []int) *seq.Sequence {
	switch kind {
	case seq.Float:
		fs := make([]float64, len(v))
		for i, x := range v {
			fs[i] = float64(x) / 4
		}
		return seq.OfFloats(fs...)
	case seq.String:
		ss := make([]string, len(v))
		for i, x := range v {
			ss[i] = strings.Repeat("z", x)
		}
		return seq.OfStrings(ss...)
	default:
		return seq.OfInts(v...)
	}
}

// alphabet is small so that random strings share prefixes and repeat.
const alphabet = "abc"

// RandomCases returns n cases of random values of kind with up to size elements each. Values are
// drawn from a narrow range, so most cases contain duplicates.
func RandomCases(r *rand.Rand, kind seq.Kind, n, size int) []Case {
	ret := make([]Case, 0, n)
	for i := range n {
		name := fmt.Sprintf("random-%s-%d", kind, i)
		l := r.IntN(size + 1)
		switch kind {
		case seq.Float:
			v := make([]float64, l)
			for j := range v {
				v[j] = float64(r.IntN(size+1)-size/2) / 4
			}
			ret = append(ret, Case{name, seq.OfFloats(v...)})
		case seq.String:
			v := make([]string, l)
			for j := range v {
				var sb strings.Builder
				for range r.IntN(4) {
					sb.WriteByte(alphabet[r.IntN(len(alphabet))])
				}
				v[j] = sb.String()
			}
			ret = append(ret, Case{name, seq.OfStrings(v...)})
		default:
			v := make([]int, l)
			for j := range v {
				v[j] = r.IntN(size+1) - size/2
			}
			ret = append(ret, Case{name, seq.OfInts(v...)})
		}
	}
	return ret
}

// Result is the outcome of sorting one case with one variant.
type Result struct {
	Case    Case
	Variant seq.Variant
	Output  *seq.Sequence
	Want    *seq.Sequence
}

// OK reports whether the output matches the trusted ordering.
func (r *Result) OK() bool { return r.Output.Equal(r.Want) }

// Run sorts every case with every variant that supports the case's kind. The parallel variant
// sorts ranges larger than threshold concurrently; a threshold <= 0 keeps the variant's default.
// opts are passed to every variant. The inputs are not modified.
func Run(cases []Case, variants []seq.Variant, threshold int, opts ...quicksort.Option) ([]Result, error) {
	parallelOpts := slices.Clip(opts)
	if threshold > 0 {
		parallelOpts = append(parallelOpts, quicksort.WithParallel(threshold))
	}

	var ret []Result
	for _, c := range cases {
		want := c.Input.Trusted()
		for _, v := range variants {
			if !v.Supports(c.Input.Kind) {
				continue
			}
			vopts := opts
			if v == seq.Parallel {
				vopts = parallelOpts
			}
			out, err := c.Input.Clone().Sort(v, vopts...)
			if err != nil {
				return nil, fmt.Errorf("sorting %s with %s: %v", c.Name, v, err)
			}
			ret = append(ret, Result{
				Case:    c,
				Variant: v,
				Output:  out,
				Want:    want,
			})
		}
	}
	return ret, nil
}

// Report writes one block per result to w: the input, the output and whether it is correct. Wrong
// outputs are followed by a line diff against the trusted ordering.
func Report(w io.Writer, results []Result) error {
	pass := color.New(color.FgGreen).SprintFunc()
	fail := color.New(color.FgRed, color.Bold).SprintFunc()

	failed := 0
	for _, r := range results {
		status := pass("PASS")
		if !r.OK() {
			status = fail("FAIL")
			failed++
		}
		fmt.Fprintf(w, "%s %s/%s\n", status, r.Case.Name, r.Variant)
		fmt.Fprintf(w, "  Input:   %v\n", r.Case.Input)
		fmt.Fprintf(w, "  Output:  %v\n", r.Output)
		fmt.Fprintf(w, "  Correct: %v\n", r.OK())
		if !r.OK() {
			fmt.Fprintf(w, "  Diff (-want +got):\n%s", Diff(r.Want, r.Output))
		}
		fmt.Fprintln(w)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d results: %w", failed, len(results), ErrFailed)
	}
	fmt.Fprintf(w, "All %d results correct\n", len(results))
	return nil
}

// Diff returns a line diff between want and got, one value per line, prefixed with "-" for values
// only in want, "+" for values only in got, and " " for matches.
func Diff(want, got *seq.Sequence) string {
	var sb strings.Builder
	for _, edit := range textdiff.Edits(text(want), text(got)) {
		switch edit.Op {
		case diff.Match:
			sb.WriteString("    ")
		case diff.Delete:
			sb.WriteString("   -")
		case diff.Insert:
			sb.WriteString("   +")
		}
		sb.WriteString(edit.Line)
		if !strings.HasSuffix(edit.Line, "\n") {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func text(s *seq.Sequence) string {
	lines := s.Lines()
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
