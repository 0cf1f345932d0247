package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"znkr.io/quicksort"
	"znkr.io/quicksort/qsort/seq"
)

// sortFlags are the flags shared by all commands that sort input files.
type sortFlags struct {
	kind      string
	variant   string
	pivot     string
	threshold int
}

func (f *sortFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.kind, "kind", string(seq.Int), "element kind: int, float, or string")
	cmd.Flags().StringVar(&f.variant, "variant", string(seq.InPlace), "sort variant: inplace, copy, parallel, or ints")
	cmd.Flags().StringVar(&f.pivot, "pivot", "last", "pivot policy: last, first, median, or random")
	cmd.Flags().IntVar(&f.threshold, "threshold", seq.DefaultParallelThreshold, "minimum range size sorted concurrently by the parallel variant")
}

// sorter is a validated set of sort flags.
type sorter struct {
	kind    seq.Kind
	variant seq.Variant
	opts    []quicksort.Option
}

func (f *sortFlags) sorter() (*sorter, error) {
	kind, err := seq.ParseKind(f.kind)
	if err != nil {
		return nil, err
	}
	variant, err := seq.ParseVariant(f.variant)
	if err != nil {
		return nil, err
	}
	if !variant.Supports(kind) {
		return nil, fmt.Errorf("variant %s can't sort %s values", variant, kind)
	}
	pivot, err := quicksort.ParsePivot(f.pivot)
	if err != nil {
		return nil, err
	}

	opts := []quicksort.Option{quicksort.WithPivot(pivot)}
	if variant == seq.Parallel {
		opts = append(opts, quicksort.WithParallel(f.threshold))
	}
	return &sorter{kind: kind, variant: variant, opts: opts}, nil
}

// sort reads a sequence from r and returns it sorted.
func (s *sorter) sort(r io.Reader) (*seq.Sequence, error) {
	in, err := seq.Read(r, s.kind)
	if err != nil {
		return nil, err
	}
	return in.Sort(s.variant, s.opts...)
}

// sortFile reads the sequence stored in filename and returns it sorted.
func (s *sorter) sortFile(filename string) (*seq.Sequence, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening input: %v", err)
	}
	defer f.Close()

	out, err := s.sort(f)
	if err != nil {
		return nil, fmt.Errorf("sorting %s: %w", filename, err)
	}
	return out, nil
}
