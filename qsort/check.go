package main

import (
	"math/rand/v2"

	"github.com/spf13/cobra"
	"znkr.io/quicksort"
	"znkr.io/quicksort/qsort/harness"
	"znkr.io/quicksort/qsort/seq"
)

// checkThreshold is small so that the parallel variant splits even the short check inputs.
const checkThreshold = 8

func newCheckCmd() *cobra.Command {
	var (
		random    int
		size      int
		seed      uint64
		pivot     string
		kind      string
		threshold int
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Runs every sort variant on known inputs and compares the results to a trusted sort",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := quicksort.ParsePivot(pivot)
			if err != nil {
				return err
			}
			k, err := seq.ParseKind(kind)
			if err != nil {
				return err
			}

			cases := harness.DefaultCases(k)
			if random > 0 {
				r := rand.New(rand.NewPCG(seed, seed))
				cases = append(cases, harness.RandomCases(r, k, random, size)...)
			}

			results, err := harness.Run(cases, seq.Variants, threshold, quicksort.WithPivot(p))
			if err != nil {
				return err
			}
			return harness.Report(cmd.OutOrStdout(), results)
		},
	}

	cmd.Flags().IntVar(&random, "random", 10, "number of additional random inputs")
	cmd.Flags().IntVar(&size, "size", 100, "maximum length of random inputs")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "seed for random inputs")
	cmd.Flags().StringVar(&pivot, "pivot", "last", "pivot policy: last, first, median, or random")
	cmd.Flags().StringVar(&kind, "kind", string(seq.Int), "element kind: int, float, or string")
	cmd.Flags().IntVar(&threshold, "threshold", checkThreshold, "minimum range size sorted concurrently by the parallel variant")
	return cmd
}
