package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"znkr.io/quicksort/qsort/seq"
)

func newSortCmd() *cobra.Command {
	var flags sortFlags
	var output string

	cmd := &cobra.Command{
		Use:   "sort [file]",
		Short: "Sorts the values in file, or stdin, one value per line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.sorter()
			if err != nil {
				return err
			}

			var sorted *seq.Sequence
			if len(args) == 0 || args[0] == "-" {
				sorted, err = s.sort(cmd.InOrStdin())
			} else {
				sorted, err = s.sortFile(args[0])
			}
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("creating output: %v", err)
				}
				defer f.Close()
				w = f
			}
			return seq.Write(w, sorted)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the result to this file instead of stdout")
	return cmd
}
