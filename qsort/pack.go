package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"znkr.io/quicksort/qsort/pack"
)

func newPackCmd() *cobra.Command {
	var flags sortFlags

	cmd := &cobra.Command{
		Use:   "pack out.tar file...",
		Short: "Sorts every file and packs the results into a .tar file",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.sorter()
			if err != nil {
				return err
			}

			entries := make([]pack.Entry, 0, len(args)-1)
			for _, file := range args[1:] {
				sorted, err := s.sortFile(file)
				if err != nil {
					return err
				}
				entries = append(entries, pack.Entry{Path: file, Data: sorted})
			}

			if err := pack.Pack(args[0], entries); err != nil {
				return fmt.Errorf("packing: %v", err)
			}
			log.Printf("Packed %d sorted files into %s", len(entries), args[0])
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
