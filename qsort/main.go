// Command qsort sorts sequences of values with the quicksort package.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	rootCmd := &cobra.Command{
		Use:          "qsort [command]",
		Short:        "Sort, check, and serve sequences using quicksort",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newSortCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newPackCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
