package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"znkr.io/quicksort/qsort/server"
)

func newServeCmd() *cobra.Command {
	var flags sortFlags
	var addr string

	cmd := &cobra.Command{
		Use:   "serve file",
		Short: "Serves the sorted contents of file and re-sorts whenever it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.sorter()
			if err != nil {
				return err
			}
			file, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolving input: %v", err)
			}

			load := func() (*server.Dataset, error) {
				sorted, err := s.sortFile(file)
				if err != nil {
					return nil, err
				}
				return &server.Dataset{Source: file, Sorted: sorted, Loaded: time.Now()}, nil
			}

			ds, err := load()
			if err != nil {
				return fmt.Errorf("loading input: %v", err)
			}

			// Start serving.
			srv, err := server.Run(addr, ds)
			if err != nil {
				return err
			}
			defer srv.Shutdown(context.Background())
			log.Printf("Now serving %d sorted values at %s, press Ctrl-C to shut down", ds.Sorted.Len(), srv.Addr())

			// Watch the directory rather than the file itself. Editors often replace files by
			// renaming, which would silently end a watch on the file.
			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("starting watcher: %v", err)
			}
			defer watcher.Close()
			if err := watcher.Add(filepath.Dir(file)); err != nil {
				return fmt.Errorf("starting watch: %v", err)
			}
			log.Printf("Watching %s", file)

			// Setup signals to react to Ctrl-C.
			sigint := make(chan os.Signal, 1)
			signal.Notify(sigint, os.Interrupt)

			for {
				select {
				case event := <-watcher.Events:
					if event.Name != file || event.Has(fsnotify.Chmod) {
						continue
					}
					if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
						log.Printf("%s was removed, keeping last sorted version", args[0])
						continue
					}

					start := time.Now()
					ds, err := load()
					if err != nil {
						log.Printf("failed to update sorted data: %v", err)
						continue
					}
					srv.ReplaceDataset(ds)
					log.Printf("Sorted %d values (%v)", ds.Sorted.Len(), time.Since(start))
				case err := <-watcher.Errors:
					return fmt.Errorf("watching: %v", err)
				case err := <-srv.Error():
					return fmt.Errorf("serving: %v", err)
				case <-sigint:
					fmt.Print("\r") // remove Ctrl-C output characters
					log.Printf("Received Ctrl-C, shutting down")
					return nil
				}
			}
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&addr, "addr", "localhost:8080", "address to serve on")
	return cmd
}
