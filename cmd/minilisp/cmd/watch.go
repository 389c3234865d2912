package cmd

import (
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/minilisp/minilisp/pkg/lisp"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-run a file every time it changes on disk",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(_ *cobra.Command, args []string) error {
	path := args[0]

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting file watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	runOnce(path)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				runOnce(path)
			}
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(os.Stderr, "watch error:", watchErr)
		}
	}
}

func runOnce(path string) {
	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error reading", path, ":", err)
		return
	}

	interp := lisp.New()
	results, runErr := interp.RunAll(string(content))
	for _, r := range results {
		fmt.Println(r)
	}
	if runErr != nil {
		fmt.Fprintln(os.Stderr, "error:", runErr)
	}
}
