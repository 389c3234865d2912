// Command minilisp is a CLI shell around the embeddable minilisp
// interpreter: run a script, drop into a REPL, or watch a file and re-run
// it on every change.
package main

import (
	"fmt"
	"os"

	"github.com/minilisp/minilisp/cmd/minilisp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
