package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information, set by build flags.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "minilisp",
	Short: "An embeddable Scheme-like Lisp interpreter",
	Long: `minilisp is a small Scheme-like Lisp dialect: signed 64-bit integers,
booleans, symbols, pairs, and closures, evaluated against a lexically
scoped environment with a mark-and-sweep collector between top-level
evaluations.

No tail-call optimization, no continuations, no macros, no strings beyond
identifier names, no floating-point numbers.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
