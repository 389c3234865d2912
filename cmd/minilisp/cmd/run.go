package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/minilisp/minilisp/pkg/lisp"
)

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a minilisp file or expression",
	Long: `Evaluate every top-level form in a file or an inline expression,
printing each result in turn.

Examples:
  minilisp run factorial.scm
  minilisp run -e "(+ 1 2 3)"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
}

func runScript(_ *cobra.Command, args []string) error {
	var input string
	if evalExpr != "" {
		input = evalExpr
	} else if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		input = string(content)
	} else {
		return fmt.Errorf("either provide a file path or use -e for inline code")
	}

	interp := lisp.New()
	results, err := interp.RunAll(input)
	for _, r := range results {
		fmt.Println(r)
	}
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}
	return nil
}
