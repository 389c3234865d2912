package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	shellquote "github.com/kballard/go-shellquote"

	"github.com/minilisp/minilisp/internal/config"
	"github.com/minilisp/minilisp/pkg/lisp"
)

var configPath string

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive read-eval-print loop",
	RunE:  runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().StringVar(&configPath, "config", "", "path to a REPL config YAML file")
}

func runRepl(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadREPL(configPath)
	if err != nil {
		return fmt.Errorf("loading REPL config: %w", err)
	}

	interactive := isatty.IsTerminal(os.Stdin.Fd())
	sessionID := uuid.New()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            cfg.Prompt,
		HistoryFile:       cfg.HistoryFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return fmt.Errorf("starting readline: %w", err)
	}
	defer rl.Close()
	if interactive {
		rl.CaptureExitSignal()
	}

	interp := lisp.New()

	if cfg.ShowBanner && interactive {
		fmt.Printf("minilisp %s — session %s\n", Version, sessionID)
		fmt.Println("enter an expression, or :help for meta-commands")
	}

	var pending strings.Builder
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if pending.Len() == 0 {
				continue
			}
			pending.Reset()
			rl.SetPrompt(cfg.Prompt)
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		if pending.Len() == 0 && strings.HasPrefix(strings.TrimSpace(line), ":") {
			if err := runMetaCommand(rl, interp, line); err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
			}
			continue
		}

		pending.WriteString(line)
		pending.WriteByte('\n')

		if !balanced(pending.String()) {
			rl.SetPrompt("... ")
			continue
		}

		text := pending.String()
		pending.Reset()
		rl.SetPrompt(cfg.Prompt)

		if strings.TrimSpace(text) == "" {
			continue
		}

		results, runErr := interp.RunAll(text)
		for _, r := range results {
			fmt.Println(r)
		}
		if runErr != nil {
			fmt.Fprintln(os.Stderr, "error:", runErr)
		}
	}
}

// balanced reports whether text has no unclosed parenthesis, the simple
// heuristic the REPL uses to decide whether to keep reading more lines
// before handing the accumulated text to RunAll.
func balanced(text string) bool {
	depth := 0
	for _, ch := range text {
		switch ch {
		case '(':
			depth++
		case ')':
			depth--
		}
	}
	return depth <= 0
}

func runMetaCommand(rl *readline.Instance, interp *lisp.Interpreter, line string) error {
	fields, err := shellquote.Split(line)
	if err != nil || len(fields) == 0 {
		return fmt.Errorf("malformed meta-command: %q", line)
	}

	switch fields[0] {
	case ":help":
		fmt.Println(":help            show this message")
		fmt.Println(":stats           show heap diagnostics")
		fmt.Println(":load <file>     evaluate every form in <file>")
	case ":stats":
		stats := interp.Stats()
		fmt.Printf("live objects: %s, freed last sweep: %s\n",
			humanize.Comma(int64(stats.Live)), humanize.Comma(int64(stats.FreedLastSweep)))
	case ":load":
		if len(fields) != 2 {
			return fmt.Errorf(":load requires exactly one file argument")
		}
		content, err := os.ReadFile(fields[1])
		if err != nil {
			return err
		}
		results, runErr := interp.RunAll(string(content))
		for _, r := range results {
			fmt.Println(r)
		}
		return runErr
	default:
		return fmt.Errorf("unknown meta-command: %s", fields[0])
	}
	return nil
}
