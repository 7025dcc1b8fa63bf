// Package repl implements an interactive read-compile-print loop over the
// pipeline, grounded on the teacher's internal/repl/repl.go: liner-backed
// line editing, a persistent history file, and colorized diagnostics, but
// driving schemec's compile pipeline instead of AILANG's type/eval
// pipeline (there is no evaluator in scope: compiled programs run on the
// target runtime, not in the REPL process).
package repl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/schemec/schemec/internal/builtin"
	"github.com/schemec/schemec/internal/config"
	"github.com/schemec/schemec/internal/cprint"
	"github.com/schemec/schemec/internal/pipeline"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
)

var commands = []string{":help", ":quit", ":dump-parsed", ":dump-cps", ":dump-env", ":history", ":clear"}

// REPL is a read-compile-print loop: each entered form runs the full
// pipeline and prints either the emitted C or a diagnostic.
type REPL struct {
	cfg       *config.Config
	history   []string
	replCount int
}

// New creates a REPL using cfg for builtin overrides and env-table options.
func New(cfg *config.Config) *REPL {
	if cfg == nil {
		cfg = config.Default()
	}
	return &REPL{cfg: cfg}
}

func (r *REPL) prompt() string {
	return fmt.Sprintf("scheme[%d]> ", r.replCount)
}

// Start runs the loop until EOF or :quit, reading from a liner-managed
// terminal and writing output to out.
func (r *REPL) Start(out io.Writer) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetMultiLineMode(true)

	historyFile := filepath.Join(os.TempDir(), ".schemec_history")
	if f, err := os.Open(historyFile); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}

	fmt.Fprintf(out, "%s\n", bold("schemec"))
	fmt.Fprintln(out, dim("Type :help for help, :quit to exit"))
	fmt.Fprintln(out)

	line.SetCompleter(func(prefix string) (c []string) {
		if strings.HasPrefix(prefix, ":") {
			for _, cmd := range commands {
				if strings.HasPrefix(cmd, prefix) {
					c = append(c, cmd)
				}
			}
		}
		return
	})

	for {
		input, err := line.Prompt(r.prompt())
		if err == io.EOF {
			fmt.Fprintln(out, green("Goodbye!"))
			break
		}
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", red("Error"), err)
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		// A form is complete once its parentheses balance; otherwise keep
		// reading continuation lines (there is no other incomplete-input
		// signal in this grammar's small surface syntax).
		for !parensBalanced(input) {
			cont, err := line.Prompt("... ")
			if err == io.EOF {
				fmt.Fprintln(out, red("Incomplete expression"))
				input = ""
				break
			}
			if err != nil {
				fmt.Fprintf(out, "%s: %v\n", red("Error"), err)
				input = ""
				break
			}
			input += "\n" + cont
		}
		if input == "" {
			continue
		}

		line.AppendHistory(input)
		r.history = append(r.history, input)

		if strings.HasPrefix(input, ":") {
			if input == ":quit" || input == ":q" || input == ":exit" {
				fmt.Fprintln(out, green("Goodbye!"))
				break
			}
			r.handleCommand(input, out)
			continue
		}

		r.evalForm(input, out)
	}

	if f, err := os.Create(historyFile); err == nil {
		_, _ = line.WriteHistory(f)
		f.Close()
	}
}

func parensBalanced(s string) bool {
	depth := 0
	for _, ch := range s {
		switch ch {
		case '(':
			depth++
		case ')':
			depth--
		}
	}
	return depth <= 0
}

func (r *REPL) evalForm(input string, out io.Writer) {
	res := pipeline.Compile(pipeline.Config{
		Source:        input,
		Filename:      fmt.Sprintf("<repl:%d>", r.replCount),
		BuiltinTable:  r.cfg.ResolvedBuiltinTable(builtin.Table),
		BuiltinEnvIDs: r.cfg.BuiltinEnvIDs,
		SkipEnvTable:  !r.cfg.ShouldEmitEnvTable(),
	})
	r.replCount++

	if res.Err != nil {
		fmt.Fprintf(out, "%s %v\n", red("error:"), res.Err)
		return
	}
	fmt.Fprint(out, cprint.Print(res.Artifacts.Unit))
}

func (r *REPL) handleCommand(input string, out io.Writer) {
	switch {
	case input == ":help":
		fmt.Fprintln(out, cyan("Commands:"))
		for _, cmd := range commands {
			fmt.Fprintf(out, "  %s\n", cmd)
		}
	case input == ":history":
		for i, h := range r.history {
			fmt.Fprintf(out, "%s %s\n", dim(fmt.Sprintf("%d:", i)), h)
		}
	case input == ":clear":
		r.history = nil
		fmt.Fprintln(out, yellow("History cleared"))
	case strings.HasPrefix(input, ":dump-"):
		r.handleDump(input, out)
	default:
		fmt.Fprintf(out, "%s unknown command %q\n", red("error:"), input)
	}
}

// handleDump expects a form as the remainder of the command line, e.g.
// ":dump-cps (lambda (x) x)", compiles it, and prints the requested
// intermediate artifact instead of the final emitted C.
func (r *REPL) handleDump(input string, out io.Writer) {
	parts := strings.SplitN(input, " ", 2)
	if len(parts) != 2 || strings.TrimSpace(parts[1]) == "" {
		fmt.Fprintf(out, "%s usage: %s <expr>\n", red("error:"), parts[0])
		return
	}
	res := pipeline.Compile(pipeline.Config{Source: parts[1], Filename: "<repl-dump>"})
	if res.Err != nil {
		fmt.Fprintf(out, "%s %v\n", red("error:"), res.Err)
		return
	}
	switch parts[0] {
	case ":dump-parsed":
		fmt.Fprintln(out, res.Artifacts.Parsed)
	case ":dump-cps":
		fmt.Fprintln(out, res.Artifacts.CPS)
	case ":dump-env":
		fmt.Fprintf(out, "%+v\n", res.Artifacts.Env)
	default:
		fmt.Fprintf(out, "%s unknown dump target %q\n", red("error:"), parts[0])
	}
}
