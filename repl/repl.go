/*
File    : lim/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package repl implements the interactive Read-Eval-Print Loop for Lim.
// It provides line editing and history via readline and colored feedback
// for banners, results, and errors, the same split the go-mix REPL uses.
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/lim/builtin"
	"github.com/akashmaji946/lim/eval"
	"github.com/akashmaji946/lim/value"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the banner/prompt configuration for one interactive session.
type Repl struct {
	Banner      string
	Prompt      string
	HistoryFile string
	Registry    *builtin.Registry
}

// New creates a Repl with the given presentation and builtin set.
func New(banner, prompt, historyFile string, reg *builtin.Registry) *Repl {
	return &Repl{Banner: banner, Prompt: prompt, HistoryFile: historyFile, Registry: reg}
}

// PrintBanner writes the startup banner and usage hints to writer.
func (r *Repl) PrintBanner(writer io.Writer) {
	line := strings.Repeat("-", 60)
	blueColor.Fprintf(writer, "%s\n", line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", line)
	cyanColor.Fprintln(writer, "Type Lim code and press enter. Type .exit to quit.")
	cyanColor.Fprintln(writer, "Use up/down arrows to navigate command history.")
	blueColor.Fprintf(writer, "%s\n", line)
}

// Start runs the loop until the user exits or EOF is reached. Every line
// is evaluated against the same persistent evaluator, so a `let` on one
// line stays visible on the next, exactly like a script's top-level block.
func (r *Repl) Start(writer io.Writer) error {
	r.PrintBanner(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      r.Prompt,
		HistoryFile: r.HistoryFile,
	})
	if err != nil {
		return fmt.Errorf("repl: start readline: %w", err)
	}
	defer rl.Close()

	ev := eval.NewEvaluator(r.Registry)

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(writer, "Good Bye!")
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			fmt.Fprintln(writer, "Good Bye!")
			return nil
		}

		r.evalLine(writer, ev, line)
	}
}

func (r *Repl) evalLine(writer io.Writer, ev *eval.Evaluator, line string) {
	root, err := eval.Parse(line)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}

	result, err := ev.EvaluateTopLevel(root)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}
	if _, isNothing := result.(value.Nothing); isNothing {
		return
	}
	yellowColor.Fprintf(writer, "%s\n", result.Inspect())
}
