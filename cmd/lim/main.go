/*
File    : lim/cmd/lim/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package main is the Lim command-line driver: an interactive loop, a
// one-shot run of a source or compiled file, and a build step that
// compiles a source file to Lim's on-disk AST format.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/akashmaji946/lim/builtin"
	"github.com/akashmaji946/lim/config"
	"github.com/akashmaji946/lim/eval"
	"github.com/akashmaji946/lim/repl"
	"github.com/akashmaji946/lim/serialize"
	"github.com/akashmaji946/lim/value"
)

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

// CLI is the top-level command set: loop (interactive REPL), run (execute
// a source or compiled file), build (compile a source file ahead of time).
// This mirrors the `Loop`/`Run{input}`/`Build{input,output}` subcommand
// shape of the language's original driver.
type CLI struct {
	Loop  LoopCmd  `cmd:"" help:"Start the interactive REPL"`
	Run   RunCmd   `cmd:"" help:"Run a Lim source file or a compiled .lim program"`
	Build BuildCmd `cmd:"" help:"Compile a source file to Lim's binary AST format"`
}

// LoopCmd starts the interactive REPL.
type LoopCmd struct{}

func (c *LoopCmd) Run(cfg config.Config) error {
	fmt.Printf("Time: %s\n", time.Now().Format(time.RFC3339))
	reg := registryFor(cfg)
	session := repl.New(cfg.Banner, cfg.Prompt, cfg.HistoryFile, reg)
	return session.Start(os.Stdout)
}

// RunCmd executes a single file. If input ends in .lim, it is treated as
// a compiled AST (decoded via serialize.Decode); any other extension is
// parsed as Lim source before evaluation.
type RunCmd struct {
	Input string `arg:"" required:"" help:"Path to a Lim source file or a compiled .lim file"`
}

func (c *RunCmd) Run(cfg config.Config) error {
	reg := registryFor(cfg)

	result, err := runFile(c.Input, reg)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	fmt.Println(result.Inspect())
	return nil
}

func runFile(input string, reg *builtin.Registry) (value.Value, error) {
	if strings.EqualFold(filepath.Ext(input), ".lim") {
		data, err := os.ReadFile(input)
		if err != nil {
			return nil, fmt.Errorf("read compiled program: %w", err)
		}
		root, err := serialize.Decode(data)
		if err != nil {
			return nil, err
		}
		return eval.EvaluateProgram(root, reg)
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	return eval.Interpret(string(data), reg)
}

// BuildCmd parses a source file and writes its AST to Output (or, if
// Output is empty, to Input's name with a .lim extension alongside it).
type BuildCmd struct {
	Input  string `arg:"" required:"" help:"Path to a Lim source file"`
	Output string `arg:"" optional:"" help:"Path to write the compiled program"`
}

// buildMeta is a companion record written next to every compiled program,
// distinct from the lim.yaml the config package loads: this one describes
// the build itself rather than runtime preferences, so it is marshaled
// with gopkg.in/yaml.v3 rather than the goccy/go-yaml decoder config uses.
type buildMeta struct {
	Source    string `yaml:"source"`
	Output    string `yaml:"output"`
	SourceLen int    `yaml:"source_bytes"`
	BuiltAt   string `yaml:"built_at"`
}

func (c *BuildCmd) Run() error {
	src, err := os.ReadFile(c.Input)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}

	root, err := eval.Parse(string(src))
	if err != nil {
		return err
	}

	out := c.Output
	if out == "" {
		base := strings.TrimSuffix(filepath.Base(c.Input), filepath.Ext(c.Input))
		out = filepath.Join(filepath.Dir(c.Input), base+".lim")
	}

	file, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer file.Close()

	if err := serialize.WriteTo(file, root); err != nil {
		return err
	}

	if err := writeBuildMeta(c.Input, out, len(src)); err != nil {
		return fmt.Errorf("write build metadata: %w", err)
	}

	cyanColor.Printf("Compiled %s -> %s\n", c.Input, out)
	return nil
}

func writeBuildMeta(input, output string, sourceLen int) error {
	meta := buildMeta{
		Source:    input,
		Output:    output,
		SourceLen: sourceLen,
		BuiltAt:   time.Now().Format(time.RFC3339),
	}
	data, err := yamlv3.Marshal(meta)
	if err != nil {
		return err
	}
	return os.WriteFile(output+".meta.yaml", data, 0o644)
}

// registryFor seeds the host builtin table, honoring lim.yaml's
// enable_timestamp switch by omitting the timestamp builtin entirely when
// disabled rather than making it a runtime no-op.
func registryFor(cfg config.Config) *builtin.Registry {
	reg := builtin.Default()
	if !cfg.EnableTimestamp {
		reg.Unregister(builtin.TimestampID)
	}
	return reg
}

func main() {
	cfg, err := config.Load("lim.yaml")
	if err != nil {
		redColor.Fprintf(os.Stderr, "Error loading lim.yaml: %s\n", err)
		os.Exit(1)
	}

	var cli CLI
	parser := kong.Must(&cli,
		kong.Name("lim"),
		kong.Description("An interpreter for the Lim expression language"),
		kong.UsageOnError(),
	)

	ktx, err := parser.Parse(os.Args[1:])
	if err != nil {
		parser.FatalIfErrorf(err)
	}

	if err := ktx.Run(cfg); err != nil {
		redColor.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
