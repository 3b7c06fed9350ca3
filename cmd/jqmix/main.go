/*
File    : jqmix/cmd/jqmix/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the jqmix command-line interface: a
jq-compatible query runner over JSON. It reads a filter and zero or more
input files (stdin otherwise), evaluates the filter against every JSON
value it decodes, and prints each result on its own line.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/jqmix/env"
	"github.com/akashmaji946/jqmix/eval"
	"github.com/akashmaji946/jqmix/parser"
	"github.com/akashmaji946/jqmix/repl"
	"github.com/akashmaji946/jqmix/value"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// VERSION is the current version of the jqmix CLI.
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the tool's author.
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENSE specifies the software license.
var LICENSE = "MIT"

var (
	redColor = color.New(color.FgRed)
)

// Flags holds the CLI options, set by cobra.Command.Flags() bindings in
// newRootCmd and read by run.
type Flags struct {
	NullInput  bool
	RawOutput  bool
	Compact    bool
	ExitStatus bool
}

func main() {
	cmd := newRootCmd()
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	err := cmd.Execute()
	if err == nil {
		return
	}
	if ec, ok := err.(exitCodeError); ok {
		os.Exit(ec.code)
	}
	os.Exit(1)
}

func newRootCmd() *cobra.Command {
	var flags Flags

	cmd := &cobra.Command{
		Use:   "jqmix <filter> [file...]",
		Short: "jqmix - a jq-compatible JSON query tool",
		Long: `jqmix compiles a jq filter expression and runs it over JSON input,
emitting one line per result value. With no filter argument it starts
an interactive REPL instead.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				startRepl()
				return nil
			}
			return run(cmd.OutOrStdout(), args[0], args[1:], flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.NullInput, "null-input", "n", false, "use null as the single input value instead of reading any input")
	cmd.Flags().BoolVarP(&flags.RawOutput, "raw-output", "r", false, "output string results without surrounding quotes")
	cmd.Flags().BoolVarP(&flags.Compact, "compact-output", "c", false, "compact output (accepted for jq compatibility; output is always compact)")
	cmd.Flags().BoolVarP(&flags.ExitStatus, "exit-status", "e", false, "exit 1 if the last output value was null or false, 2 if there was no output")

	return cmd
}

func startRepl() {
	banner := `   _                _
  (_) __ _ _ __ ___ (_)_  __
  | |/ _' | '_ ' _ \| \ \/ /
  | | (_| | | | | | | |>  <
 _/ |\__,_|_| |_| |_|_/_/\_\
|__/                        `
	r := repl.NewRepl(banner, VERSION, AUTHOR, "----------------------------------------------------------------", LICENSE, "jqmix> ")
	r.Start(os.Stdin, os.Stdout)
}

// run implements the non-interactive filter mode: parse the filter,
// decode every JSON value from files (or stdin), evaluate the filter
// against each, and print every resulting value.
func run(out io.Writer, filterText string, files []string, flags Flags) error {
	expr, err := parser.Parse(filterText)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[PARSE ERROR] %s\n", err)
		return err
	}

	inputs, err := readInputs(files, flags.NullInput)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[INPUT ERROR] %s\n", err)
		return err
	}

	lastValue := value.Value(value.Null{})
	sawOutput := false
	for _, in := range inputs {
		s := eval.Eval(expr, in, env.Empty())
		for {
			v, ok, err := s.Next()
			if err != nil {
				redColor.Fprintf(os.Stderr, "[EVAL ERROR] %s\n", err)
				return err
			}
			if !ok {
				break
			}
			sawOutput = true
			lastValue = v
			fmt.Fprintln(out, formatOutput(v, flags))
		}
	}

	if flags.ExitStatus {
		if !sawOutput {
			return exitCodeError{code: 2}
		}
		if !value.Truthy(lastValue) {
			return exitCodeError{code: 1}
		}
	}
	return nil
}

// formatOutput renders v for the "-r" raw-output flag: plain text for
// strings, ordinary JSON text otherwise. jqmix's String() is already
// compact, so "-c" is accepted for CLI-surface compatibility but changes
// nothing further.
func formatOutput(v value.Value, flags Flags) string {
	if flags.RawOutput {
		if s, ok := v.(value.Str); ok {
			return string(s)
		}
	}
	return v.String()
}

// readInputs decodes the input values queries run against: null-input
// mode contributes a single null value and ignores files entirely;
// otherwise every named file (or stdin, with no files) is decoded in
// full.
func readInputs(files []string, nullInput bool) ([]value.Value, error) {
	if nullInput {
		return []value.Value{value.Null{}}, nil
	}
	if len(files) == 0 {
		return value.DecodeAll(os.Stdin)
	}

	var all []value.Value
	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		vs, err := value.DecodeAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		all = append(all, vs...)
	}
	return all, nil
}

// exitCodeError carries a process exit code through cobra's error path
// without printing anything extra — the diagnostic, if any, was already
// written by run.
type exitCodeError struct{ code int }

func (e exitCodeError) Error() string { return "" }
