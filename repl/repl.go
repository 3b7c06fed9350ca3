/*
File    : jqmix/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements an interactive Read-Eval-Print Loop for jqmix.
The REPL keeps a single "current value" (null until loaded) and, for
every line of input, parses it as a jq query, evaluates it against that
value, and prints each element of the resulting stream on its own line.
*/
package repl

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/akashmaji946/jqmix/env"
	"github.com/akashmaji946/jqmix/eval"
	"github.com/akashmaji946/jqmix/parser"
	"github.com/akashmaji946/jqmix/value"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// Color definitions for REPL output, matching the teacher's convention
// of one fatih/color instance per semantic role rather than ad hoc
// inline color codes.
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl represents one interactive jqmix session.
type Repl struct {
	Banner  string // ASCII art banner displayed at startup
	Version string // Version string of the interpreter
	Author  string // Author contact information
	Line    string // Separator line for visual formatting
	License string // Software license information
	Prompt  string // Command prompt shown to the user (e.g. "jqmix> ")

	current value.Value // the value queries are evaluated against
}

// NewRepl creates and initializes a new REPL instance, starting with
// null as the current value.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{
		Banner: banner, Version: version, Author: author,
		Line: line, License: license, Prompt: prompt,
		current: value.Null{},
	}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to jqmix!")
	cyanColor.Fprintf(writer, "%s\n", "Type a jq query and press enter to run it against the current value (starts as null).")
	cyanColor.Fprintf(writer, "%s\n", ".load <file>   load a JSON file as the current value")
	cyanColor.Fprintf(writer, "%s\n", ".exit          quit the REPL")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop, reading lines via readline and
// writing results/errors to writer until the user exits or EOF.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}
		rl.SaveHistory(line)

		if rest, ok := strings.CutPrefix(line, ".load "); ok {
			r.load(writer, strings.TrimSpace(rest))
			continue
		}

		r.executeWithRecovery(writer, line)
	}
}

// load reads a single JSON value from path and makes it the current
// value for subsequent queries.
func (r *Repl) load(writer io.Writer, path string) {
	f, err := os.Open(path)
	if err != nil {
		redColor.Fprintf(writer, "[LOAD ERROR] %v\n", err)
		return
	}
	defer f.Close()

	v, err := value.Decode(json.NewDecoder(f))
	if err != nil {
		redColor.Fprintf(writer, "[LOAD ERROR] %v\n", err)
		return
	}
	r.current = v
	cyanColor.Fprintf(writer, "loaded %s\n", path)
}

// executeWithRecovery parses and evaluates one line of input, printing
// every resulting value or the first error encountered. Unlike file
// execution, an error ends this one evaluation, not the session.
func (r *Repl) executeWithRecovery(writer io.Writer, line string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	expr, err := parser.Parse(line)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}

	s := eval.Eval(expr, r.current, env.Empty())
	for {
		v, ok, err := s.Next()
		if err != nil {
			redColor.Fprintf(writer, "%s\n", err)
			return
		}
		if !ok {
			return
		}
		yellowColor.Fprintf(writer, "%s\n", v.String())
	}
}
