/*
File    : jqmix/jqmix.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package jqmix is the host-facing API described in spec section 6:
// parse a program once, evaluate it any number of times against fresh
// inputs, and optionally run the whole parse-decode-evaluate-print
// pipeline in one call the way a CLI driver would.
package jqmix

import (
	"strings"

	"github.com/akashmaji946/jqmix/env"
	"github.com/akashmaji946/jqmix/eval"
	"github.com/akashmaji946/jqmix/parser"
	"github.com/akashmaji946/jqmix/value"
)

// Expr is a parsed jq program, ready to evaluate against any number of
// inputs.
type Expr = parser.Expr

// Parse compiles program text into an expression tree.
func Parse(text string) (Expr, error) {
	return parser.Parse(text)
}

// Eval evaluates expr against input with an empty environment, returning
// the lazy stream of resulting values.
func Eval(expr Expr, input value.Value) *Stream {
	return &Stream{s: eval.Eval(expr, input, env.Empty())}
}

// Stream wraps the internal stream type so host callers do not need to
// import the eval/stream packages directly to drive one.
type Stream struct {
	s interface {
		Next() (value.Value, bool, error)
	}
}

// Next pulls the next value, same contract as stream.Stream.Next.
func (s *Stream) Next() (value.Value, bool, error) {
	return s.s.Next()
}

// Run parses queryText, evaluates it against every whitespace-separated
// JSON value decoded from inputText, and joins the serialized results
// with "\n" — the exact contract spec section 6 assigns to "the
// surrounding driver".
func Run(queryText, inputText string) (string, error) {
	expr, err := parser.Parse(queryText)
	if err != nil {
		return "", err
	}

	inputs, err := value.DecodeAll(strings.NewReader(inputText))
	if err != nil {
		return "", err
	}

	var lines []string
	for _, in := range inputs {
		s := eval.Eval(expr, in, env.Empty())
		for {
			v, ok, err := s.Next()
			if err != nil {
				return "", err
			}
			if !ok {
				break
			}
			lines = append(lines, v.String())
		}
	}
	return strings.Join(lines, "\n"), nil
}
