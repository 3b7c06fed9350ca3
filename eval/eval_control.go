/*
File    : jqmix/eval/eval_control.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/jqmix/env"
	"github.com/akashmaji946/jqmix/parser"
	"github.com/akashmaji946/jqmix/stream"
	"github.com/akashmaji946/jqmix/value"
)

// evalIfThenElse evaluates "if c then t else e end": for every value the
// condition produces, truthy ones emit the whole "then" stream and falsy
// ones emit the whole "else" stream against the same input. elif chains
// arrive here already desugared into nested IfThenElse by the parser.
func evalIfThenElse(e parser.IfThenElse, input value.Value, en *env.Env) stream.Stream {
	cond := Eval(e.Cond, input, en)
	return stream.FlatMap(cond, func(cv value.Value) (stream.Stream, error) {
		if value.Truthy(cv) {
			return Eval(e.Then, input, en), nil
		}
		return Eval(e.Else, input, en), nil
	})
}

// evalTryCatch evaluates "try E" / "try E catch H". Values E produces
// pass through until it raises an EvalError, at which point the body
// stream ends and, if a handler is present, the handler runs once with
// the error's message as its input; a bare "try" simply ends the stream.
// Errors that are not *EvalError (a malformed AST, which cannot occur if
// parsing succeeded) are never caught.
func evalTryCatch(e parser.TryCatch, input value.Value, en *env.Env) stream.Stream {
	body := Eval(e.Body, input, en)
	usingHandler := false
	var handler stream.Stream

	return stream.New(func() (value.Value, bool, error) {
		for {
			if usingHandler {
				return handler.Next()
			}
			v, ok, err := body.Next()
			if err == nil {
				return v, ok, nil
			}
			evalErr, isEvalErr := err.(*EvalError)
			if !isEvalErr {
				return nil, false, err
			}
			if e.Handler == nil {
				return nil, false, nil
			}
			usingHandler = true
			handler = Eval(e.Handler, value.Str(evalErr.Message), en)
		}
	})
}
