/*
File    : jqmix/eval/eval.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval is the tree-walking interpreter. It evaluates a parsed
// expression against an input value and environment, producing a lazy
// stream of output values. The expression AST is a closed set of node
// kinds (parser.Expr), so Eval dispatches with a plain Go type switch
// rather than a visitor: there is no interface method to implement per
// node, and adding diagnostics or a new evaluation mode never requires
// touching every node type.
package eval

import (
	"fmt"

	"github.com/akashmaji946/jqmix/env"
	"github.com/akashmaji946/jqmix/parser"
	"github.com/akashmaji946/jqmix/stream"
	"github.com/akashmaji946/jqmix/value"
)

// Eval evaluates expr against input under environment en, returning the
// lazy stream of resulting values. The stream itself carries any
// evaluation error raised while it is pulled; Eval never blocks to
// compute eagerly beyond what construction requires.
func Eval(expr parser.Expr, input value.Value, en *env.Env) stream.Stream {
	switch e := expr.(type) {
	case parser.Identity:
		return stream.Single(input)
	case parser.Literal:
		return stream.Single(e.Value)
	case parser.Pipe:
		return evalPipe(e, input, en)
	case parser.Comma:
		return stream.Concat(Eval(e.Left, input, en), Eval(e.Right, input, en))
	case parser.Key:
		return evalKey(e, input)
	case parser.Index:
		return evalIndex(e, input, en)
	case parser.Slice:
		return evalSlice(e, input, en)
	case parser.Optional:
		return evalOptional(e, input, en)
	case parser.ArrayConstruct:
		return evalArrayConstruct(e, input, en)
	case parser.ObjectConstruct:
		return evalObjectConstruct(e, input, en)
	case parser.Operation:
		return evalOperation(e, input, en)
	case parser.Alternative:
		return evalAlternative(e, input, en)
	case parser.IfThenElse:
		return evalIfThenElse(e, input, en)
	case parser.TryCatch:
		return evalTryCatch(e, input, en)
	case parser.Variable:
		return evalVariable(e, en)
	case parser.Recurse:
		return evalRecurse(input)
	case parser.BuiltinCall:
		return evalBuiltin(e, input, en)
	default:
		return stream.Fail(fmt.Errorf("eval: unhandled expression type %T", expr))
	}
}

func evalPipe(e parser.Pipe, input value.Value, en *env.Env) stream.Stream {
	left := Eval(e.Left, input, en)
	return stream.FlatMap(left, func(v value.Value) (stream.Stream, error) {
		return Eval(e.Right, v, en), nil
	})
}

func evalVariable(e parser.Variable, en *env.Env) stream.Stream {
	v, ok := en.Lookup(e.Name)
	if !ok {
		return stream.Fail(&EvalError{Kind: UnboundVariable, Message: fmt.Sprintf("$%s is not defined", e.Name)})
	}
	return stream.Single(v)
}

func evalRecurse(input value.Value) stream.Stream {
	var vals []value.Value
	var walk func(value.Value)
	walk = func(v value.Value) {
		vals = append(vals, v)
		switch x := v.(type) {
		case value.Array:
			for _, elem := range x {
				walk(elem)
			}
		case value.Object:
			for _, k := range x.Keys() {
				child, _ := x.Get(k)
				walk(child)
			}
		}
	}
	walk(input)
	return stream.FromSlice(vals)
}
