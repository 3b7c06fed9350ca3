/*
File    : jqmix/eval/eval_operations.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/jqmix/env"
	"github.com/akashmaji946/jqmix/parser"
	"github.com/akashmaji946/jqmix/stream"
	"github.com/akashmaji946/jqmix/value"
)

// evalOperation evaluates a binary operator application. Arithmetic and
// comparison operators broadcast over the cartesian product of the left
// and right streams, left outer; "and"/"or" are handled separately since
// they short-circuit on the current input's truthiness rather than
// combining two independent value streams pointwise.
func evalOperation(e parser.Operation, input value.Value, en *env.Env) stream.Stream {
	if e.Op == parser.OpAnd || e.Op == parser.OpOr {
		return evalLogical(e, input, en)
	}

	left := Eval(e.Left, input, en)
	return stream.FlatMap(left, func(lv value.Value) (stream.Stream, error) {
		right := Eval(e.Right, input, en)
		return stream.Map(right, func(rv value.Value) (value.Value, error) {
			return applyBinOp(e.Op, lv, rv)
		}), nil
	})
}

// evalLogical implements short-circuiting "and"/"or": for each left
// output, a falsy value under "and" (or truthy under "or") short-circuits
// without evaluating the right side; otherwise every right output is
// coerced to its boolean truthiness.
func evalLogical(e parser.Operation, input value.Value, en *env.Env) stream.Stream {
	left := Eval(e.Left, input, en)
	return stream.FlatMap(left, func(lv value.Value) (stream.Stream, error) {
		truthy := value.Truthy(lv)
		if e.Op == parser.OpAnd && !truthy {
			return stream.Single(value.Bool(false)), nil
		}
		if e.Op == parser.OpOr && truthy {
			return stream.Single(value.Bool(true)), nil
		}
		right := Eval(e.Right, input, en)
		return stream.Map(right, func(rv value.Value) (value.Value, error) {
			return value.Bool(value.Truthy(rv)), nil
		}), nil
	})
}

// evalAlternative evaluates "E1 // E2": every non-null, non-false value
// of E1 passes through; if E1 produces none (and raises no error), E2's
// stream is yielded instead. An error from E1 propagates rather than
// falling back — "//" filters values, it does not catch errors.
func evalAlternative(e parser.Alternative, input value.Value, en *env.Env) stream.Stream {
	left := Eval(e.Left, input, en)
	producedAny := false
	usingRight := false
	var right stream.Stream

	return stream.New(func() (value.Value, bool, error) {
		for {
			if usingRight {
				return right.Next()
			}
			v, ok, err := left.Next()
			if err != nil {
				return nil, false, err
			}
			if !ok {
				if producedAny {
					return nil, false, nil
				}
				usingRight = true
				right = Eval(e.Right, input, en)
				continue
			}
			if value.Truthy(v) {
				producedAny = true
				return v, true, nil
			}
		}
	})
}

// applyBinOp applies a single binary operator to a pair of already
// evaluated operands, per the table in spec section 4.3.
func applyBinOp(op parser.BinOp, l, r value.Value) (value.Value, error) {
	switch op {
	case parser.OpEq:
		return value.Bool(value.Equal(l, r)), nil
	case parser.OpNe:
		return value.Bool(!value.Equal(l, r)), nil
	case parser.OpLt:
		return value.Bool(value.Compare(l, r) < 0), nil
	case parser.OpLe:
		return value.Bool(value.Compare(l, r) <= 0), nil
	case parser.OpGt:
		return value.Bool(value.Compare(l, r) > 0), nil
	case parser.OpGe:
		return value.Bool(value.Compare(l, r) >= 0), nil
	case parser.OpAdd:
		return applyAdd(l, r)
	case parser.OpSub:
		return applySub(l, r)
	case parser.OpMul:
		return applyMul(l, r)
	case parser.OpDiv:
		return applyDiv(l, r)
	case parser.OpMod:
		return applyMod(l, r)
	default:
		return nil, fmt.Errorf("eval: unknown operator %q", op)
	}
}

func applyAdd(l, r value.Value) (value.Value, error) {
	if _, ok := l.(value.Null); ok {
		return r, nil
	}
	if _, ok := r.(value.Null); ok {
		return l, nil
	}
	switch x := l.(type) {
	case value.Number:
		if y, ok := r.(value.Number); ok {
			return x + y, nil
		}
	case value.Str:
		if y, ok := r.(value.Str); ok {
			return x + y, nil
		}
	case value.Array:
		if y, ok := r.(value.Array); ok {
			return append(append(value.Array{}, x...), y...), nil
		}
	case value.Object:
		if y, ok := r.(value.Object); ok {
			return mergeShallow(x, y), nil
		}
	}
	return nil, opTypeError("+", l, r)
}

// mergeShallow implements the right-biased top-level merge of "+" on two
// objects: existing keys keep their position but take the right value,
// new right-only keys are appended in the right's order.
func mergeShallow(l, r value.Object) value.Object {
	out := l
	for _, k := range r.Keys() {
		v, _ := r.Get(k)
		out = out.Set(k, v)
	}
	return out
}

func applySub(l, r value.Value) (value.Value, error) {
	switch x := l.(type) {
	case value.Number:
		if y, ok := r.(value.Number); ok {
			return x - y, nil
		}
	case value.Array:
		if y, ok := r.(value.Array); ok {
			var out value.Array
			for _, v := range x {
				if !containsValue(y, v) {
					out = append(out, v)
				}
			}
			if out == nil {
				out = value.Array{}
			}
			return out, nil
		}
	}
	return nil, opTypeError("-", l, r)
}

func containsValue(arr value.Array, v value.Value) bool {
	for _, x := range arr {
		if value.Equal(x, v) {
			return true
		}
	}
	return false
}

func applyMul(l, r value.Value) (value.Value, error) {
	switch x := l.(type) {
	case value.Number:
		if y, ok := r.(value.Number); ok {
			return x * y, nil
		}
		if y, ok := r.(value.Str); ok {
			return repeatString(y, float64(x)), nil
		}
	case value.Str:
		if y, ok := r.(value.Number); ok {
			return repeatString(x, float64(y)), nil
		}
	case value.Object:
		if y, ok := r.(value.Object); ok {
			return mergeDeep(x, y), nil
		}
	}
	return nil, opTypeError("*", l, r)
}

// repeatString implements jq's string*number rule: a count of zero or
// less yields null, otherwise the string repeated that many times.
func repeatString(s value.Str, count float64) value.Value {
	n := int(count)
	if n <= 0 {
		return value.Null{}
	}
	out := ""
	for i := 0; i < n; i++ {
		out += string(s)
	}
	return value.Str(out)
}

// mergeDeep implements the recursive merge of "*" on two objects: shared
// keys whose values are both objects are merged recursively, everything
// else takes the right value.
func mergeDeep(l, r value.Object) value.Object {
	out := l
	for _, k := range r.Keys() {
		rv, _ := r.Get(k)
		if lv, ok := out.Get(k); ok {
			if lo, lok := lv.(value.Object); lok {
				if ro, rok := rv.(value.Object); rok {
					out = out.Set(k, mergeDeep(lo, ro))
					continue
				}
			}
		}
		out = out.Set(k, rv)
	}
	return out
}

func applyDiv(l, r value.Value) (value.Value, error) {
	x, ok := l.(value.Number)
	if !ok {
		return nil, opTypeError("/", l, r)
	}
	y, ok := r.(value.Number)
	if !ok {
		return nil, opTypeError("/", l, r)
	}
	if y == 0 {
		return nil, &EvalError{Kind: DivByZero, Message: "/: division by zero"}
	}
	return x / y, nil
}

func applyMod(l, r value.Value) (value.Value, error) {
	x, ok := l.(value.Number)
	if !ok {
		return nil, opTypeError("%", l, r)
	}
	y, ok := r.(value.Number)
	if !ok {
		return nil, opTypeError("%", l, r)
	}
	yi := int64(y)
	if yi == 0 {
		return nil, &EvalError{Kind: DivByZero, Message: "%: division by zero"}
	}
	xi := int64(x)
	return value.Number(xi % yi), nil
}

func opTypeError(op string, l, r value.Value) *EvalError {
	return &EvalError{Kind: TypeError, Message: fmt.Sprintf("%s: cannot combine %s and %s", op, l.Kind(), r.Kind())}
}
