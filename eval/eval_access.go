/*
File    : jqmix/eval/eval_access.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"math"

	"github.com/akashmaji946/jqmix/env"
	"github.com/akashmaji946/jqmix/parser"
	"github.com/akashmaji946/jqmix/stream"
	"github.com/akashmaji946/jqmix/value"
)

// evalKey evaluates ".name": on an object it yields the bound value or
// null if the key is absent, on null it yields null, on anything else it
// is a type error. The "absent key" and "literal null value" cases are
// deliberately indistinguishable here, per the open question resolved in
// SPEC_FULL.md: an absent key yields null directly and no KeyMissing error
// is raised, so a wrapping "?" or "try" sees the same null.
func evalKey(e parser.Key, input value.Value) stream.Stream {
	switch x := input.(type) {
	case value.Object:
		if v, ok := x.Get(e.Name); ok {
			return stream.Single(v)
		}
		return stream.Single(value.Null{})
	case value.Null:
		return stream.Single(value.Null{})
	default:
		return stream.Fail(typeErrorf("."+e.Name, "object or null", x))
	}
}

// evalIndex evaluates ".[i, j, ...]" (a non-empty Indices list) or the
// iterator ".[]" (an empty one). Each index expression is evaluated
// against input and may itself be multi-valued; the results for every
// index expression are concatenated left to right, matching the source
// order of the comma-separated list the parser captured.
func evalIndex(e parser.Index, input value.Value, en *env.Env) stream.Stream {
	if len(e.Indices) == 0 {
		return evalIterate(input)
	}

	result := stream.Empty()
	for _, idxExpr := range e.Indices {
		idxExpr := idxExpr
		idxValues := Eval(idxExpr, input, en)
		one := stream.FlatMap(idxValues, func(iv value.Value) (stream.Stream, error) {
			num, ok := iv.(value.Number)
			if !ok {
				return stream.Empty(), typeErrorf("array index", "number", iv)
			}
			v, err := indexAt(input, int(math.Trunc(float64(num))))
			if err != nil {
				return stream.Empty(), err
			}
			return stream.Single(v), nil
		})
		result = stream.Concat(result, one)
	}
	return result
}

// evalIterate implements the bare iterator ".[]": each array element in
// order, each object value in insertion order, nothing for null, and a
// type error for anything else.
func evalIterate(input value.Value) stream.Stream {
	switch x := input.(type) {
	case value.Array:
		return stream.FromSlice(x)
	case value.Object:
		vals := make([]value.Value, 0, x.Len())
		for _, k := range x.Keys() {
			v, _ := x.Get(k)
			vals = append(vals, v)
		}
		return stream.FromSlice(vals)
	case value.Null:
		return stream.Empty()
	default:
		return stream.Fail(typeErrorf(".[]", "array or object", x))
	}
}

// indexAt implements jq's single-index rule: negative indices wrap from
// the end, out-of-range indices yield null rather than erroring, null
// input yields null, and any other type is a type error.
func indexAt(input value.Value, idx int) (value.Value, error) {
	switch x := input.(type) {
	case value.Array:
		n := len(x)
		i := idx
		if i < 0 {
			i += n
		}
		if i < 0 || i >= n {
			return value.Null{}, nil
		}
		return x[i], nil
	case value.Null:
		return value.Null{}, nil
	default:
		return nil, typeErrorf("array index", "array or null", x)
	}
}

// evalSlice evaluates ".[lo:hi]". Either bound may be absent, in which
// case it defaults to 0 (lo) or the length (hi). Bounds are broadcast
// over the cartesian product of the lo and hi streams, same as any other
// binary-shaped construct, so ".[(a,b):c]" yields one slice per (a, c) and
// one per (b, c) pair.
func evalSlice(e parser.Slice, input value.Value, en *env.Env) stream.Stream {
	loStream := sliceBoundStream(e.Lo, input, en)

	return stream.FlatMap(loStream, func(loV value.Value) (stream.Stream, error) {
		hiStream := sliceBoundStream(e.Hi, input, en)
		return stream.Map(hiStream, func(hiV value.Value) (value.Value, error) {
			return sliceValue(input, loV, hiV)
		}), nil
	})
}

// sliceBoundStream yields value.Null{} (a marker for "use the default
// bound") when expr is absent, otherwise evaluates expr against input.
func sliceBoundStream(expr parser.Expr, input value.Value, en *env.Env) stream.Stream {
	if expr == nil {
		return stream.Single(value.Null{})
	}
	return Eval(expr, input, en)
}

func sliceValue(input, loV, hiV value.Value) (value.Value, error) {
	switch x := input.(type) {
	case value.Array:
		lo, hi, err := sliceBounds(loV, hiV, len(x))
		if err != nil {
			return nil, err
		}
		return append(value.Array{}, x[lo:hi]...), nil
	case value.Str:
		runes := []rune(string(x))
		lo, hi, err := sliceBounds(loV, hiV, len(runes))
		if err != nil {
			return nil, err
		}
		return value.Str(string(runes[lo:hi])), nil
	case value.Null:
		return value.Null{}, nil
	default:
		return nil, typeErrorf(".[lo:hi]", "array, string, or null", x)
	}
}

// sliceBounds normalizes and clamps lo/hi against a sequence of length n,
// per spec: negative indices count from the end, the result is clamped
// to [0, n], and lo > hi after clamping collapses to an empty range.
func sliceBounds(loV, hiV value.Value, n int) (int, int, error) {
	lo, err := sliceBound(loV, n, 0)
	if err != nil {
		return 0, 0, err
	}
	hi, err := sliceBound(hiV, n, n)
	if err != nil {
		return 0, 0, err
	}
	if lo > hi {
		lo = hi
	}
	return lo, hi, nil
}

func sliceBound(v value.Value, n, def int) (int, error) {
	if _, isNull := v.(value.Null); isNull {
		return def, nil
	}
	num, ok := v.(value.Number)
	if !ok {
		return 0, typeErrorf("slice bound", "number", v)
	}
	idx := int(math.Trunc(float64(num)))
	if idx < 0 {
		idx += n
	}
	if idx < 0 {
		idx = 0
	}
	if idx > n {
		idx = n
	}
	return idx, nil
}

// evalOptional evaluates "E?": every value E produces passes through
// unchanged, but a Type, KeyMissing, or IndexOutOfRange error raised
// while pulling E ends the stream silently instead of propagating.
// Any other error (e.g. DivByZero, UnboundVariable) still propagates.
func evalOptional(e parser.Optional, input value.Value, en *env.Env) stream.Stream {
	inner := Eval(e.Body, input, en)
	return stream.New(func() (value.Value, bool, error) {
		v, ok, err := inner.Next()
		if err != nil {
			if isSuppressible(err) {
				return nil, false, nil
			}
			return nil, false, err
		}
		return v, ok, nil
	})
}

func isSuppressible(err error) bool {
	evalErr, ok := err.(*EvalError)
	if !ok {
		return false
	}
	switch evalErr.Kind {
	case TypeError, KeyMissing, IndexOutOfRange:
		return true
	default:
		return false
	}
}
