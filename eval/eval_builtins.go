/*
File    : jqmix/eval/eval_builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"
	"math"
	"sort"
	"unicode/utf8"

	"github.com/akashmaji946/jqmix/env"
	"github.com/akashmaji946/jqmix/parser"
	"github.com/akashmaji946/jqmix/stream"
	"github.com/akashmaji946/jqmix/value"
)

// evalBuiltin dispatches a recognized built-in call to its implementation.
// map and select close over their argument expression and the calling
// environment since, unlike every other built-in, they re-evaluate a
// sub-expression per element rather than acting on input alone.
func evalBuiltin(e parser.BuiltinCall, input value.Value, en *env.Env) stream.Stream {
	switch e.Name {
	case "length":
		return builtinLength(input)
	case "keys":
		return builtinKeys(input)
	case "values":
		return builtinValues(input)
	case "type":
		return stream.Single(value.Str(value.TypeName(input)))
	case "empty":
		return stream.Empty()
	case "not":
		return stream.Single(value.Bool(!value.Truthy(input)))
	case "map":
		return builtinMap(e.Args[0], input, en)
	case "select":
		return builtinSelect(e.Args[0], input, en)
	case "sort":
		return builtinSort(input)
	case "reverse":
		return builtinReverse(input)
	case "unique":
		return builtinUnique(input)
	case "add":
		return builtinAdd(input)
	case "min":
		return builtinMinMax(input, true)
	case "max":
		return builtinMinMax(input, false)
	case "floor":
		return builtinFloor(input)
	case "sqrt":
		return builtinSqrt(input)
	case "flatten":
		return builtinFlattenCall(e, input, en)
	default:
		return stream.Fail(fmt.Errorf("eval: unknown built-in %q", e.Name))
	}
}

func builtinLength(input value.Value) stream.Stream {
	switch x := input.(type) {
	case value.Null:
		return stream.Single(value.Number(0))
	case value.Str:
		return stream.Single(value.Number(utf8.RuneCountInString(string(x))))
	case value.Array:
		return stream.Single(value.Number(len(x)))
	case value.Object:
		return stream.Single(value.Number(x.Len()))
	case value.Number:
		return stream.Single(value.Number(math.Abs(float64(x))))
	default:
		return stream.Fail(typeErrorf("length", "null, string, array, object, or number", x))
	}
}

// builtinKeys yields an object's keys in sorted order (jq convention, not
// insertion order) or, for an array, the index sequence [0..len-1].
func builtinKeys(input value.Value) stream.Stream {
	switch x := input.(type) {
	case value.Object:
		keys := append([]string(nil), x.Keys()...)
		sort.Strings(keys)
		out := make(value.Array, len(keys))
		for i, k := range keys {
			out[i] = value.Str(k)
		}
		return stream.Single(out)
	case value.Array:
		out := make(value.Array, len(x))
		for i := range x {
			out[i] = value.Number(i)
		}
		return stream.Single(out)
	default:
		return stream.Fail(typeErrorf("keys", "object or array", x))
	}
}

// builtinValues yields an object's values ordered by sorted key (to match
// keys), or an array unchanged.
func builtinValues(input value.Value) stream.Stream {
	switch x := input.(type) {
	case value.Object:
		keys := append([]string(nil), x.Keys()...)
		sort.Strings(keys)
		out := make(value.Array, len(keys))
		for i, k := range keys {
			v, _ := x.Get(k)
			out[i] = v
		}
		return stream.Single(out)
	case value.Array:
		return stream.Single(x)
	default:
		return stream.Fail(typeErrorf("values", "object or array", x))
	}
}

// builtinMap implements "map(E)" as "[ .[] | E ]": the whole result is
// one array, collecting every output of E for every element in order.
func builtinMap(argExpr parser.Expr, input value.Value, en *env.Env) stream.Stream {
	arr, ok := input.(value.Array)
	if !ok {
		return stream.Fail(typeErrorf("map", "array", input))
	}
	done := false
	return stream.New(func() (value.Value, bool, error) {
		if done {
			return nil, false, nil
		}
		done = true
		var out []value.Value
		for _, elem := range arr {
			vals, err := stream.Collect(Eval(argExpr, elem, en))
			if err != nil {
				return nil, false, err
			}
			out = append(out, vals...)
		}
		if out == nil {
			out = []value.Value{}
		}
		return value.Array(out), true, nil
	})
}

// builtinSelect implements "select(E)": E is evaluated against the same
// input as select itself, and input is re-emitted once per truthy value
// E produces (zero times if E's output is all falsy or empty).
func builtinSelect(argExpr parser.Expr, input value.Value, en *env.Env) stream.Stream {
	cond := Eval(argExpr, input, en)
	return stream.FlatMap(cond, func(cv value.Value) (stream.Stream, error) {
		if value.Truthy(cv) {
			return stream.Single(input), nil
		}
		return stream.Empty(), nil
	})
}

func builtinSort(input value.Value) stream.Stream {
	arr, ok := input.(value.Array)
	if !ok {
		return stream.Fail(typeErrorf("sort", "array", input))
	}
	out := append(value.Array{}, arr...)
	sort.SliceStable(out, func(i, j int) bool { return value.Compare(out[i], out[j]) < 0 })
	return stream.Single(out)
}

func builtinReverse(input value.Value) stream.Stream {
	switch x := input.(type) {
	case value.Array:
		out := make(value.Array, len(x))
		for i, v := range x {
			out[len(x)-1-i] = v
		}
		return stream.Single(out)
	case value.Str:
		runes := []rune(string(x))
		for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
			runes[i], runes[j] = runes[j], runes[i]
		}
		return stream.Single(value.Str(string(runes)))
	default:
		return stream.Fail(typeErrorf("reverse", "array or string", x))
	}
}

func builtinUnique(input value.Value) stream.Stream {
	arr, ok := input.(value.Array)
	if !ok {
		return stream.Fail(typeErrorf("unique", "array", input))
	}
	out := append(value.Array{}, arr...)
	sort.SliceStable(out, func(i, j int) bool { return value.Compare(out[i], out[j]) < 0 })

	deduped := make(value.Array, 0, len(out))
	for i, v := range out {
		if i == 0 || !value.Equal(out[i-1], v) {
			deduped = append(deduped, v)
		}
	}
	return stream.Single(deduped)
}

func builtinAdd(input value.Value) stream.Stream {
	var elems []value.Value
	switch x := input.(type) {
	case value.Array:
		elems = x
	case value.Object:
		for _, k := range x.Keys() {
			v, _ := x.Get(k)
			elems = append(elems, v)
		}
	default:
		return stream.Fail(typeErrorf("add", "array or object", x))
	}

	var acc value.Value = value.Null{}
	for _, v := range elems {
		next, err := applyAdd(acc, v)
		if err != nil {
			return stream.Fail(err)
		}
		acc = next
	}
	return stream.Single(acc)
}

func builtinMinMax(input value.Value, wantMin bool) stream.Stream {
	arr, ok := input.(value.Array)
	if !ok {
		name := "max"
		if wantMin {
			name = "min"
		}
		return stream.Fail(typeErrorf(name, "array", input))
	}
	if len(arr) == 0 {
		return stream.Single(value.Null{})
	}
	best := arr[0]
	for _, v := range arr[1:] {
		c := value.Compare(v, best)
		if (wantMin && c < 0) || (!wantMin && c > 0) {
			best = v
		}
	}
	return stream.Single(best)
}

func builtinFloor(input value.Value) stream.Stream {
	n, ok := input.(value.Number)
	if !ok {
		return stream.Fail(typeErrorf("floor", "number", input))
	}
	return stream.Single(value.Number(math.Floor(float64(n))))
}

func builtinSqrt(input value.Value) stream.Stream {
	n, ok := input.(value.Number)
	if !ok {
		return stream.Fail(typeErrorf("sqrt", "number", input))
	}
	return stream.Single(value.Number(math.Sqrt(float64(n))))
}

// builtinFlattenCall resolves flatten's optional depth argument (default
// 1), an expression evaluated against input that must produce exactly one
// non-negative number, before flattening.
func builtinFlattenCall(e parser.BuiltinCall, input value.Value, en *env.Env) stream.Stream {
	depth := 1
	if len(e.Args) > 0 {
		vals, err := stream.Collect(Eval(e.Args[0], input, en))
		if err != nil {
			return stream.Fail(err)
		}
		if len(vals) != 1 {
			return stream.Fail(&EvalError{Kind: TypeError, Message: "flatten: depth argument must produce exactly one value"})
		}
		num, ok := vals[0].(value.Number)
		if !ok {
			return stream.Fail(typeErrorf("flatten depth", "number", vals[0]))
		}
		if num < 0 {
			return stream.Fail(&EvalError{Kind: TypeError, Message: "flatten: depth must be >= 0"})
		}
		depth = int(num)
	}
	arr, ok := input.(value.Array)
	if !ok {
		return stream.Fail(typeErrorf("flatten", "array", input))
	}
	return stream.Single(flattenArray(arr, depth))
}

func flattenArray(arr value.Array, depth int) value.Array {
	out := make(value.Array, 0, len(arr))
	for _, v := range arr {
		if sub, ok := v.(value.Array); ok && depth > 0 {
			out = append(out, flattenArray(sub, depth-1)...)
		} else {
			out = append(out, v)
		}
	}
	return out
}
