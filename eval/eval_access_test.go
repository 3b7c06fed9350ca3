/*
File    : jqmix/eval/eval_access_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"testing"

	"github.com/akashmaji946/jqmix/env"
	"github.com/akashmaji946/jqmix/parser"
	"github.com/akashmaji946/jqmix/stream"
	"github.com/akashmaji946/jqmix/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func single(t *testing.T, s stream.Stream) value.Value {
	t.Helper()
	v, ok, err := s.Next()
	require.NoError(t, err)
	require.True(t, ok)
	_, noMore, err := s.Next()
	require.NoError(t, err)
	require.False(t, noMore)
	return v
}

func TestEvalKeyOnObject(t *testing.T) {
	input := value.Object{}.Set("foo", value.Number(42))
	v := single(t, evalKey(parser.Key{Name: "foo"}, input))
	assert.Equal(t, value.Number(42), v)
}

func TestEvalKeyMissingFoldsToNull(t *testing.T) {
	input := value.Object{}.Set("foo", value.Number(42))
	v := single(t, evalKey(parser.Key{Name: "missing"}, input))
	assert.Equal(t, value.Null{}, v)
}

func TestEvalKeyOnNullYieldsNull(t *testing.T) {
	v := single(t, evalKey(parser.Key{Name: "foo"}, value.Null{}))
	assert.Equal(t, value.Null{}, v)
}

func TestEvalKeyOnScalarIsTypeError(t *testing.T) {
	_, _, err := evalKey(parser.Key{Name: "foo"}, value.Number(1)).Next()
	require.Error(t, err)
	assert.Equal(t, TypeError, err.(*EvalError).Kind)
}

func TestEvalIndexSingle(t *testing.T) {
	arr := value.Array{value.Number(10), value.Number(20), value.Number(30)}
	idx := parser.Index{Indices: []parser.Expr{parser.Literal{Value: value.Number(1)}}}
	v := single(t, evalIndex(idx, arr, env.Empty()))
	assert.Equal(t, value.Number(20), v)
}

func TestEvalIndexNegativeWraps(t *testing.T) {
	arr := value.Array{value.Number(10), value.Number(20), value.Number(30)}
	idx := parser.Index{Indices: []parser.Expr{parser.Literal{Value: value.Number(-1)}}}
	v := single(t, evalIndex(idx, arr, env.Empty()))
	assert.Equal(t, value.Number(30), v)
}

func TestEvalIndexOutOfRangeYieldsNull(t *testing.T) {
	arr := value.Array{value.Number(1)}
	idx := parser.Index{Indices: []parser.Expr{parser.Literal{Value: value.Number(5)}}}
	v := single(t, evalIndex(idx, arr, env.Empty()))
	assert.Equal(t, value.Null{}, v)
}

func TestEvalIndexMultipleConcatenatesInOrder(t *testing.T) {
	arr := value.Array{value.Number(10), value.Number(20), value.Number(30)}
	idx := parser.Index{Indices: []parser.Expr{
		parser.Literal{Value: value.Number(0)},
		parser.Literal{Value: value.Number(2)},
	}}
	vs, err := stream.Collect(evalIndex(idx, arr, env.Empty()))
	require.NoError(t, err)
	assert.Equal(t, []value.Value{value.Number(10), value.Number(30)}, vs)
}

func TestEvalIterateArray(t *testing.T) {
	arr := value.Array{value.Number(1), value.Number(2)}
	vs, err := stream.Collect(evalIterate(arr))
	require.NoError(t, err)
	assert.Equal(t, []value.Value{value.Number(1), value.Number(2)}, vs)
}

func TestEvalIterateObjectInInsertionOrder(t *testing.T) {
	obj := value.Object{}.Set("b", value.Number(2)).Set("a", value.Number(1))
	vs, err := stream.Collect(evalIterate(obj))
	require.NoError(t, err)
	assert.Equal(t, []value.Value{value.Number(2), value.Number(1)}, vs)
}

func TestEvalIterateNullYieldsNothing(t *testing.T) {
	vs, err := stream.Collect(evalIterate(value.Null{}))
	require.NoError(t, err)
	assert.Empty(t, vs)
}

func TestEvalSliceBothBounds(t *testing.T) {
	arr := value.Array{value.Number(0), value.Number(1), value.Number(2), value.Number(3)}
	s := parser.Slice{Lo: parser.Literal{Value: value.Number(1)}, Hi: parser.Literal{Value: value.Number(3)}}
	v := single(t, evalSlice(s, arr, env.Empty()))
	assert.Equal(t, value.Array{value.Number(1), value.Number(2)}, v)
}

func TestEvalSliceOmittedBoundsDefault(t *testing.T) {
	arr := value.Array{value.Number(0), value.Number(1), value.Number(2)}
	s := parser.Slice{}
	v := single(t, evalSlice(s, arr, env.Empty()))
	assert.Equal(t, arr, v)
}

func TestEvalSliceOnString(t *testing.T) {
	s := parser.Slice{Lo: parser.Literal{Value: value.Number(1)}, Hi: parser.Literal{Value: value.Number(3)}}
	v := single(t, evalSlice(s, value.Str("hello"), env.Empty()))
	assert.Equal(t, value.Str("el"), v)
}

func TestEvalOptionalSuppressesTypeError(t *testing.T) {
	opt := parser.Optional{Body: parser.Key{Name: "foo"}}
	vs, err := stream.Collect(evalOptional(opt, value.Number(1), env.Empty()))
	require.NoError(t, err)
	assert.Empty(t, vs)
}

func TestEvalOptionalPassesThroughValues(t *testing.T) {
	input := value.Object{}.Set("foo", value.Number(1))
	opt := parser.Optional{Body: parser.Key{Name: "foo"}}
	v := single(t, evalOptional(opt, input, env.Empty()))
	assert.Equal(t, value.Number(1), v)
}

func TestEvalOptionalDoesNotSuppressDivByZero(t *testing.T) {
	divByZero := parser.Operation{Left: parser.Literal{Value: value.Number(1)}, Op: parser.OpDiv, Right: parser.Literal{Value: value.Number(0)}}
	opt := parser.Optional{Body: divByZero}
	_, _, err := evalOptional(opt, value.Null{}, env.Empty()).Next()
	require.Error(t, err)
	assert.Equal(t, DivByZero, err.(*EvalError).Kind)
}
