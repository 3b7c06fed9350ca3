/*
File    : jqmix/value/value_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindAndString(t *testing.T) {
	assert.Equal(t, "null", Null{}.String())
	assert.Equal(t, "true", Bool(true).String())
	assert.Equal(t, "false", Bool(false).String())
	assert.Equal(t, "42", Number(42).String())
	assert.Equal(t, "3.5", Number(3.5).String())
	assert.Equal(t, `"hi"`, Str("hi").String())
	assert.Equal(t, "[1,2]", Array{Number(1), Number(2)}.String())

	assert.Equal(t, NullKind, Null{}.Kind())
	assert.Equal(t, BoolKind, Bool(true).Kind())
	assert.Equal(t, NumberKind, Number(1).Kind())
	assert.Equal(t, StringKind, Str("x").Kind())
	assert.Equal(t, ArrayKind, Array{}.Kind())
	assert.Equal(t, ObjectKind, Object{}.Kind())
}

func TestTruthy(t *testing.T) {
	assert.False(t, Truthy(Null{}))
	assert.False(t, Truthy(Bool(false)))
	assert.True(t, Truthy(Bool(true)))
	assert.True(t, Truthy(Number(0)))
	assert.True(t, Truthy(Str("")))
	assert.True(t, Truthy(Array{}))
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "object", TypeName(Object{}))
	assert.Equal(t, "array", TypeName(Array{}))
}

func TestObjectPreservesInsertionOrder(t *testing.T) {
	obj := Object{}
	obj = obj.Set("b", Number(2))
	obj = obj.Set("a", Number(1))
	obj = obj.Set("c", Number(3))

	assert.Equal(t, []string{"b", "a", "c"}, obj.Keys())
	assert.Equal(t, `{"b":2,"a":1,"c":3}`, obj.String())
}

func TestObjectSetOverwriteKeepsPosition(t *testing.T) {
	obj := Object{}
	obj = obj.Set("a", Number(1))
	obj = obj.Set("b", Number(2))
	obj = obj.Set("a", Number(99))

	assert.Equal(t, []string{"a", "b"}, obj.Keys())
	v, ok := obj.Get("a")
	assert.True(t, ok)
	assert.Equal(t, Number(99), v)
}

func TestObjectSetDoesNotMutateReceiver(t *testing.T) {
	base := Object{}.Set("a", Number(1))
	extended := base.Set("b", Number(2))

	assert.Equal(t, []string{"a"}, base.Keys())
	assert.Equal(t, []string{"a", "b"}, extended.Keys())
}

func TestNewObject(t *testing.T) {
	obj := NewObject([]string{"x", "y"}, []Value{Number(1), Str("z")})
	assert.Equal(t, []string{"x", "y"}, obj.Keys())
	v, _ := obj.Get("y")
	assert.Equal(t, Str("z"), v)
}
