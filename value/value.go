/*
File    : jqmix/value/value.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package value defines the JSON value model the interpreter evaluates
// over: the six-case tagged union of null, boolean, number, string, array,
// and object, with objects that preserve the insertion order of their keys.
// Every concrete type implements Value, which is deliberately narrow —
// Kind for type dispatch and String for serialization — so the evaluator
// can type-switch on the concrete type when it needs more than that.
package value

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies which of the six JSON cases a Value holds.
type Kind string

const (
	NullKind   Kind = "null"
	BoolKind   Kind = "boolean"
	NumberKind Kind = "number"
	StringKind Kind = "string"
	ArrayKind  Kind = "array"
	ObjectKind Kind = "object"
)

// Value is any JSON value. Implementations are immutable: every
// transformation in this module returns a new Value rather than mutating
// the receiver.
type Value interface {
	// Kind reports which of the six JSON cases this value is.
	Kind() Kind
	// String renders the value as compact JSON text.
	String() string
}

// Null is the JSON null value. The zero value is ready to use.
type Null struct{}

func (Null) Kind() Kind     { return NullKind }
func (Null) String() string { return "null" }

// Bool is a JSON boolean.
type Bool bool

func (Bool) Kind() Kind { return BoolKind }
func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

// Number is a JSON number, held as an IEEE-754 double throughout.
type Number float64

func (Number) Kind() Kind { return NumberKind }
func (n Number) String() string {
	f := float64(n)
	if f == float64(int64(f)) && !strings.ContainsAny(strconv.FormatFloat(f, 'g', -1, 64), "eE") {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Str is a JSON string.
type Str string

func (Str) Kind() Kind { return StringKind }
func (s Str) String() string {
	return quoteJSON(string(s))
}

// Array is a JSON array: an ordered, possibly empty sequence of values.
type Array []Value

func (Array) Kind() Kind { return ArrayKind }
func (a Array) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, elem := range a {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(elem.String())
	}
	b.WriteByte(']')
	return b.String()
}

// Object is a JSON object that preserves the insertion order of its keys.
// The zero value is an empty object ready to use.
type Object struct {
	keys    []string
	entries map[string]Value
}

// NewObject builds an Object from keys in the given order, paired with
// values at the same index. Later duplicate keys overwrite the value at
// the earlier key's position rather than appending a second entry, which
// matches the key's first-occurrence position for insertion order.
func NewObject(keys []string, values []Value) Object {
	obj := Object{entries: make(map[string]Value, len(keys))}
	for i, k := range keys {
		obj = obj.Set(k, values[i])
	}
	return obj
}

// Keys returns the object's keys in insertion order. The returned slice
// must not be mutated by the caller.
func (o Object) Keys() []string {
	return o.keys
}

// Len returns the number of keys in the object.
func (o Object) Len() int {
	return len(o.keys)
}

// Get returns the value bound to key and whether it was present.
func (o Object) Get(key string) (Value, bool) {
	v, ok := o.entries[key]
	return v, ok
}

// Set returns a new Object with key bound to v. If key already exists its
// value is replaced in place, preserving its original position; otherwise
// key is appended at the end. The receiver is never mutated.
func (o Object) Set(key string, v Value) Object {
	entries := make(map[string]Value, len(o.entries)+1)
	for k, existing := range o.entries {
		entries[k] = existing
	}
	_, existed := entries[key]
	entries[key] = v

	if existed {
		return Object{keys: o.keys, entries: entries}
	}
	keys := make([]string, len(o.keys), len(o.keys)+1)
	copy(keys, o.keys)
	keys = append(keys, key)
	return Object{keys: keys, entries: entries}
}

func (Object) Kind() Kind { return ObjectKind }
func (o Object) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(quoteJSON(k))
		b.WriteByte(':')
		b.WriteString(o.entries[k].String())
	}
	b.WriteByte('}')
	return b.String()
}

// Truthy implements jq truthiness: every value is truthy except false and
// null.
func Truthy(v Value) bool {
	switch x := v.(type) {
	case Null:
		return false
	case Bool:
		return bool(x)
	default:
		return true
	}
}

// TypeName returns the jq type-name string produced by the "type"
// built-in: "null", "boolean", "number", "string", "array", or "object".
func TypeName(v Value) string {
	return string(v.Kind())
}

func quoteJSON(s string) string {
	var b strings.Builder
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return fmt.Sprintf("%q", s)
	}
	return strings.TrimSuffix(b.String(), "\n")
}
