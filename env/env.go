/*
File    : jqmix/env/env.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package env implements the interpreter's variable environment: an
// immutable mapping from variable names to JSON values, chained to a
// parent the way a lexical scope chain is, but persistent — binding a
// name never mutates an existing *Env, it produces a new one that shadows
// the old. This mirrors the scope-chain shape of a conventional
// interpreter while satisfying the stricter contract that an environment
// never outlives or is altered by the evaluation that created it.
package env

import "github.com/akashmaji946/jqmix/value"

// Env is one frame of the variable environment chain. A nil *Env is the
// empty environment.
type Env struct {
	name   string
	val    value.Value
	parent *Env
}

// Empty returns the environment with no bindings.
func Empty() *Env {
	return nil
}

// Bind returns a new environment identical to e but with name bound to v,
// shadowing any existing binding of name. e itself is left untouched, so
// callers holding a reference to e continue to see the old bindings.
func (e *Env) Bind(name string, v value.Value) *Env {
	return &Env{name: name, val: v, parent: e}
}

// Lookup searches this environment and its ancestors for name, innermost
// binding first.
func (e *Env) Lookup(name string) (value.Value, bool) {
	for frame := e; frame != nil; frame = frame.parent {
		if frame.name == name {
			return frame.val, true
		}
	}
	return nil, false
}
