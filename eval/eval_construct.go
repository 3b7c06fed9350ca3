/*
File    : jqmix/eval/eval_construct.go
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

// evalArrayConstruct evaluates "[E]" (or "[]" when Body is nil): the body
// is drained completely and collected into a single array value. The
// outer stream is still pull-based — nothing runs until the first Next
// call — even though Body's own stream is necessarily materialized in
// full once it does.
func evalArrayConstruct(e parser.ArrayConstruct, input value.Value, en *env.Env) stream.Stream {
	done := false
	return stream.New(func() (value.Value, bool, error) {
		if done {
			return nil, false, nil
		}
		done = true
		if e.Body == nil {
			return value.Array{}, true, nil
		}
		vals, err := stream.Collect(Eval(e.Body, input, en))
		if err != nil {
			return nil, false, err
		}
		if vals == nil {
			vals = []value.Value{}
		}
		return value.Array(vals), true, nil
	})
}

// objectEntry is one accumulated (key, value) pair while building the
// cartesian product of an object construction's entries.
type objectEntry struct {
	key string
	val value.Value
}

// evalObjectConstruct evaluates "{ entries }": the cartesian product of
// every entry's key and value streams, left to right, one produced
// object per combination. Keys must evaluate to strings.
func evalObjectConstruct(e parser.ObjectConstruct, input value.Value, en *env.Env) stream.Stream {
	return buildObjectEntries(e.Entries, 0, nil, input, en)
}

func buildObjectEntries(entries []parser.ObjectEntry, idx int, acc []objectEntry, input value.Value, en *env.Env) stream.Stream {
	if idx == len(entries) {
		obj := value.Object{}
		for _, p := range acc {
			obj = obj.Set(p.key, p.val)
		}
		return stream.Single(obj)
	}

	entry := entries[idx]
	keys := Eval(entry.Key, input, en)
	return stream.FlatMap(keys, func(kv value.Value) (stream.Stream, error) {
		keyStr, ok := kv.(value.Str)
		if !ok {
			return stream.Empty(), typeErrorf("object key", "string", kv)
		}
		values := Eval(entry.Value, input, en)
		return stream.FlatMap(values, func(vv value.Value) (stream.Stream, error) {
			next := append(append([]objectEntry{}, acc...), objectEntry{key: string(keyStr), val: vv})
			return buildObjectEntries(entries, idx+1, next, input, en), nil
		}), nil
	})
}
