/*
File    : jqmix/stream/stream.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package stream implements the lazy, pull-based value stream that every
// expression in the interpreter produces. A Stream is advanced one value
// at a time by its consumer, the same way the lexer hands tokens to the
// parser one NextToken call at a time rather than tokenizing eagerly: the
// stream is driven on demand, and a stream that is never fully drained
// never does more work than the consumer asked for.
package stream

import "github.com/akashmaji946/jqmix/value"

// Stream is a finite, single-pass sequence of values. Calling Next past
// the end of the sequence keeps returning (nil, false, nil); a Stream must
// not be reused after an error or after it reports ok == false.
type Stream struct {
	next func() (value.Value, bool, error)
}

// Next pulls the next value from the stream. ok is false once the stream
// is exhausted; err is non-nil if evaluating the next value failed, in
// which case the stream must not be pulled again.
func (s Stream) Next() (value.Value, bool, error) {
	if s.next == nil {
		return nil, false, nil
	}
	return s.next()
}

// New builds a Stream from a pull function.
func New(next func() (value.Value, bool, error)) Stream {
	return Stream{next: next}
}

// Empty is the stream with no values.
func Empty() Stream {
	return Stream{}
}

// Single yields exactly one value.
func Single(v value.Value) Stream {
	done := false
	return New(func() (value.Value, bool, error) {
		if done {
			return nil, false, nil
		}
		done = true
		return v, true, nil
	})
}

// Fail yields no values and reports err on the first pull.
func Fail(err error) Stream {
	done := false
	return New(func() (value.Value, bool, error) {
		if done {
			return nil, false, nil
		}
		done = true
		return nil, false, err
	})
}

// FromSlice yields each element of vs in order.
func FromSlice(vs []value.Value) Stream {
	i := 0
	return New(func() (value.Value, bool, error) {
		if i >= len(vs) {
			return nil, false, nil
		}
		v := vs[i]
		i++
		return v, true, nil
	})
}

// Concat yields every value of a, then every value of b. This realizes
// the comma operator: eval(E1, E2) = eval(E1) ++ eval(E2).
func Concat(a, b Stream) Stream {
	first := true
	return New(func() (value.Value, bool, error) {
		for {
			if first {
				v, ok, err := a.Next()
				if err != nil {
					return nil, false, err
				}
				if ok {
					return v, true, nil
				}
				first = false
				continue
			}
			return b.Next()
		}
	})
}

// FlatMap realizes the pipe operator: for each v of s, yield every value
// of f(v), outer-then-inner, in order.
func FlatMap(s Stream, f func(value.Value) (Stream, error)) Stream {
	var inner Stream
	haveInner := false
	return New(func() (value.Value, bool, error) {
		for {
			if haveInner {
				v, ok, err := inner.Next()
				if err != nil {
					return nil, false, err
				}
				if ok {
					return v, true, nil
				}
				haveInner = false
				continue
			}
			v, ok, err := s.Next()
			if err != nil {
				return nil, false, err
			}
			if !ok {
				return nil, false, nil
			}
			next, err := f(v)
			if err != nil {
				return nil, false, err
			}
			inner = next
			haveInner = true
		}
	})
}

// Collect drains s into a slice. Used where an expression's result must be
// materialized in full before use, e.g. array construction.
func Collect(s Stream) ([]value.Value, error) {
	var out []value.Value
	for {
		v, ok, err := s.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, v)
	}
}

// Map transforms every value of s through f, preserving order. Errors from
// f end the stream.
func Map(s Stream, f func(value.Value) (value.Value, error)) Stream {
	return New(func() (value.Value, bool, error) {
		v, ok, err := s.Next()
		if err != nil || !ok {
			return nil, ok, err
		}
		out, err := f(v)
		if err != nil {
			return nil, false, err
		}
		return out, true, nil
	})
}

// Filter yields only the values of s for which keep returns true.
func Filter(s Stream, keep func(value.Value) (bool, error)) Stream {
	return New(func() (value.Value, bool, error) {
		for {
			v, ok, err := s.Next()
			if err != nil || !ok {
				return nil, ok, err
			}
			pass, err := keep(v)
			if err != nil {
				return nil, false, err
			}
			if pass {
				return v, true, nil
			}
		}
	})
}
