/*
File    : jqmix/stream/stream_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package stream

import (
	"errors"
	"testing"

	"github.com/akashmaji946/jqmix/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, s Stream) ([]value.Value, error) {
	t.Helper()
	var out []value.Value
	for {
		v, ok, err := s.Next()
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, v)
	}
}

func TestEmptyAndSingle(t *testing.T) {
	vs, err := drain(t, Empty())
	require.NoError(t, err)
	assert.Empty(t, vs)

	vs, err = drain(t, Single(value.Number(1)))
	require.NoError(t, err)
	assert.Equal(t, []value.Value{value.Number(1)}, vs)
}

func TestFail(t *testing.T) {
	sentinel := errors.New("boom")
	vs, err := drain(t, Fail(sentinel))
	assert.ErrorIs(t, err, sentinel)
	assert.Empty(t, vs)
}

func TestFromSlicePreservesOrder(t *testing.T) {
	vs, err := drain(t, FromSlice([]value.Value{value.Number(1), value.Number(2), value.Number(3)}))
	require.NoError(t, err)
	assert.Equal(t, []value.Value{value.Number(1), value.Number(2), value.Number(3)}, vs)
}

func TestConcatYieldsLeftThenRight(t *testing.T) {
	left := FromSlice([]value.Value{value.Number(1)})
	right := FromSlice([]value.Value{value.Number(2), value.Number(3)})
	vs, err := drain(t, Concat(left, right))
	require.NoError(t, err)
	assert.Equal(t, []value.Value{value.Number(1), value.Number(2), value.Number(3)}, vs)
}

func TestFlatMapIsOuterThenInner(t *testing.T) {
	s := FromSlice([]value.Value{value.Number(1), value.Number(2)})
	mapped := FlatMap(s, func(v value.Value) (Stream, error) {
		n := v.(value.Number)
		return FromSlice([]value.Value{n, n}), nil
	})
	vs, err := drain(t, mapped)
	require.NoError(t, err)
	assert.Equal(t, []value.Value{value.Number(1), value.Number(1), value.Number(2), value.Number(2)}, vs)
}

func TestFlatMapPropagatesInnerError(t *testing.T) {
	sentinel := errors.New("inner boom")
	s := FromSlice([]value.Value{value.Number(1)})
	mapped := FlatMap(s, func(v value.Value) (Stream, error) {
		return Fail(sentinel), nil
	})
	_, err := drain(t, mapped)
	assert.ErrorIs(t, err, sentinel)
}

func TestCollect(t *testing.T) {
	vs, err := Collect(FromSlice([]value.Value{value.Number(1), value.Number(2)}))
	require.NoError(t, err)
	assert.Equal(t, []value.Value{value.Number(1), value.Number(2)}, vs)
}

func TestMap(t *testing.T) {
	s := Map(FromSlice([]value.Value{value.Number(1), value.Number(2)}), func(v value.Value) (value.Value, error) {
		return v.(value.Number) * 2, nil
	})
	vs, err := drain(t, s)
	require.NoError(t, err)
	assert.Equal(t, []value.Value{value.Number(2), value.Number(4)}, vs)
}

func TestFilter(t *testing.T) {
	s := Filter(FromSlice([]value.Value{value.Number(1), value.Number(2), value.Number(3)}), func(v value.Value) (bool, error) {
		return v.(value.Number) > 1, nil
	})
	vs, err := drain(t, s)
	require.NoError(t, err)
	assert.Equal(t, []value.Value{value.Number(2), value.Number(3)}, vs)
}

func TestLazinessNeverDrivesBeyondWhatIsPulled(t *testing.T) {
	pulls := 0
	s := New(func() (value.Value, bool, error) {
		pulls++
		if pulls > 1 {
			return nil, false, nil
		}
		return value.Number(1), true, nil
	})
	v, ok, err := s.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, value.Number(1), v)
	assert.Equal(t, 1, pulls, "constructing or partially pulling a stream must not force later elements")
}
