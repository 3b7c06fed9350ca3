/*
File    : jqmix/env/env_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package env

import (
	"testing"

	"github.com/akashmaji946/jqmix/value"
	"github.com/stretchr/testify/assert"
)

func TestEmptyLookupMisses(t *testing.T) {
	_, ok := Empty().Lookup("x")
	assert.False(t, ok)
}

func TestBindThenLookup(t *testing.T) {
	e := Empty().Bind("x", value.Number(1))
	v, ok := e.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, value.Number(1), v)
}

func TestShadowingInnermostWins(t *testing.T) {
	e := Empty().Bind("x", value.Number(1))
	e2 := e.Bind("x", value.Number(2))

	v, ok := e2.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, value.Number(2), v)
}

func TestBindDoesNotMutateParent(t *testing.T) {
	e := Empty().Bind("x", value.Number(1))
	_ = e.Bind("x", value.Number(2))

	v, ok := e.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, value.Number(1), v, "binding a child frame must not alter the parent's view")
}

func TestLookupWalksAncestorChain(t *testing.T) {
	e := Empty().Bind("a", value.Number(1)).Bind("b", value.Number(2))
	v, ok := e.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, value.Number(1), v)
}

func TestLookupUnboundName(t *testing.T) {
	e := Empty().Bind("a", value.Number(1))
	_, ok := e.Lookup("missing")
	assert.False(t, ok)
}
