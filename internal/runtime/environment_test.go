package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvironment_DefineAndGet(t *testing.T) {
	env := NewEnvironment()
	env.Define("x", 1.0)

	v, err := env.Get("x")
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestEnvironment_GetUndefinedIsError(t *testing.T) {
	env := NewEnvironment()
	_, err := env.Get("missing")
	assert.Error(t, err)
}

func TestEnvironment_AssignWalksChain(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("x", 1.0)
	inner := NewEnclosedEnvironment(outer)

	require.NoError(t, inner.Assign("x", 2.0))

	v, err := outer.Get("x")
	require.NoError(t, err)
	assert.Equal(t, 2.0, v, "Assign must mutate the outer binding, not shadow it")
}

func TestEnvironment_DefineShadowsWithoutMutatingOuter(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("x", 1.0)
	inner := NewEnclosedEnvironment(outer)
	inner.Define("x", 2.0)

	innerVal, err := inner.Get("x")
	require.NoError(t, err)
	assert.Equal(t, 2.0, innerVal)

	outerVal, err := outer.Get("x")
	require.NoError(t, err)
	assert.Equal(t, 1.0, outerVal)
}

func TestEnvironment_AssignUndefinedIsError(t *testing.T) {
	env := NewEnvironment()
	err := env.Assign("missing", 1.0)
	assert.Error(t, err)
}

func TestEnvironment_GetAtAndAssignAt(t *testing.T) {
	global := NewEnvironment()
	block := NewEnclosedEnvironment(global)
	inner := NewEnclosedEnvironment(block)
	block.Define("x", 1.0)

	assert.Equal(t, 1.0, inner.GetAt(1, "x"))

	inner.AssignAt(1, "x", 5.0)
	assert.Equal(t, 5.0, block.GetAt(0, "x"))
}
