package enigma

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_AddAndLookup(t *testing.T) {
	cat := newStandardCatalog(t)

	assert.Equal(t, len(standardRotors), cat.Len())

	rot, ok := cat.Lookup("I")
	require.True(t, ok)
	assert.Equal(t, "I", rot.Name())

	_, ok = cat.Lookup("IX")
	assert.False(t, ok)
}

func TestCatalog_DuplicateName(t *testing.T) {
	a := newTestAlphabet(t)
	cat := NewCatalog(a)

	perm := newTestPermutation(t, "(AB)", a)
	require.NoError(t, cat.Add(NewFixedRotor("X", perm)))

	err := cat.Add(NewFixedRotor("X", perm))
	require.Error(t, err)
	assert.True(t, IsConfiguration(err))
}

func TestCatalog_AlphabetMismatch(t *testing.T) {
	a := newTestAlphabet(t)
	cat := NewCatalog(a)

	other, err := NewAlphabet("ABCD")
	require.NoError(t, err)
	perm, err := NewPermutation("(AB)", other)
	require.NoError(t, err)

	err = cat.Add(NewFixedRotor("foreign", perm))
	require.Error(t, err)
	assert.True(t, IsConfiguration(err))
}

func TestCatalog_NamesPreserveOrder(t *testing.T) {
	cat := newStandardCatalog(t)

	want := make([]string, len(standardRotors))
	for i, spec := range standardRotors {
		want[i] = spec.name
	}
	assert.Equal(t, want, cat.Names())
}
