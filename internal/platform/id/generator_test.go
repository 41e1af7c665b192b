package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomGenerator_NewID(t *testing.T) {
	t.Parallel()

	a, err := NewRandomGenerator().NewID()
	require.NoError(t, err)
	b, err := NewRandomGenerator().NewID()
	require.NoError(t, err)

	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}

func TestPrefixedGenerator_NewID(t *testing.T) {
	t.Parallel()

	got, err := NewPrefixedGenerator(" refresh ").NewID()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "refresh_"))
	assert.Len(t, got, len("refresh_")+32)
}
