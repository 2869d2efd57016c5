package tun

import (
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewName(t *testing.T) {
	n, err := NewName("utun3")
	require.NoError(t, err)
	assert.Equal(t, "utun3", n.String())
	assert.False(t, n.IsZero())

	b := n.Bytes()
	assert.Equal(t, []byte("utun3"), b[:5])
	assert.Zero(t, b[5])

	_, err = NewName("0123456789abcdef")
	assert.ErrorIs(t, err, syscall.ENAMETOOLONG)

	n, err = NewName("0123456789abcde")
	require.NoError(t, err)
	b = n.Bytes()
	assert.Zero(t, b[NameCapacity-1], "a name always leaves room for the terminator")

	assert.True(t, Name{}.IsZero())
}

func TestResolvedName(t *testing.T) {
	n, err := resolvedName("tun0\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00")
	require.NoError(t, err)
	assert.Equal(t, "tun0", n.String())

	_, err = resolvedName("\x00\x00\x00\x00")
	require.Error(t, err)
	assert.Equal(t, Acquisition, GetCategory(err))

	_, err = resolvedName("")
	assert.Error(t, err)
}
