package sampling

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSourceDeterminism(t *testing.T) {
	seed := Seed{'a', 'b', 'c'}

	s1 := NewSource(seed)
	s2 := NewSource(seed)

	buf1 := make([]byte, 1024)
	buf2 := make([]byte, 1024)

	_, err := s1.Read(buf1)
	require.NoError(t, err)
	_, err = s2.Read(buf2)
	require.NoError(t, err)

	require.Equal(t, buf1, buf2)
	require.Equal(t, s1.Uint64(), s2.Uint64())
}

func TestSourceFork(t *testing.T) {
	seed := Seed{'a', 'b', 'c'}

	s := NewSource(seed)
	child := s.NewSource()

	buf1 := make([]byte, 64)
	buf2 := make([]byte, 64)
	_, err := s.Read(buf1)
	require.NoError(t, err)
	_, err = child.Read(buf2)
	require.NoError(t, err)

	require.NotEqual(t, buf1, buf2)
}

func TestNewSeed(t *testing.T) {
	require.NotEqual(t, NewSeed(), NewSeed())
}
