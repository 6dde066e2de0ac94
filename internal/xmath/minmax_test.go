package xmath_test

import (
	"testing"

	"github.com/katalvlaran/graphcodec/internal/xmath"
	"github.com/stretchr/testify/require"
)

func TestSetMax(t *testing.T) {
	t.Parallel()

	v := 3
	require.True(t, xmath.SetMax(&v, 5))
	require.Equal(t, 5, v)
	require.False(t, xmath.SetMax(&v, 5))
	require.False(t, xmath.SetMax(&v, 1))
}

func TestSetMin(t *testing.T) {
	t.Parallel()

	v := 3.0
	require.True(t, xmath.SetMin(&v, 1.0))
	require.Equal(t, 1.0, v)
	require.False(t, xmath.SetMin(&v, 2.0))
}

func TestDecodeHexRun(t *testing.T) {
	t.Parallel()

	v, err := xmath.DecodeHexRun("4a")
	require.NoError(t, err)
	require.Equal(t, uint64(0x4a), v)

	_, err = xmath.DecodeHexRun("4g")
	require.ErrorIs(t, err, xmath.ErrBadHexDigit)
}
