package matrix

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDot(t *testing.T) {
	require.Equal(t, 32.0, Dot([]float64{1, 2, 3}, []float64{4, 5, 6}))
	require.Zero(t, Dot([]float64{1, 0}, []float64{0, 1}))
}

func TestNorm(t *testing.T) {
	require.Equal(t, 5.0, Norm([]float64{3, 4}))
	require.Zero(t, Norm([]float64{0, 0, 0}))
}

func TestNormalize(t *testing.T) {
	v := []float64{3, 4}
	Normalize(v)
	require.InDelta(t, 1.0, Norm(v), 1e-12)
	require.InDelta(t, 0.6, v[0], 1e-12)

	zero := []float64{0, 0}
	Normalize(zero)
	require.Equal(t, []float64{0, 0}, zero)
}

func TestScale(t *testing.T) {
	v := []float64{1, -2, 3}
	got := Scale(-2, v)
	require.Equal(t, []float64{-2, 4, -6}, got)
	require.Equal(t, []float64{1, -2, 3}, v, "input must not be mutated")
	require.False(t, math.Signbit(got[1]))
}
