package matrix

import "math"

// Dot returns the dot product of a and b. Both slices must have the same
// length; the caller is responsible for checking.
func Dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum
}

// Norm returns the Euclidean norm of v.
func Norm(v []float64) float64 {
	return math.Sqrt(Dot(v, v))
}

// Normalize scales v in place to unit length. A zero vector is left
// unchanged.
func Normalize(v []float64) {
	n := Norm(v)
	if n == 0 {
		return
	}
	for i := range v {
		v[i] /= n
	}
}

// Scale returns a copy of v multiplied by alpha.
func Scale(alpha float64, v []float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = alpha * x
	}

	return out
}
