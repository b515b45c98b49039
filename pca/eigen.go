package pca

import (
	"fmt"
	"math"
	"slices"

	"github.com/varlab/princomp/errs"
	"github.com/varlab/princomp/matrix"
)

// symTolerance is the absolute asymmetry allowance when validating input to
// the eigensolver. Covariance matrices built by this library are exactly
// symmetric; the allowance exists for matrices assembled elsewhere.
const symTolerance = 1e-10

// EigenDecompose computes all eigenpairs of the symmetric matrix c using
// cyclic Jacobi rotations.
//
// The returned eigenpairs are sorted by descending eigenvalue with ties
// broken by original column order, their eigenvectors are orthonormal, and
// each vector's sign is fixed so its largest-magnitude entry is positive.
// For a positive semi-definite input (any covariance matrix) the eigenvalues
// are non-negative up to rounding.
//
// Only WithMaxSweeps and WithTolerance options are consulted here.
//
// Fails with errs.ErrNotSymmetric for a non-square or asymmetric input, and
// with errs.ErrNoConvergence if the off-diagonal mass does not fall below
// the tolerance within the sweep budget. No other failure mode exists.
func EigenDecompose(c *matrix.Dense, opts ...Option) ([]Eigenpair, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	rows, cols := c.Dims()
	if rows != cols {
		return nil, fmt.Errorf("eigendecompose needs a square matrix, got %dx%d: %w",
			rows, cols, errs.ErrDimensionMismatch)
	}
	if !c.IsSymmetric(symTolerance) {
		return nil, fmt.Errorf("eigendecompose needs a symmetric matrix: %w", errs.ErrNotSymmetric)
	}

	values, vectors, err := jacobi(c, cfg.MaxSweeps, cfg.Tolerance)
	if err != nil {
		return nil, err
	}

	return sortedEigenpairs(values, vectors), nil
}

// jacobi runs the cyclic Jacobi iteration on a working copy of c and returns
// the diagonal (eigenvalues, in original column order) and the accumulated
// rotation matrix whose columns are the eigenvectors.
func jacobi(c *matrix.Dense, maxSweeps int, tol float64) ([]float64, *matrix.Dense, error) {
	p := c.Rows()
	a := c.Clone()
	v := matrix.Identity(p)

	// Convergence is measured relative to the total mass of the matrix; a
	// zero matrix is trivially converged with all-zero eigenvalues.
	threshold := tol * frobeniusNorm(a)
	if threshold == 0 {
		return diagonal(a), v, nil
	}

	for sweep := 0; sweep < maxSweeps; sweep++ {
		off := offDiagonalNorm(a)
		if off <= threshold {
			return diagonal(a), v, nil
		}

		for i := 0; i < p-1; i++ {
			for j := i + 1; j < p; j++ {
				rotate(a, v, i, j)
			}
		}
	}

	off := offDiagonalNorm(a)
	if off <= threshold {
		return diagonal(a), v, nil
	}

	return nil, nil, fmt.Errorf("jacobi: off-diagonal norm %g above threshold %g after %d sweeps: %w",
		off, threshold, maxSweeps, errs.ErrNoConvergence)
}

// rotate annihilates a[i][j] with a Givens rotation, updating a symmetrically
// and accumulating the rotation into the eigenvector matrix v.
func rotate(a, v *matrix.Dense, i, j int) {
	apq := a.At(i, j)
	if apq == 0 {
		return
	}

	// Stable computation of tan(θ) for the rotation that zeroes a[i][j].
	theta := (a.At(j, j) - a.At(i, i)) / (2 * apq)
	t := 1 / (math.Abs(theta) + math.Sqrt(theta*theta+1))
	if theta < 0 {
		t = -t
	}
	cos := 1 / math.Sqrt(t*t+1)
	sin := t * cos
	tau := sin / (1 + cos)

	aii := a.At(i, i)
	ajj := a.At(j, j)
	a.Set(i, i, aii-t*apq)
	a.Set(j, j, ajj+t*apq)
	a.Set(i, j, 0)
	a.Set(j, i, 0)

	p := a.Rows()
	for k := 0; k < p; k++ {
		if k != i && k != j {
			aki := a.At(k, i)
			akj := a.At(k, j)
			a.Set(k, i, aki-sin*(akj+tau*aki))
			a.Set(i, k, a.At(k, i))
			a.Set(k, j, akj+sin*(aki-tau*akj))
			a.Set(j, k, a.At(k, j))
		}

		vki := v.At(k, i)
		vkj := v.At(k, j)
		v.Set(k, i, vki-sin*(vkj+tau*vki))
		v.Set(k, j, vkj+sin*(vki-tau*vkj))
	}
}

func diagonal(a *matrix.Dense) []float64 {
	p := a.Rows()
	d := make([]float64, p)
	for i := range p {
		d[i] = a.At(i, i)
	}

	return d
}

func frobeniusNorm(a *matrix.Dense) float64 {
	var sum float64
	for _, v := range a.RawData() {
		sum += v * v
	}

	return math.Sqrt(sum)
}

// offDiagonalNorm returns the Frobenius norm of the strictly off-diagonal
// part of the symmetric matrix a.
func offDiagonalNorm(a *matrix.Dense) float64 {
	p := a.Rows()
	var sum float64
	for i := 0; i < p-1; i++ {
		for j := i + 1; j < p; j++ {
			v := a.At(i, j)
			sum += 2 * v * v
		}
	}

	return math.Sqrt(sum)
}

// sortedEigenpairs assembles eigenpairs from the diagonal values and the
// eigenvector columns, sorted by descending eigenvalue. The sort is stable,
// so equal eigenvalues keep their original column order. Each vector's sign
// is normalized so its largest-magnitude entry is positive.
func sortedEigenpairs(values []float64, vectors *matrix.Dense) []Eigenpair {
	p := len(values)
	pairs := make([]Eigenpair, p)
	for j := range p {
		vec := vectors.Col(j)
		fixSign(vec)
		pairs[j] = Eigenpair{Value: values[j], Vector: vec}
	}

	slices.SortStableFunc(pairs, func(a, b Eigenpair) int {
		switch {
		case a.Value > b.Value:
			return -1
		case a.Value < b.Value:
			return 1
		default:
			return 0
		}
	})

	return pairs
}

// fixSign flips v if its largest-magnitude entry is negative, giving every
// eigenvector a deterministic orientation.
func fixSign(v []float64) {
	var maxAbs float64
	var maxVal float64
	for _, x := range v {
		if a := math.Abs(x); a > maxAbs {
			maxAbs = a
			maxVal = x
		}
	}
	if maxVal < 0 {
		for i := range v {
			v[i] = -v[i]
		}
	}
}

func applyOptions(opts []Option) (Config, error) {
	cfg := defaultConfig()
	if err := applyTo(&cfg, opts); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
