package pca

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/varlab/princomp/errs"
	"github.com/varlab/princomp/matrix"
)

// svdEigenpairs recovers the covariance eigenpairs directly from the
// preprocessed n×p data matrix through a singular value decomposition:
// for X = U·Σ·Vᵀ the columns of V are the covariance eigenvectors and the
// eigenvalues are σ²/(n−1).
//
// A full-matrix decomposition is requested so that all p eigenvectors are
// available even when n < p; the eigenvalues past rank(X) are zero.
func svdEigenpairs(x *matrix.Dense) ([]Eigenpair, error) {
	rows, cols := x.Dims()
	if rows < 2 {
		return nil, fmt.Errorf("svd needs at least 2 rows, got %d: %w", rows, errs.ErrInsufficientRows)
	}

	data := make([]float64, len(x.RawData()))
	copy(data, x.RawData())

	var svd mat.SVD
	if ok := svd.Factorize(mat.NewDense(rows, cols, data), mat.SVDFullV); !ok {
		return nil, fmt.Errorf("svd factorization failed: %w", errs.ErrNoConvergence)
	}

	var v mat.Dense
	svd.VTo(&v)
	sigma := svd.Values(nil)

	inv := 1.0 / float64(rows-1)
	pairs := make([]Eigenpair, cols)
	for j := range cols {
		vec := make([]float64, cols)
		for i := range cols {
			vec[i] = v.At(i, j)
		}
		fixSign(vec)

		var value float64
		if j < len(sigma) {
			value = sigma[j] * sigma[j] * inv
		}
		pairs[j] = Eigenpair{Value: value, Vector: vec}
	}

	// gonum returns singular values in descending order, so the pairs are
	// already sorted the way EigenDecompose sorts them.
	return pairs, nil
}
