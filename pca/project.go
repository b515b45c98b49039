package pca

import (
	"fmt"

	"github.com/varlab/princomp/errs"
	"github.com/varlab/princomp/matrix"
)

// SelectTopK returns the first k eigenpairs of the descending-sorted pairs.
//
// With k equal to the pair count the input is returned unchanged in order.
// Fails with errs.ErrInvalidComponentCount if k < 1 or k exceeds the number
// of pairs.
func SelectTopK(pairs []Eigenpair, k int) ([]Eigenpair, error) {
	if k < 1 || k > len(pairs) {
		return nil, fmt.Errorf("component count %d outside [1, %d]: %w",
			k, len(pairs), errs.ErrInvalidComponentCount)
	}

	return pairs[:k], nil
}

// LoadingMatrix stacks the top-k eigenvectors as the columns of a p×k
// matrix, the feature vector used for projection.
func LoadingMatrix(pairs []Eigenpair, k int) (*matrix.Dense, error) {
	top, err := SelectTopK(pairs, k)
	if err != nil {
		return nil, err
	}

	p := len(top[0].Vector)
	loadings, err := matrix.NewDense(p, k, nil)
	if err != nil {
		return nil, err
	}
	for j, pair := range top {
		if len(pair.Vector) != p {
			return nil, fmt.Errorf("eigenvector %d has length %d, want %d: %w",
				j, len(pair.Vector), p, errs.ErrDimensionMismatch)
		}
		for i, v := range pair.Vector {
			loadings.Set(i, j, v)
		}
	}

	return loadings, nil
}

// Project maps the n×p observation matrix into component space by computing
// x·loadings, yielding one n×k coordinate row per observation.
//
// The projection is a pure matrix multiplication; the only failure mode is a
// shape mismatch between x's columns and the loading matrix's rows, reported
// as errs.ErrDimensionMismatch.
func Project(x, loadings *matrix.Dense) (*matrix.Dense, error) {
	_, xCols := x.Dims()
	lRows, _ := loadings.Dims()
	if xCols != lRows {
		return nil, fmt.Errorf("cannot project %d features onto %d-row loadings: %w",
			xCols, lRows, errs.ErrDimensionMismatch)
	}

	return x.Mul(loadings)
}
