package pca

import (
	"fmt"

	"github.com/varlab/princomp/errs"
)

// ExplainedVarianceRatio computes λ_i/Σλ for every eigenvalue.
//
// The ratios sum to 1 across all components. Fails with
// errs.ErrDegenerateVariance if the eigenvalue sum is not positive, which
// happens only for degenerate all-zero-variance input.
func ExplainedVarianceRatio(values []float64) ([]float64, error) {
	var total float64
	for _, v := range values {
		total += v
	}
	if total <= 0 {
		return nil, fmt.Errorf("eigenvalue sum %g is not positive: %w", total, errs.ErrDegenerateVariance)
	}

	ratios := make([]float64, len(values))
	for i, v := range values {
		ratios[i] = v / total
	}

	return ratios, nil
}

// CumulativeVariance returns the running sum of the explained-variance
// ratios: element i is the fraction of total variance captured by the first
// i+1 components.
func CumulativeVariance(ratios []float64) []float64 {
	out := make([]float64, len(ratios))
	var sum float64
	for i, r := range ratios {
		sum += r
		out[i] = sum
	}

	return out
}

// eigenvalues extracts the eigenvalue of every pair, in order.
func eigenvalues(pairs []Eigenpair) []float64 {
	values := make([]float64, len(pairs))
	for i, p := range pairs {
		values[i] = p.Value
	}

	return values
}
