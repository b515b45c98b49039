package pca

import (
	"fmt"

	"github.com/varlab/princomp/format"
	"github.com/varlab/princomp/matrix"
)

// Eigenpair is one eigenvalue of the covariance matrix together with its
// unit-length eigenvector.
type Eigenpair struct {
	// Value is the eigenvalue, i.e. the variance captured along Vector.
	Value float64
	// Vector is the unit-length eigenvector in feature space.
	Vector []float64
}

// Result holds the complete outcome of one analysis run.
//
// Eigenpairs always covers all p components in descending eigenvalue order,
// regardless of how many components were selected for projection; Ratios and
// Cumulative run parallel to it. Loadings and Projected are restricted to
// the selected top-k components.
type Result struct {
	// Method identifies the decomposition backend that produced the result.
	Method format.MethodType
	// Eigenpairs are all p eigenpairs, sorted by descending eigenvalue.
	Eigenpairs []Eigenpair
	// Ratios is the explained-variance ratio per eigenpair; sums to 1.
	Ratios []float64
	// Cumulative is the running sum of Ratios.
	Cumulative []float64
	// Loadings is the p×k matrix whose columns are the top-k eigenvectors.
	Loadings *matrix.Dense
	// Projected is the n×k projection of the (preprocessed) observations.
	Projected *matrix.Dense
	// Means are the column means subtracted during preprocessing (zeros if
	// centering was disabled).
	Means []float64
	// Scales are the column scale divisors applied during preprocessing
	// (ones if scaling was disabled).
	Scales []float64
	// Observations is the number of rows the analysis was fitted on.
	Observations int
}

// Components returns the number of components the data was projected onto.
func (r *Result) Components() int {
	if r.Loadings == nil {
		return 0
	}
	_, k := r.Loadings.Dims()

	return k
}

// String returns a one-line summary of the result.
func (r *Result) String() string {
	k := r.Components()
	var captured float64
	if k > 0 && k <= len(r.Cumulative) {
		captured = r.Cumulative[k-1]
	}

	return fmt.Sprintf("Result{Method: %s, Components: %d/%d, Captured: %.2f%%}",
		r.Method, k, len(r.Eigenpairs), captured*100)
}

// Model extracts the projection-relevant subset of the result: everything
// needed to project fresh observations without refitting. featureIDs may be
// nil when feature identity tracking is not wanted; otherwise its length
// must match the feature count.
func (r *Result) Model(featureIDs []uint64) *Model {
	k := r.Components()
	values := make([]float64, k)
	for i := range k {
		values[i] = r.Eigenpairs[i].Value
	}

	return &Model{
		Method:       r.Method,
		Eigenvalues:  values,
		Loadings:     r.Loadings.Clone(),
		Means:        append([]float64(nil), r.Means...),
		Scales:       append([]float64(nil), r.Scales...),
		FeatureIDs:   append([]uint64(nil), featureIDs...),
		Observations: r.Observations,
	}
}
