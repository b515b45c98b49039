package pca

import (
	"fmt"

	"github.com/varlab/princomp/errs"
	"github.com/varlab/princomp/format"
	"github.com/varlab/princomp/matrix"
)

// Model is a fitted projection: the top-k loadings plus the preprocessing
// parameters needed to map fresh observations into the fitted component
// space. It is the unit of persistence for the blob package.
type Model struct {
	// Method identifies the backend the model was fitted with.
	Method format.MethodType
	// Eigenvalues are the eigenvalues of the kept components, descending.
	Eigenvalues []float64
	// Loadings is the p×k loading matrix.
	Loadings *matrix.Dense
	// Means are subtracted from incoming columns before projection.
	Means []float64
	// Scales divide incoming columns before projection.
	Scales []float64
	// FeatureIDs are optional xxHash64 identities of the feature names the
	// model was fitted on, in column order. Empty when not tracked.
	FeatureIDs []uint64
	// Observations is the number of rows the model was fitted on.
	Observations int
}

// Features returns the input dimensionality p.
func (m *Model) Features() int {
	p, _ := m.Loadings.Dims()
	return p
}

// Components returns the output dimensionality k.
func (m *Model) Components() int {
	_, k := m.Loadings.Dims()
	return k
}

// Validate checks the internal consistency of the model's shapes.
func (m *Model) Validate() error {
	if m.Loadings == nil {
		return fmt.Errorf("model has no loadings: %w", errs.ErrInvalidInput)
	}
	p, k := m.Loadings.Dims()
	if len(m.Eigenvalues) != k {
		return fmt.Errorf("model has %d eigenvalues for %d components: %w",
			len(m.Eigenvalues), k, errs.ErrDimensionMismatch)
	}
	if len(m.Means) != p || len(m.Scales) != p {
		return fmt.Errorf("model has %d means and %d scales for %d features: %w",
			len(m.Means), len(m.Scales), p, errs.ErrDimensionMismatch)
	}
	if len(m.FeatureIDs) != 0 && len(m.FeatureIDs) != p {
		return fmt.Errorf("model has %d feature IDs for %d features: %w",
			len(m.FeatureIDs), p, errs.ErrDimensionMismatch)
	}

	return nil
}

// Project applies the fitted preprocessing to x and maps it into component
// space, returning an n×k coordinate matrix.
//
// Fails with errs.ErrDimensionMismatch if x's column count differs from the
// model's feature count.
func (m *Model) Project(x *matrix.Dense) (*matrix.Dense, error) {
	rows, cols := x.Dims()
	p := m.Features()
	if cols != p {
		return nil, fmt.Errorf("observations have %d features, model expects %d: %w",
			cols, p, errs.ErrDimensionMismatch)
	}

	pre := x.Clone()
	for i := range rows {
		row := pre.RawRow(i)
		for j := range row {
			row[j] = (row[j] - m.Means[j]) / m.Scales[j]
		}
	}

	return Project(pre, m.Loadings)
}

// String returns a one-line summary of the model.
func (m *Model) String() string {
	return fmt.Sprintf("Model{Method: %s, Features: %d, Components: %d}",
		m.Method, m.Features(), m.Components())
}
