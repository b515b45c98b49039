package pca

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/varlab/princomp/errs"
	"github.com/varlab/princomp/matrix"
)

func fittedModel(t *testing.T) *Model {
	t.Helper()

	x, err := matrix.FromRows([][]float64{
		{2.5, 2.4, 0.3},
		{0.5, 0.7, 1.9},
		{2.2, 2.9, 0.1},
		{1.9, 2.2, 0.8},
		{3.1, 3.0, 0.4},
		{2.3, 2.7, 0.9},
	})
	require.NoError(t, err)

	result, err := Analyze(x, WithComponents(2), WithScaling(true))
	require.NoError(t, err)

	return result.Model([]uint64{11, 22, 33})
}

func TestModelShape(t *testing.T) {
	m := fittedModel(t)

	require.Equal(t, 3, m.Features())
	require.Equal(t, 2, m.Components())
	require.Len(t, m.Eigenvalues, 2)
	require.NoError(t, m.Validate())
	require.Contains(t, m.String(), "Features: 3")
}

func TestModelProjectMatchesTrainingProjection(t *testing.T) {
	x, err := matrix.FromRows([][]float64{
		{2.5, 2.4, 0.3},
		{0.5, 0.7, 1.9},
		{2.2, 2.9, 0.1},
		{1.9, 2.2, 0.8},
		{3.1, 3.0, 0.4},
		{2.3, 2.7, 0.9},
	})
	require.NoError(t, err)

	result, err := Analyze(x, WithComponents(2))
	require.NoError(t, err)

	m := result.Model(nil)
	projected, err := m.Project(x)
	require.NoError(t, err)

	// Projecting the training data through the extracted model reproduces
	// the training scores.
	require.True(t, projected.EqualWithin(result.Projected, 1e-9))
}

func TestModelProjectFreshObservations(t *testing.T) {
	m := fittedModel(t)

	fresh, err := matrix.FromRows([][]float64{
		{2.0, 2.0, 0.5},
	})
	require.NoError(t, err)

	projected, err := m.Project(fresh)
	require.NoError(t, err)

	rows, cols := projected.Dims()
	require.Equal(t, 1, rows)
	require.Equal(t, 2, cols)
}

func TestModelProjectDimensionMismatch(t *testing.T) {
	m := fittedModel(t)

	bad, err := matrix.FromRows([][]float64{{1, 2}})
	require.NoError(t, err)

	_, err = m.Project(bad)
	require.ErrorIs(t, err, errs.ErrDimensionMismatch)
}

func TestModelValidateShapes(t *testing.T) {
	m := fittedModel(t)

	m.Eigenvalues = m.Eigenvalues[:1]
	require.ErrorIs(t, m.Validate(), errs.ErrDimensionMismatch)

	m = fittedModel(t)
	m.Means = nil
	require.ErrorIs(t, m.Validate(), errs.ErrDimensionMismatch)

	m = fittedModel(t)
	m.FeatureIDs = []uint64{1}
	require.ErrorIs(t, m.Validate(), errs.ErrDimensionMismatch)

	m = fittedModel(t)
	m.Loadings = nil
	require.ErrorIs(t, m.Validate(), errs.ErrInvalidInput)
}

func TestResultModelIsDetached(t *testing.T) {
	x := crossPattern(t)
	result, err := Analyze(x)
	require.NoError(t, err)

	m := result.Model(nil)
	m.Loadings.Set(0, 0, 42)
	require.NotEqual(t, 42.0, result.Loadings.At(0, 0), "model must own a copy of the loadings")
}
