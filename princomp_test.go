package princomp_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/varlab/princomp"
	"github.com/varlab/princomp/blob"
	"github.com/varlab/princomp/dataset"
	"github.com/varlab/princomp/format"
	"github.com/varlab/princomp/matrix"
	"github.com/varlab/princomp/pca"
)

func sampleDataset(t *testing.T) *dataset.Dataset {
	t.Helper()

	ds, err := dataset.FromRows("measurements",
		[]string{"height", "weight", "age"},
		[]string{"a", "b", "c", "d", "e"},
		[][]float64{
			{1.8, 75.0, 31.0},
			{1.6, 58.0, 24.0},
			{1.9, 92.0, 45.0},
			{1.7, 66.0, 28.0},
			{1.5, 51.0, 19.0},
		})
	require.NoError(t, err)

	return ds
}

func TestAnalyzeWrapper(t *testing.T) {
	ds := sampleDataset(t)

	result, err := princomp.Analyze(ds.X, pca.WithComponents(2))
	require.NoError(t, err)
	require.Equal(t, 2, result.Components())
	require.Len(t, result.Eigenpairs, 3)
}

func TestAnalyzeDataset(t *testing.T) {
	ds := sampleDataset(t)

	direct, err := princomp.Analyze(ds.X)
	require.NoError(t, err)
	viaDataset, err := princomp.AnalyzeDataset(ds)
	require.NoError(t, err)
	require.Equal(t, direct.Ratios, viaDataset.Ratios)
}

func TestAnalyzeEachWrapper(t *testing.T) {
	ds := sampleDataset(t)
	xs := []*matrix.Dense{ds.X, ds.X.Clone()}

	results, err := princomp.AnalyzeEach(context.Background(), xs)
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, results[0].Ratios, results[1].Ratios)
}

func TestFitEncodeDecode(t *testing.T) {
	ds := sampleDataset(t)

	model, err := princomp.FitModel(ds, pca.WithComponents(2), pca.WithScaling(true))
	require.NoError(t, err)
	require.Equal(t, ds.FeatureIDs(), model.FeatureIDs)
	require.Equal(t, 5, model.Observations)

	data, err := princomp.EncodeModel(model, blob.WithCompression(format.CompressionZstd))
	require.NoError(t, err)

	restored, err := princomp.DecodeModel(data)
	require.NoError(t, err)

	fresh, err := matrix.NewDense(1, 3, []float64{1.75, 70.0, 30.0})
	require.NoError(t, err)
	want, err := model.Project(fresh)
	require.NoError(t, err)
	got, err := restored.Project(fresh)
	require.NoError(t, err)
	require.Equal(t, want.RawData(), got.RawData())
}

func TestFeatureIDStable(t *testing.T) {
	require.Equal(t, princomp.FeatureID("height"), princomp.FeatureID("height"))
	require.NotEqual(t, princomp.FeatureID("height"), princomp.FeatureID("weight"))
}
