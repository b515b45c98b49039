// Package princomp implements principal component analysis over dense
// float64 matrices, from covariance computation through eigendecomposition,
// explained-variance accounting and projection onto the leading components.
//
// # Core Features
//
//   - Sample covariance and correlation matrices with columnwise
//     centering and optional unit-variance scaling
//   - Cyclic Jacobi eigendecomposition for symmetric matrices, plus an
//     SVD backend for tall or ill-conditioned inputs
//   - Deterministic component ordering and eigenvector signs, so repeated
//     runs on the same data produce identical output
//   - Explained-variance ratios and cumulative capture per component
//   - Fitted models that project fresh observations without refitting
//   - Compact binary model blobs with optional compression (None, Zstd,
//     S2, LZ4) and xxHash64 integrity checksums
//
// # Basic Usage
//
// Analyzing a matrix of observations:
//
//	import "github.com/varlab/princomp"
//
//	x, _ := matrix.NewDense(4, 2, []float64{
//	    2.5, 2.4,
//	    0.5, 0.7,
//	    2.2, 2.9,
//	    1.9, 2.2,
//	})
//	result, err := princomp.Analyze(x, pca.WithComponents(1))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Ratios[0])     // variance share of the first component
//	fmt.Println(result.Projected)     // 4×1 coordinates in component space
//
// Persisting and restoring a fitted model:
//
//	model := result.Model(nil)
//	data, _ := princomp.EncodeModel(model, blob.WithCompression(format.CompressionZstd))
//
//	restored, _ := princomp.DecodeModel(data)
//	scores, _ := restored.Project(fresh)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the pca, blob
// and dataset packages, simplifying the most common use cases. For
// fine-grained control (custom sweep budgets, convergence tolerances, or
// direct access to eigendecomposition) use those packages directly.
package princomp

import (
	"context"

	"github.com/varlab/princomp/blob"
	"github.com/varlab/princomp/dataset"
	"github.com/varlab/princomp/internal/hash"
	"github.com/varlab/princomp/matrix"
	"github.com/varlab/princomp/pca"
)

// Analyze runs a full principal component analysis on the n×p observation
// matrix x: preprocessing, decomposition, variance accounting and projection
// onto the selected components.
//
// By default observations are centered (not scaled), the covariance matrix
// is eigendecomposed with the Jacobi method, and the top 2 components are
// kept.
//
// Parameters:
//   - x: The n×p observation matrix, one row per observation
//   - opts: Optional configuration functions (see pca.Option)
//
// Returns:
//   - *pca.Result: The complete analysis outcome.
//   - error: An error if the input shape or configuration is invalid, or
//     the decomposition fails to converge.
//
// Available options:
//   - pca.WithComponents(k)
//   - pca.WithCentering(bool) / pca.WithScaling(bool)
//   - pca.WithMethod(format.MethodEigen|MethodSVD)
//   - pca.WithMaxSweeps(n) / pca.WithTolerance(eps)
//
// Example:
//
//	result, err := princomp.Analyze(x,
//	    pca.WithComponents(3),
//	    pca.WithScaling(true),
//	)
func Analyze(x *matrix.Dense, opts ...pca.Option) (*pca.Result, error) {
	return pca.Analyze(x, opts...)
}

// AnalyzeEach analyzes every observation matrix independently, fanning the
// runs out across CPUs. Results are returned in input order; the first
// failure cancels the remaining runs.
//
// Parameters:
//   - ctx: Context for cancellation
//   - xs: The observation matrices to analyze
//   - opts: Optional configuration functions applied to every run
//
// Returns:
//   - []*pca.Result: One result per input matrix, in input order.
//   - error: The first analysis error, annotated with the dataset index.
func AnalyzeEach(ctx context.Context, xs []*matrix.Dense, opts ...pca.Option) ([]*pca.Result, error) {
	return pca.AnalyzeEach(ctx, xs, opts...)
}

// AnalyzeDataset runs a principal component analysis on a labeled dataset.
// It is equivalent to Analyze(ds.X, opts...) and exists so callers holding a
// dataset.Dataset do not need to unwrap it.
//
// Example:
//
//	ds, _ := dataset.New("zoo", features, labels, x)
//	result, err := princomp.AnalyzeDataset(ds, pca.WithComponents(2))
func AnalyzeDataset(ds *dataset.Dataset, opts ...pca.Option) (*pca.Result, error) {
	return pca.Analyze(ds.X, opts...)
}

// FitModel analyzes a labeled dataset and extracts a fitted model with
// feature identity tracking enabled: the model records the xxHash64 ID of
// every feature name, so a decoded model can be checked against the schema
// of fresh data.
//
// Parameters:
//   - ds: The labeled dataset to fit
//   - opts: Optional configuration functions (see pca.Option)
//
// Returns:
//   - *pca.Model: The fitted projection model.
//   - error: An error if the analysis fails.
//
// Example:
//
//	model, err := princomp.FitModel(ds, pca.WithComponents(2))
//	data, _ := princomp.EncodeModel(model)
func FitModel(ds *dataset.Dataset, opts ...pca.Option) (*pca.Model, error) {
	result, err := pca.Analyze(ds.X, opts...)
	if err != nil {
		return nil, err
	}

	return result.Model(ds.FeatureIDs()), nil
}

// EncodeModel serializes a fitted model into a self-describing binary blob.
//
// By default the payload is uncompressed and little-endian; pass
// blob.WithCompression and blob.WithBigEndian to change that.
//
// Example:
//
//	data, err := princomp.EncodeModel(model,
//	    blob.WithCompression(format.CompressionZstd),
//	)
func EncodeModel(m *pca.Model, opts ...blob.EncoderOption) ([]byte, error) {
	return blob.EncodeModel(m, opts...)
}

// DecodeModel parses a model blob and materializes the fitted model it
// carries. The blob's magic number, header flags and payload checksum are
// verified before any model state is built.
//
// Example:
//
//	model, err := princomp.DecodeModel(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	scores, err := model.Project(fresh)
func DecodeModel(data []byte) (*pca.Model, error) {
	return blob.DecodeModel(data)
}

// FeatureID converts a feature name to its 64-bit hash identifier.
//
// Princomp uses xxHash64 to give every feature a fixed-size identity that
// travels with serialized models, so a decoded model can verify it is being
// applied to data with the same schema it was fitted on.
//
// The hash is deterministic: the same name always produces the same ID, on
// every platform.
//
// Example:
//
//	ids := []uint64{
//	    princomp.FeatureID("sepal_length"),
//	    princomp.FeatureID("sepal_width"),
//	}
//	model := result.Model(ids)
func FeatureID(name string) uint64 {
	return hash.FeatureID(name)
}
