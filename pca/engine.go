package pca

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/varlab/princomp/errs"
	"github.com/varlab/princomp/format"
	"github.com/varlab/princomp/matrix"
	"github.com/varlab/princomp/stats"
)

// Analyze runs the full pipeline over the n×p observation matrix x:
// preprocessing, covariance, eigendecomposition, variance accounting and
// projection onto the configured number of components.
//
// x is never mutated. Every failure mode surfaces here: fewer than two
// rows (errs.ErrInsufficientRows), scaling a zero-variance column
// (errs.ErrZeroVariance), a component count outside [1, p]
// (errs.ErrInvalidComponentCount), an all-zero-variance input
// (errs.ErrDegenerateVariance), and eigensolver non-convergence
// (errs.ErrNoConvergence).
//
// Example:
//
//	result, err := pca.Analyze(x, pca.WithComponents(2), pca.WithScaling(true))
//	if err != nil {
//	    return err
//	}
//	for i, ratio := range result.Ratios {
//	    fmt.Printf("PC%d explains %.1f%%\n", i+1, ratio*100)
//	}
func Analyze(x *matrix.Dense, opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	rows, cols := x.Dims()
	if rows < 2 {
		return nil, fmt.Errorf("analysis needs at least 2 rows, got %d: %w",
			rows, errs.ErrInsufficientRows)
	}
	if cfg.Components < 1 || cfg.Components > cols {
		return nil, fmt.Errorf("component count %d outside [1, %d]: %w",
			cfg.Components, cols, errs.ErrInvalidComponentCount)
	}

	pre, means, scales, err := stats.Standardize(x, cfg.Center, cfg.Scale)
	if err != nil {
		return nil, fmt.Errorf("preprocessing failed: %w", err)
	}

	var pairs []Eigenpair
	switch cfg.Method {
	case format.MethodSVD:
		pairs, err = svdEigenpairs(pre)
	default:
		var cov *matrix.Dense
		cov, err = stats.CovarianceMatrix(pre)
		if err == nil {
			pairs, err = EigenDecompose(cov, opts...)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%s decomposition failed: %w", cfg.Method, err)
	}

	ratios, err := ExplainedVarianceRatio(eigenvalues(pairs))
	if err != nil {
		return nil, err
	}

	loadings, err := LoadingMatrix(pairs, cfg.Components)
	if err != nil {
		return nil, err
	}

	projected, err := Project(pre, loadings)
	if err != nil {
		return nil, err
	}

	return &Result{
		Method:       cfg.Method,
		Eigenpairs:   pairs,
		Ratios:       ratios,
		Cumulative:   CumulativeVariance(ratios),
		Loadings:     loadings,
		Projected:    projected,
		Means:        means,
		Scales:       scales,
		Observations: rows,
	}, nil
}

// AnalyzeEach analyzes every observation matrix independently and returns
// one result per input, in input order.
//
// Runs are independent, so they execute concurrently with parallelism
// bounded by GOMAXPROCS. The first failing run cancels the rest; its error
// is returned wrapped with the dataset index. The engine itself stays
// single-threaded per run.
func AnalyzeEach(ctx context.Context, xs []*matrix.Dense, opts ...Option) ([]*Result, error) {
	if len(xs) == 0 {
		return nil, fmt.Errorf("no observation matrices provided: %w", errs.ErrInvalidInput)
	}

	results := make([]*Result, len(xs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, x := range xs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			result, err := Analyze(x, opts...)
			if err != nil {
				return fmt.Errorf("dataset %d: %w", i, err)
			}
			results[i] = result

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
