package pca

import (
	"fmt"

	"github.com/varlab/princomp/format"
	"github.com/varlab/princomp/internal/options"
)

// Config holds the tunable parameters of an analysis run.
type Config struct {
	// Center subtracts column means before decomposition. Default true;
	// disable only for data that is already centered.
	Center bool
	// Scale divides columns by their sample standard deviation. Default
	// false; enabling it makes the analysis operate on the correlation
	// structure instead of raw covariances.
	Scale bool
	// Components is the number of top eigenpairs to project onto.
	Components int
	// Method selects the decomposition backend.
	Method format.MethodType
	// MaxSweeps bounds the Jacobi sweep count. One sweep visits every
	// off-diagonal pair once, so p(p-1)/2 rotations per sweep.
	MaxSweeps int
	// Tolerance is the relative off-diagonal threshold that counts as
	// converged, measured against the Frobenius norm of the input.
	Tolerance float64
}

const (
	// DefaultComponents keeps two components, the usual choice for
	// visualizing the first component plane.
	DefaultComponents = 2
	// DefaultMaxSweeps bounds the Jacobi iteration. Symmetric matrices of
	// the sizes this library targets converge in well under ten sweeps.
	DefaultMaxSweeps = 100
	// DefaultTolerance is the relative convergence threshold.
	DefaultTolerance = 1e-10
)

func defaultConfig() Config {
	return Config{
		Center:     true,
		Scale:      false,
		Components: DefaultComponents,
		Method:     format.MethodEigen,
		MaxSweeps:  DefaultMaxSweeps,
		Tolerance:  DefaultTolerance,
	}
}

// Option is a functional option for Config.
type Option = options.Option[*Config]

// applyTo applies opts to cfg in order.
func applyTo(cfg *Config, opts []Option) error {
	return options.Apply(cfg, opts...)
}

// WithCentering controls mean subtraction during preprocessing.
func WithCentering(enabled bool) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Center = enabled
	})
}

// WithScaling controls unit-variance scaling during preprocessing.
func WithScaling(enabled bool) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Scale = enabled
	})
}

// WithComponents sets the number of components to keep. The value is
// validated against the feature count when the analysis runs.
func WithComponents(k int) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Components = k
	})
}

// WithMethod selects the decomposition backend.
func WithMethod(method format.MethodType) Option {
	return options.New(func(cfg *Config) error {
		switch method {
		case format.MethodEigen, format.MethodSVD:
			cfg.Method = method
			return nil
		default:
			return fmt.Errorf("invalid method: %s", method)
		}
	})
}

// WithMaxSweeps bounds the Jacobi sweep budget.
func WithMaxSweeps(sweeps int) Option {
	return options.New(func(cfg *Config) error {
		if sweeps < 1 {
			return fmt.Errorf("max sweeps must be positive, got %d", sweeps)
		}
		cfg.MaxSweeps = sweeps

		return nil
	})
}

// WithTolerance sets the relative convergence tolerance of the eigensolver.
func WithTolerance(tol float64) Option {
	return options.New(func(cfg *Config) error {
		if tol <= 0 {
			return fmt.Errorf("tolerance must be positive, got %g", tol)
		}
		cfg.Tolerance = tol

		return nil
	})
}
