package stats

import (
	"fmt"
	"math"

	"github.com/varlab/princomp/errs"
	"github.com/varlab/princomp/matrix"
)

// ColumnMeans returns the mean of every column of x.
func ColumnMeans(x *matrix.Dense) []float64 {
	rows, cols := x.Dims()
	means := make([]float64, cols)
	for i := range rows {
		row := x.RawRow(i)
		for j, v := range row {
			means[j] += v
		}
	}
	for j := range means {
		means[j] /= float64(rows)
	}

	return means
}

// ColumnVariances returns the sample variance (n−1 denominator) of every
// column of x.
//
// Fails with errs.ErrInsufficientRows if x has fewer than two rows.
func ColumnVariances(x *matrix.Dense) ([]float64, error) {
	rows, cols := x.Dims()
	if rows < 2 {
		return nil, fmt.Errorf("variance needs at least 2 rows, got %d: %w", rows, errs.ErrInsufficientRows)
	}

	means := ColumnMeans(x)
	vars := make([]float64, cols)
	for i := range rows {
		row := x.RawRow(i)
		for j, v := range row {
			d := v - means[j]
			vars[j] += d * d
		}
	}
	for j := range vars {
		vars[j] /= float64(rows - 1)
	}

	return vars, nil
}

// ColumnStdDevs returns the sample standard deviation of every column of x.
func ColumnStdDevs(x *matrix.Dense) ([]float64, error) {
	vars, err := ColumnVariances(x)
	if err != nil {
		return nil, err
	}
	for j, v := range vars {
		vars[j] = math.Sqrt(v)
	}

	return vars, nil
}

// CovarianceMatrix computes the p×p sample covariance matrix of the n×p
// observation matrix x, with entry (i,j) = Σ_k (x[k,i]−mean_i)(x[k,j]−mean_j)/(n−1).
//
// The result is symmetric and positive semi-definite. Fails with
// errs.ErrInsufficientRows if n < 2, for which the sample covariance is
// undefined.
func CovarianceMatrix(x *matrix.Dense) (*matrix.Dense, error) {
	rows, cols := x.Dims()
	if rows < 2 {
		return nil, fmt.Errorf("covariance needs at least 2 rows, got %d: %w", rows, errs.ErrInsufficientRows)
	}

	means := ColumnMeans(x)
	cov, err := matrix.NewDense(cols, cols, nil)
	if err != nil {
		return nil, err
	}

	// Accumulate the upper triangle, then mirror. One pass over the rows
	// keeps the access pattern sequential in the backing slice.
	centered := make([]float64, cols)
	for k := range rows {
		row := x.RawRow(k)
		for j, v := range row {
			centered[j] = v - means[j]
		}
		for i := range cols {
			ci := centered[i]
			if ci == 0 {
				continue
			}
			for j := i; j < cols; j++ {
				cov.Set(i, j, cov.At(i, j)+ci*centered[j])
			}
		}
	}

	inv := 1.0 / float64(rows-1)
	for i := range cols {
		for j := i; j < cols; j++ {
			v := cov.At(i, j) * inv
			cov.Set(i, j, v)
			cov.Set(j, i, v)
		}
	}

	return cov, nil
}

// CorrelationMatrix computes the p×p Pearson correlation matrix of x.
//
// Fails with errs.ErrZeroVariance (naming the column) if any column is
// constant, since its correlation with anything is undefined.
func CorrelationMatrix(x *matrix.Dense) (*matrix.Dense, error) {
	cov, err := CovarianceMatrix(x)
	if err != nil {
		return nil, err
	}

	_, cols := x.Dims()
	stds := make([]float64, cols)
	for j := range cols {
		v := cov.At(j, j)
		if v <= 0 {
			return nil, fmt.Errorf("column %d has zero variance: %w", j, errs.ErrZeroVariance)
		}
		stds[j] = math.Sqrt(v)
	}

	corr, err := matrix.NewDense(cols, cols, nil)
	if err != nil {
		return nil, err
	}
	for i := range cols {
		corr.Set(i, i, 1)
		for j := i + 1; j < cols; j++ {
			v := cov.At(i, j) / (stds[i] * stds[j])
			corr.Set(i, j, v)
			corr.Set(j, i, v)
		}
	}

	return corr, nil
}

// Standardize returns a standardized copy of x along with the column means
// and scale factors that were applied.
//
// With center true every column has its mean subtracted. With scale true
// every column is divided by its sample standard deviation; a zero-variance
// column then fails with errs.ErrZeroVariance, since the division is
// undefined. With both false the copy is returned unchanged and the means
// slice is all zeros, scales all ones.
func Standardize(x *matrix.Dense, center, scale bool) (out *matrix.Dense, means, scales []float64, err error) {
	rows, cols := x.Dims()
	out = x.Clone()

	means = make([]float64, cols)
	scales = make([]float64, cols)
	for j := range scales {
		scales[j] = 1
	}

	if !center && !scale {
		return out, means, scales, nil
	}

	if rows < 2 {
		return nil, nil, nil, fmt.Errorf("standardize needs at least 2 rows, got %d: %w",
			rows, errs.ErrInsufficientRows)
	}

	colMeans := ColumnMeans(x)
	if center {
		copy(means, colMeans)
	}

	if scale {
		vars, varErr := ColumnVariances(x)
		if varErr != nil {
			return nil, nil, nil, varErr
		}
		for j, v := range vars {
			if v <= 0 {
				return nil, nil, nil, fmt.Errorf("cannot scale column %d with zero variance: %w",
					j, errs.ErrZeroVariance)
			}
			scales[j] = math.Sqrt(v)
		}
	}

	for i := range rows {
		row := out.RawRow(i)
		for j := range row {
			row[j] = (row[j] - means[j]) / scales[j]
		}
	}

	return out, means, scales, nil
}
