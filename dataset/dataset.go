package dataset

import (
	"fmt"

	"github.com/varlab/princomp/errs"
	"github.com/varlab/princomp/internal/hash"
	"github.com/varlab/princomp/matrix"
)

// Dataset couples an observation matrix with its feature names and optional
// per-row class labels. The labels never enter the analysis; they exist for
// downstream grouping and coloring of projected points.
type Dataset struct {
	// Name identifies the dataset in error messages and summaries.
	Name string
	// Features are the column names, in column order.
	Features []string
	// Labels are optional per-row class labels; empty or row-aligned.
	Labels []string
	// X is the n×p observation matrix.
	X *matrix.Dense
}

// New creates a dataset and validates that the feature names match the
// matrix columns and the labels, when present, match the rows.
func New(name string, features []string, labels []string, x *matrix.Dense) (*Dataset, error) {
	rows, cols := x.Dims()
	if len(features) != cols {
		return nil, fmt.Errorf("dataset %q has %d feature names for %d columns: %w",
			name, len(features), cols, errs.ErrDimensionMismatch)
	}
	if len(labels) != 0 && len(labels) != rows {
		return nil, fmt.Errorf("dataset %q has %d labels for %d rows: %w",
			name, len(labels), rows, errs.ErrDimensionMismatch)
	}

	return &Dataset{Name: name, Features: features, Labels: labels, X: x}, nil
}

// FromRows creates a dataset from row slices, copying the data.
func FromRows(name string, features []string, labels []string, rows [][]float64) (*Dataset, error) {
	x, err := matrix.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("dataset %q: %w", name, err)
	}

	return New(name, features, labels, x)
}

// Observations returns the row count n.
func (d *Dataset) Observations() int {
	n, _ := d.X.Dims()
	return n
}

// FeatureCount returns the column count p.
func (d *Dataset) FeatureCount() int {
	_, p := d.X.Dims()
	return p
}

// FeatureIDs returns the xxHash64 identity of every feature name, in column
// order. Model blobs persist these so a decoded model can be checked
// against the schema of fresh data.
func (d *Dataset) FeatureIDs() []uint64 {
	ids := make([]uint64, len(d.Features))
	for i, name := range d.Features {
		ids[i] = hash.FeatureID(name)
	}

	return ids
}

// String returns a one-line summary of the dataset.
func (d *Dataset) String() string {
	return fmt.Sprintf("Dataset{Name: %q, Observations: %d, Features: %d}",
		d.Name, d.Observations(), d.FeatureCount())
}
