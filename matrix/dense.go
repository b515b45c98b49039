package matrix

import (
	"fmt"
	"math"

	"github.com/varlab/princomp/errs"
)

// Dense is a dense matrix stored in row-major order over a flat slice.
//
// The zero value is not usable; construct instances with NewDense or
// FromRows. Methods that return a new matrix never alias the receiver's
// backing slice.
type Dense struct {
	rows int
	cols int
	data []float64
}

// NewDense creates a rows×cols matrix backed by data.
//
// If data is nil a zeroed backing slice is allocated. If data is non-nil its
// length must be rows*cols; the slice is used directly without copying, so
// the caller hands over ownership.
func NewDense(rows, cols int, data []float64) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("non-positive dimensions %dx%d: %w", rows, cols, errs.ErrInvalidInput)
	}
	if data == nil {
		data = make([]float64, rows*cols)
	} else if len(data) != rows*cols {
		return nil, fmt.Errorf("data length %d does not match %dx%d: %w",
			len(data), rows, cols, errs.ErrDimensionMismatch)
	}

	return &Dense{rows: rows, cols: cols, data: data}, nil
}

// FromRows creates a matrix from a slice of equally sized rows, copying the
// data.
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("empty row set: %w", errs.ErrInvalidInput)
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w",
				i, len(row), cols, errs.ErrDimensionMismatch)
		}
		data = append(data, row...)
	}

	return &Dense{rows: len(rows), cols: cols, data: data}, nil
}

// Identity creates the n×n identity matrix.
func Identity(n int) *Dense {
	data := make([]float64, n*n)
	for i := range n {
		data[i*n+i] = 1
	}

	return &Dense{rows: n, cols: n, data: data}
}

// Dims returns the row and column counts.
func (m *Dense) Dims() (rows, cols int) {
	return m.rows, m.cols
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.cols }

// At returns the element at row i, column j. Panics on out-of-range indices,
// matching slice indexing semantics.
func (m *Dense) At(i, j int) float64 {
	m.check(i, j)
	return m.data[i*m.cols+j]
}

// Set stores v at row i, column j.
func (m *Dense) Set(i, j int, v float64) {
	m.check(i, j)
	m.data[i*m.cols+j] = v
}

func (m *Dense) check(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("matrix: index (%d,%d) out of range %dx%d", i, j, m.rows, m.cols))
	}
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) []float64 {
	out := make([]float64, m.cols)
	copy(out, m.data[i*m.cols:(i+1)*m.cols])

	return out
}

// RawRow returns row i as a view into the backing slice. The caller must not
// hold the view across mutations.
func (m *Dense) RawRow(i int) []float64 {
	return m.data[i*m.cols : (i+1)*m.cols]
}

// Col returns a copy of column j.
func (m *Dense) Col(j int) []float64 {
	out := make([]float64, m.rows)
	for i := range m.rows {
		out[i] = m.data[i*m.cols+j]
	}

	return out
}

// RawData returns the backing slice in row-major order. The caller must not
// modify it while the matrix is in use elsewhere.
func (m *Dense) RawData() []float64 { return m.data }

// Clone returns a deep copy of the matrix.
func (m *Dense) Clone() *Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return &Dense{rows: m.rows, cols: m.cols, data: data}
}

// T returns the transpose as a new matrix.
func (m *Dense) T() *Dense {
	out := &Dense{rows: m.cols, cols: m.rows, data: make([]float64, len(m.data))}
	for i := range m.rows {
		for j := range m.cols {
			out.data[j*out.cols+i] = m.data[i*m.cols+j]
		}
	}

	return out
}

// Mul returns the matrix product m·other.
//
// Fails with errs.ErrDimensionMismatch if m's column count differs from
// other's row count.
func (m *Dense) Mul(other *Dense) (*Dense, error) {
	if m.cols != other.rows {
		return nil, fmt.Errorf("cannot multiply %dx%d by %dx%d: %w",
			m.rows, m.cols, other.rows, other.cols, errs.ErrDimensionMismatch)
	}

	out := &Dense{rows: m.rows, cols: other.cols, data: make([]float64, m.rows*other.cols)}
	for i := range m.rows {
		mrow := m.data[i*m.cols : (i+1)*m.cols]
		orow := out.data[i*out.cols : (i+1)*out.cols]
		for k, mv := range mrow {
			if mv == 0 {
				continue
			}
			krow := other.data[k*other.cols : (k+1)*other.cols]
			for j, ov := range krow {
				orow[j] += mv * ov
			}
		}
	}

	return out, nil
}

// IsSymmetric reports whether the matrix is square and symmetric within tol.
func (m *Dense) IsSymmetric(tol float64) bool {
	if m.rows != m.cols {
		return false
	}
	for i := range m.rows {
		for j := i + 1; j < m.cols; j++ {
			if math.Abs(m.At(i, j)-m.At(j, i)) > tol {
				return false
			}
		}
	}

	return true
}

// EqualWithin reports whether both matrices have the same shape and all
// elements agree within tol.
func (m *Dense) EqualWithin(other *Dense, tol float64) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i, v := range m.data {
		if math.Abs(v-other.data[i]) > tol {
			return false
		}
	}

	return true
}

// String renders the matrix for debugging, one row per line.
func (m *Dense) String() string {
	s := fmt.Sprintf("Dense(%dx%d)", m.rows, m.cols)
	for i := range m.rows {
		s += "\n"
		for j := range m.cols {
			s += fmt.Sprintf(" %10.6f", m.At(i, j))
		}
	}

	return s
}
