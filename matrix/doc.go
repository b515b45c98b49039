// Package matrix provides the dense row-major float64 matrix and vector
// primitives used by the princomp analysis pipeline.
//
// Dense stores its elements in a single flat slice, row by row, which keeps
// the covariance and Jacobi loops cache-friendly and allocation-free. The
// type is deliberately small: it implements only the operations the PCA
// pipeline needs (element access, multiplication, transpose, symmetry and
// tolerance-based comparison). For general-purpose linear algebra use
// gonum.org/v1/gonum/mat, which princomp itself uses for its SVD backend.
//
// All operations treat their receivers and arguments as immutable unless
// documented otherwise; mutating methods exist only on Dense itself (Set).
package matrix
