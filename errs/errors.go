// Package errs defines the sentinel errors shared across princomp packages.
//
// Callers are expected to match errors with errors.Is; every error returned
// by the library either is one of these sentinels or wraps one with
// additional context (the offending dimensions or values).
package errs

import "errors"

// Input validation errors. All of them represent malformed or degenerate
// caller input; matching errs.ErrInvalidInput catches the general case while
// the specific sentinels allow finer-grained handling.
var (
	// ErrInvalidInput is the generic invalid-input error. The more specific
	// input errors below wrap it, so errors.Is(err, ErrInvalidInput) matches
	// any of them.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInsufficientRows indicates fewer than two observations, for which
	// the sample covariance is undefined.
	ErrInsufficientRows = wrap("insufficient rows", ErrInvalidInput)

	// ErrZeroVariance indicates a zero-variance column where unit-variance
	// scaling or correlation was requested.
	ErrZeroVariance = wrap("zero variance column", ErrInvalidInput)

	// ErrInvalidComponentCount indicates a component count k outside [1, p].
	ErrInvalidComponentCount = wrap("invalid component count", ErrInvalidInput)

	// ErrDegenerateVariance indicates a non-positive total variance, so no
	// explained-variance ratios can be formed.
	ErrDegenerateVariance = wrap("degenerate total variance", ErrInvalidInput)

	// ErrNotSymmetric indicates a matrix that was required to be symmetric
	// but is not within tolerance.
	ErrNotSymmetric = wrap("matrix is not symmetric", ErrInvalidInput)
)

// ErrDimensionMismatch indicates incompatible matrix or vector shapes passed
// between pipeline steps.
var ErrDimensionMismatch = errors.New("dimension mismatch")

// ErrNoConvergence indicates the eigensolver failed to converge within its
// bounded sweep budget. It is the only numerical failure mode of the engine.
var ErrNoConvergence = errors.New("eigensolver did not converge")

// Model blob format errors.
var (
	// ErrBlobTooSmall indicates the blob is shorter than the fixed header.
	ErrBlobTooSmall = errors.New("blob too small")

	// ErrInvalidHeaderSize indicates a header slice of the wrong length.
	ErrInvalidHeaderSize = errors.New("invalid header size")

	// ErrInvalidMagicNumber indicates the blob does not start with the
	// princomp model magic.
	ErrInvalidMagicNumber = errors.New("invalid magic number")

	// ErrInvalidHeaderFlags indicates unknown or inconsistent header flag
	// bits (compression, method or endianness).
	ErrInvalidHeaderFlags = errors.New("invalid header flags")

	// ErrInvalidPayload indicates a payload section whose size disagrees
	// with the header counts.
	ErrInvalidPayload = errors.New("invalid payload")

	// ErrChecksumMismatch indicates the payload checksum does not match the
	// header, i.e. the blob is corrupted.
	ErrChecksumMismatch = errors.New("checksum mismatch")
)

// wrap builds a sentinel that carries its own message while matching base
// through errors.Is.
func wrap(msg string, base error) error {
	return &wrapped{msg: msg, base: base}
}

type wrapped struct {
	msg  string
	base error
}

func (w *wrapped) Error() string { return w.msg }
func (w *wrapped) Unwrap() error { return w.base }
