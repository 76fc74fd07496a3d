package linalg

import "errors"

var (
	// ErrUnknownPrecision indicates a Precision value outside the declared enum.
	ErrUnknownPrecision = errors.New("linalg: unknown precision tag")
	// ErrEmptyDiagonal indicates an empty main diagonal where at least one entry is required.
	ErrEmptyDiagonal = errors.New("linalg: diagonal must be non-empty")
	// ErrDimensionMismatch indicates incompatible slice lengths between the inputs.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")
	// ErrDiagonalConflict indicates that a Toeplitz first column and first row
	// disagree on the shared corner entry.
	ErrDiagonalConflict = errors.New("linalg: toeplitz column and row disagree at the corner")
)
