package oscillate

import "errors"

var (
	// ErrNonPositiveDimension indicates a requested size n < 1.
	ErrNonPositiveDimension = errors.New("oscillate: dimension must be positive")
	// ErrEmptySpectrum indicates an empty target spectrum.
	ErrEmptySpectrum = errors.New("oscillate: spectrum must be non-empty")
	// ErrUnknownMode indicates a Mode value outside the declared enum.
	ErrUnknownMode = errors.New("oscillate: unsupported decay mode")
	// ErrSVDConvergence indicates that the SVD of the random bidiagonal
	// matrix failed to converge. This is a backend-level failure, not a
	// transient condition: it is surfaced, never retried.
	ErrSVDConvergence = errors.New("oscillate: svd of the random bidiagonal failed to converge")
)
