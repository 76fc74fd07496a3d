package problems

import "errors"

var (
	// ErrNonPositiveDimension indicates a requested size n < 1.
	ErrNonPositiveDimension = errors.New("problems: dimension must be positive")
	// ErrOddDimension indicates an odd n where the discretization requires an
	// even one (Shaw, Heat).
	ErrOddDimension = errors.New("problems: dimension must be even")
	// ErrIntervalOrder indicates t1 >= t2 for a generator that needs a
	// non-degenerate interval (Wing).
	ErrIntervalOrder = errors.New("problems: t1 must be strictly less than t2")
	// ErrNonPositiveKappa indicates a non-positive heat diffusivity parameter.
	ErrNonPositiveKappa = errors.New("problems: kappa must be positive")
	// ErrNonPositiveDepth indicates a non-positive gravity depth parameter.
	ErrNonPositiveDepth = errors.New("problems: depth must be positive")
)
