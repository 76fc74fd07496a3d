package oscillate

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/regprob/linalg"
)

// Spectrum builds the n target singular values for the requested precision
// and decay mode: Σ[0] = 1, Σ[n-1] = 1/κ with κ = sqrt(1/eps(p)), decaying
// geometrically (constant ratio) or arithmetically (constant step).
//
// A one-point spectrum is [1] for either mode: the decay target is
// unreachable with a single value.
//
// Errors:
//   - linalg.ErrUnknownPrecision — p outside the enum.
//   - ErrNonPositiveDimension    — n < 1.
//   - ErrUnknownMode             — mode outside the enum.
//
// Complexity: O(n).
func Spectrum(p linalg.Precision, n int, mode Mode) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, ErrNonPositiveDimension
	}
	if mode != ModeArithmetic && mode != ModeGeometric {
		return nil, ErrUnknownMode
	}

	kappa := math.Sqrt(1 / p.Eps())
	sigma := make([]float64, n)
	sigma[0] = 1
	if n == 1 {
		return sigma, nil
	}

	switch mode {
	case ModeGeometric:
		factor := math.Pow(kappa, -1/float64(n-1))
		for i := 1; i < n; i++ {
			sigma[i] = sigma[i-1] * factor
		}
	case ModeArithmetic:
		step := (1 - 1/kappa) / float64(n-1)
		for i := 1; i < n; i++ {
			sigma[i] = 1 - float64(i)*step
		}
	}

	return sigma, nil
}

// FromSpectrum returns a symmetric matrix whose singular values are exactly
// sigma, in a pseudo-random orthogonal basis.
//
// Construction: draw an upper bidiagonal B with Uniform[0,1) entries, each
// shifted by the float64 machine epsilon so no entry degenerates to zero;
// factor B = U·S·Vᵀ; return U·diag(sigma)·Uᵀ. S and V are discarded — U is
// only a source of orthogonal directions uncorrelated with sigma's order.
//
// sigma is not reordered or sign-checked (callers conventionally pass it
// decreasing, but nothing here requires that). rng may be nil; see rng.go
// for the reproducibility policy.
//
// Errors:
//   - ErrEmptySpectrum   — len(sigma) == 0.
//   - ErrSVDConvergence  — the backend SVD did not converge.
//
// Complexity: O(n³) time (SVD-dominated), O(n²) memory.
func FromSpectrum(sigma []float64, rng *rand.Rand) (*mat.Dense, error) {
	n := len(sigma)
	if n == 0 {
		return nil, ErrEmptySpectrum
	}

	r := rngOrDefault(rng)
	eps := linalg.Float64.Eps()
	d := make([]float64, n)
	for i := range d {
		d[i] = r.Float64() + eps
	}
	e := make([]float64, n-1)
	for i := range e {
		e[i] = r.Float64() + eps
	}

	b, err := linalg.Bidiagonal(d, e)
	if err != nil {
		return nil, err
	}

	var svd mat.SVD
	if !svd.Factorize(b, mat.SVDThin) {
		return nil, ErrSVDConvergence
	}
	var u mat.Dense
	svd.UTo(&u)

	// U · diag(sigma) · Uᵀ
	var us, a mat.Dense
	us.Mul(&u, mat.NewDiagDense(n, sigma))
	a.Mul(&us, u.T())

	return &a, nil
}

// New synthesizes the spectrum for (p, n, mode) and delegates to
// FromSpectrum. The Mode zero value gives the default arithmetic decay.
//
// Errors: those of Spectrum and FromSpectrum.
func New(p linalg.Precision, n int, mode Mode, rng *rand.Rand) (*mat.Dense, error) {
	sigma, err := Spectrum(p, n, mode)
	if err != nil {
		return nil, err
	}

	return FromSpectrum(sigma, rng)
}
