package problems

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/regprob/linalg"
)

// DefaultKappa is the canonical heat diffusivity parameter. Smaller values
// make the inverse problem harder.
const DefaultKappa = 1.0

// Heat is HeatKappa with the canonical diffusivity κ = 1.
func Heat(p linalg.Precision, n int) (*Problem, error) {
	return HeatKappa(p, n, DefaultKappa)
}

// HeatKappa discretizes the inverse heat equation as a Volterra equation of
// the first kind on [0,1]; n must be even and kappa positive.
//
// On the midpoint grid t_i = (i − 1/2)·h, h = 1/n, with c = h/(2κ√π) and
// d = 1/(4κ²), the kernel samples are
//
//	k_i = c·t_i^{−3/2}·exp(−d/t_i),
//
// and A is the Toeplitz matrix with first column k and first row
// (k_1, 0, …, 0) — lower triangular, causality of the Volterra kernel.
//
// x ramps quadratically, plateaus linearly and decays exponentially over
// the first half of the interval (in the scaled index u_i = 20·i/n:
// 0.75·u²/4 for u < 2, 0.75 + (u−2)/4 for u < 3, 0.75·exp(−2(u−3))
// beyond) and is exactly zero on the second half. b = A·x.
//
// Errors: linalg.ErrUnknownPrecision, ErrNonPositiveDimension,
// ErrOddDimension, ErrNonPositiveKappa.
//
// Complexity: O(n²).
func HeatKappa(p linalg.Precision, n int, kappa float64) (*Problem, error) {
	if err := validateSize(p, n); err != nil {
		return nil, err
	}
	if n%2 != 0 {
		return nil, ErrOddDimension
	}
	if kappa <= 0 {
		return nil, ErrNonPositiveKappa
	}

	h, t := midpoints(n)
	c := h / (2 * kappa * math.Sqrt(math.Pi))
	d := 1 / (4 * kappa * kappa)

	col := make([]float64, n)
	row := make([]float64, n)
	for i := 0; i < n; i++ {
		col[i] = p.Round(c * math.Pow(t[i], -1.5) * math.Exp(-d/t[i]))
	}
	row[0] = col[0]

	a, err := linalg.Toeplitz(col, row)
	if err != nil {
		return nil, err
	}

	x := mat.NewVecDense(n, nil)
	for i := 1; i <= n/2; i++ {
		u := float64(i) * 20 / float64(n)
		var v float64
		switch {
		case u < 2:
			v = 0.75 * u * u / 4
		case u < 3:
			v = 0.75 + (u-2)/4
		default:
			v = 0.75 * math.Exp(-(u-3)*2)
		}
		x.SetVec(i-1, p.Round(v))
	}

	return &Problem{A: a, B: exactRHS(p, a, x), X: x, Precision: p}, nil
}
