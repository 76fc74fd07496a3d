package problems

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/regprob/linalg"
)

// Deriv2 discretizes the second-derivative (Green's function) kernel on
// [0,1] with step h = 1/n by the Galerkin method.
//
// The entries are closed-form piecewise polynomials (1-based i, j):
//
//	A[i][i] = h²·((i² − i + 1/4)·h − (i − 2/3))
//	A[i][j] = h²·(j − 1/2)·((i − 1/2)·h − 1)   for j < i, mirrored above
//	x[i]    = h^{3/2}·(i − 1/2)
//	b[i]    = h^{3/2}·(i − 1/2)·((i² + (i−1)²)·h²/2 − 1)/6
//
// b and x derive from the same integral, so A·x equals b up to rounding.
//
// Errors: linalg.ErrUnknownPrecision, ErrNonPositiveDimension.
//
// Complexity: O(n²).
func Deriv2(p linalg.Precision, n int) (*Problem, error) {
	if err := validateSize(p, n); err != nil {
		return nil, err
	}

	h := 1 / float64(n)
	hh := h * h
	sqh := math.Sqrt(h)

	a := mat.NewDense(n, n, nil)
	for i := 1; i <= n; i++ {
		fi := float64(i)
		a.Set(i-1, i-1, p.Round(hh*((fi*fi-fi+0.25)*h-(fi-2.0/3.0))))
		for j := 1; j < i; j++ {
			v := p.Round(hh * (float64(j) - 0.5) * ((fi-0.5)*h - 1))
			a.Set(i-1, j-1, v)
			a.Set(j-1, i-1, v)
		}
	}

	x := mat.NewVecDense(n, nil)
	b := mat.NewVecDense(n, nil)
	for i := 1; i <= n; i++ {
		fi := float64(i)
		x.SetVec(i-1, p.Round(h*sqh*(fi-0.5)))
		b.SetVec(i-1, p.Round(h*sqh*(fi-0.5)*((fi*fi+(fi-1)*(fi-1))*hh/2-1)/6))
	}

	return &Problem{A: a, B: b, X: x, Precision: p}, nil
}
