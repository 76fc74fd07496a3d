package problems

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/regprob/linalg"
)

// Default discontinuity points of the Wing solution.
const (
	DefaultWingT1 = 1.0 / 3
	DefaultWingT2 = 2.0 / 3
)

// Wing is WingPoints with the canonical interval (1/3, 2/3).
func Wing(p linalg.Precision, n int) (*Problem, error) {
	return WingPoints(p, n, DefaultWingT1, DefaultWingT2)
}

// WingPoints discretizes Wing's test problem with a discontinuous solution:
// a Fredholm equation of the first kind on [0,1] whose solution is the
// indicator of (t1, t2). Requires t1 < t2.
//
// On the midpoint grid s_i = (i − 1/2)·h, h = 1/n (1-based i):
//
//	A[i][j] = h·s_j·exp(−s_i·s_j²)            (dense, non-symmetric)
//	b[i]    = √h·(exp(−s_i·t1²) − exp(−s_i·t2²))/(2·s_i)
//	x[i]    = √h  where t1 < s_i < t2, else 0
//
// b is an independent closed-form quadrature of the continuous equation:
// A·x ≈ b holds only approximately, by design.
//
// Errors: linalg.ErrUnknownPrecision, ErrNonPositiveDimension,
// ErrIntervalOrder.
//
// Complexity: O(n²).
func WingPoints(p linalg.Precision, n int, t1, t2 float64) (*Problem, error) {
	if err := validateSize(p, n); err != nil {
		return nil, err
	}
	if t1 >= t2 {
		return nil, ErrIntervalOrder
	}

	h, s := midpoints(n)
	sqh := math.Sqrt(h)

	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a.Set(i, j, p.Round(h*s[j]*math.Exp(-s[i]*s[j]*s[j])))
		}
	}

	b := mat.NewVecDense(n, nil)
	x := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		b.SetVec(i, p.Round(sqh*0.5*(math.Exp(-s[i]*t1*t1)-math.Exp(-s[i]*t2*t2))/s[i]))
		if t1 < s[i] && s[i] < t2 {
			x.SetVec(i, p.Round(sqh))
		}
	}

	return &Problem{A: a, B: b, X: x, Precision: p}, nil
}
