package problems

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/regprob/linalg"
)

// Foxgood discretizes the severely ill-posed kernel of Fox & Goodwin on
// [0,1] with the midpoint rule, h = 1/n, t_i = (i − 1/2)·h (1-based i):
//
//	A[i][j] = h·sqrt(t_i² + t_j²)             (symmetric)
//	x[i]    = t_i
//	b[i]    = ((1 + t_i²)^{3/2} − t_i³)/3     (closed-form antiderivative)
//
// b comes from the exact antiderivative of the continuous equation, so
// A·x ≈ b only approximately, by design.
//
// Errors: linalg.ErrUnknownPrecision, ErrNonPositiveDimension.
//
// Complexity: O(n²).
func Foxgood(p linalg.Precision, n int) (*Problem, error) {
	if err := validateSize(p, n); err != nil {
		return nil, err
	}

	h, t := midpoints(n)

	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := p.Round(h * math.Sqrt(t[i]*t[i]+t[j]*t[j]))
			a.Set(i, j, v)
			a.Set(j, i, v)
		}
	}

	x := mat.NewVecDense(n, nil)
	b := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		x.SetVec(i, p.Round(t[i]))
		b.SetVec(i, p.Round((math.Pow(1+t[i]*t[i], 1.5)-t[i]*t[i]*t[i])/3))
	}

	return &Problem{A: a, B: b, X: x, Precision: p}, nil
}
