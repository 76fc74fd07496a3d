package problems

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/regprob/linalg"
)

// DefaultDepth is the canonical depth of the buried mass distribution.
// Larger depths smooth the kernel and worsen the conditioning.
const DefaultDepth = 0.25

// Gravity is GravityDepth with the canonical depth d = 0.25.
func Gravity(p linalg.Precision, n int) (*Problem, error) {
	return GravityDepth(p, n, DefaultDepth)
}

// GravityDepth discretizes 1-D gravity surveying: the vertical field
// component at the surface from a mass distribution at depth d > 0,
// a Fredholm equation of the first kind on [0,1].
//
// On the midpoint grid s_i = t_i = (i − 1/2)·h, h = 1/n (1-based i):
//
//	A[i][j] = d·h·(d² + (s_i − t_j)²)^{−3/2}   (symmetric)
//	x[i]    = sin(π·t_i) + sin(2π·t_i)/2
//	b       = A·x
//
// Errors: linalg.ErrUnknownPrecision, ErrNonPositiveDimension,
// ErrNonPositiveDepth.
//
// Complexity: O(n²).
func GravityDepth(p linalg.Precision, n int, d float64) (*Problem, error) {
	if err := validateSize(p, n); err != nil {
		return nil, err
	}
	if d <= 0 {
		return nil, ErrNonPositiveDepth
	}

	h, t := midpoints(n)
	dd := d * d

	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			dt := t[i] - t[j]
			v := p.Round(d * h / math.Pow(dd+dt*dt, 1.5))
			a.Set(i, j, v)
			a.Set(j, i, v)
		}
	}

	x := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		x.SetVec(i, p.Round(math.Sin(math.Pi*t[i])+0.5*math.Sin(2*math.Pi*t[i])))
	}

	return &Problem{A: a, B: exactRHS(p, a, x), X: x, Precision: p}, nil
}
