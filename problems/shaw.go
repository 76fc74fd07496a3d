package problems

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/regprob/linalg"
)

// Parameters of Shaw's reference solution: two Gaussian bumps.
const (
	shawAmp1, shawAmp2       = 2.0, 1.0  // amplitudes
	shawWidth1, shawWidth2   = 6.0, 2.0  // widths
	shawCenter1, shawCenter2 = 0.8, -0.5 // offsets
)

// Shaw discretizes the 1-D image restoration kernel of C. B. Shaw on
// [−π/2, π/2] with angular step h = π/n; n must be even.
//
// The kernel relation at sample points θ_i = −π/2 + (i − 1/2)·h, with
// c_i = cos θ_i and ψ_i = π·sin θ_i (1-based indices):
//
//	A[i][j] = ((c_i + c_j)·sin(ψ_i + ψ_j)/(ψ_i + ψ_j))²  for i ≤ j ≤ n−i
//	A[i][n−i+1] = (2·c_i)²                                (the 0/0 limit)
//
// Only the upper band is filled directly; the lower-right block follows by
// point symmetry A[n−j+1][n−i+1] = A[i][j]. The strict upper triangle is
// then transpose-added into the lower one and the whole matrix scaled by h.
//
// x is the sum of two Gaussian bumps evaluated at θ, and b = A·x.
//
// Errors: linalg.ErrUnknownPrecision, ErrNonPositiveDimension,
// ErrOddDimension.
//
// Complexity: O(n²).
func Shaw(p linalg.Precision, n int) (*Problem, error) {
	if err := validateSize(p, n); err != nil {
		return nil, err
	}
	if n%2 != 0 {
		return nil, ErrOddDimension
	}

	h := math.Pi / float64(n)
	th := make([]float64, n)  // sample angles
	co := make([]float64, n)  // cos θ
	psi := make([]float64, n) // π·sin θ
	for i := 0; i < n; i++ {
		th[i] = -math.Pi/2 + (float64(i)+0.5)*h
		co[i] = math.Cos(th[i])
		psi[i] = math.Pi * math.Sin(th[i])
	}

	a := mat.NewDense(n, n, nil)
	for i := 0; i < n/2; i++ {
		// band j = i..n−i−2 (0-based), i.e. up to but excluding the
		// anti-diagonal entry handled below
		for j := i; j <= n-i-2; j++ {
			ss := psi[i] + psi[j]
			s := (co[i] + co[j]) * math.Sin(ss) / ss
			a.Set(i, j, s*s)
			a.Set(n-j-1, n-i-1, s*s) // point-symmetric mirror
		}
		a.Set(i, n-i-1, (2*co[i])*(2*co[i]))
	}

	// symmetrize: fold the strict upper triangle into the lower, then scale by h
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a.Set(j, i, a.At(j, i)+a.At(i, j))
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a.Set(i, j, p.Round(h*a.At(i, j)))
		}
	}

	x := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		g1 := th[i] - shawCenter1
		g2 := th[i] - shawCenter2
		x.SetVec(i, p.Round(shawAmp1*math.Exp(-shawWidth1*g1*g1)+shawAmp2*math.Exp(-shawWidth2*g2*g2)))
	}

	return &Problem{A: a, B: exactRHS(p, a, x), X: x, Precision: p}, nil
}
