// Package problems: the problem record shared by all generators.
package problems

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/regprob/linalg"
)

// Problem is the (A, b, x) triple produced by every generator: a dense n×n
// matrix, a right-hand side and the reference solution, all in the tagged
// precision. A Problem is constructed once, never mutated by this package,
// and shares no storage with other calls.
type Problem struct {
	// A is the discretized operator, n×n.
	A *mat.Dense
	// B is the right-hand side, length n. For Deriv2, Shaw, Heat and
	// Gravity it equals A·X; for Wing and Foxgood it is an independent
	// closed-form approximation (see the package doc).
	B *mat.VecDense
	// X is the reference solution, length n.
	X *mat.VecDense
	// Precision is the element-type tag the entries were quantized through.
	Precision linalg.Precision
}

// Size returns n, the problem dimension.
func (p *Problem) Size() int {
	return p.X.Len()
}

// Residual returns ‖A·x − b‖₂. It vanishes to rounding for the generators
// with an exact right-hand side and stays small but nonzero for Wing and
// Foxgood.
//
// Complexity: O(n²).
func (p *Problem) Residual() float64 {
	r := mat.NewVecDense(p.X.Len(), nil)
	r.MulVec(p.A, p.X)
	r.SubVec(r, p.B)

	return mat.Norm(r, 2)
}

// exactRHS computes b = A·x (the generators whose right-hand side is exact
// by construction) and quantizes it through p.
func exactRHS(p linalg.Precision, a *mat.Dense, x *mat.VecDense) *mat.VecDense {
	n := x.Len()
	b := mat.NewVecDense(n, nil)
	b.MulVec(a, x)
	for i := 0; i < n; i++ {
		b.SetVec(i, p.Round(b.AtVec(i)))
	}

	return b
}

// midpoints returns the n sample points h·(i−0.5), i = 1..n, for h = 1/n —
// the grid shared by Wing, Foxgood, Heat and Gravity.
func midpoints(n int) (h float64, t []float64) {
	h = 1 / float64(n)
	t = make([]float64, n)
	for i := range t {
		t[i] = (float64(i) + 0.5) * h
	}

	return h, t
}

// validateSize runs the checks every generator shares: a known precision
// tag and a positive dimension.
func validateSize(p linalg.Precision, n int) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if n < 1 {
		return ErrNonPositiveDimension
	}

	return nil
}
