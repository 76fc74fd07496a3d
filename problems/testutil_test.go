package problems_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/regprob/problems"
)

// requireShape checks the record invariant shared by every generator:
// square n×n matrix, length-n vectors.
func requireShape(t *testing.T, p *problems.Problem, n int) {
	t.Helper()

	rows, cols := p.A.Dims()
	require.Equal(t, n, rows, "A rows")
	require.Equal(t, n, cols, "A cols")
	require.Equal(t, n, p.B.Len(), "b length")
	require.Equal(t, n, p.X.Len(), "x length")
	require.Equal(t, n, p.Size())
}

// assertFinite fails on any NaN or ±Inf entry in A, b or x.
func assertFinite(t *testing.T, p *problems.Problem) {
	t.Helper()

	n := p.Size()
	for i := 0; i < n; i++ {
		assert.False(t, math.IsNaN(p.B.AtVec(i)) || math.IsInf(p.B.AtVec(i), 0), "b[%d] not finite", i)
		assert.False(t, math.IsNaN(p.X.AtVec(i)) || math.IsInf(p.X.AtVec(i), 0), "x[%d] not finite", i)
		for j := 0; j < n; j++ {
			v := p.A.At(i, j)
			assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "A[%d][%d] not finite", i, j)
		}
	}
}

// assertSymmetric fails unless A equals its transpose exactly.
func assertSymmetric(t *testing.T, a *mat.Dense) {
	t.Helper()

	assert.True(t, mat.Equal(a, a.T()), "matrix must be symmetric")
}
