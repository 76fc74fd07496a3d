package linalg

import "gonum.org/v1/gonum/mat"

// Bidiagonal builds the n×n upper bidiagonal matrix with main diagonal d
// (len n) and superdiagonal e (len n-1); all other entries are zero.
//
// Errors:
//   - ErrEmptyDiagonal     — d is empty.
//   - ErrDimensionMismatch — len(e) != len(d)-1.
//
// Complexity: O(n²) (zero-initialized dense allocation).
func Bidiagonal(d, e []float64) (*mat.Dense, error) {
	n := len(d)
	if n == 0 {
		return nil, ErrEmptyDiagonal
	}
	if len(e) != n-1 {
		return nil, ErrDimensionMismatch
	}

	b := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		b.Set(i, i, d[i])
	}
	for i := 0; i < n-1; i++ {
		b.Set(i, i+1, e[i])
	}

	return b, nil
}

// Toeplitz builds the n×n matrix constant along each diagonal, defined by
// its first column c and first row r: A[i][j] = c[i-j] for i >= j and
// r[j-i] for j > i.
//
// Errors:
//   - ErrEmptyDiagonal     — c is empty.
//   - ErrDimensionMismatch — len(c) != len(r).
//   - ErrDiagonalConflict  — c[0] != r[0] (the shared corner).
//
// Complexity: O(n²).
func Toeplitz(c, r []float64) (*mat.Dense, error) {
	n := len(c)
	if n == 0 {
		return nil, ErrEmptyDiagonal
	}
	if len(r) != n {
		return nil, ErrDimensionMismatch
	}
	if c[0] != r[0] {
		return nil, ErrDiagonalConflict
	}

	t := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i >= j {
				t.Set(i, j, c[i-j])
			} else {
				t.Set(i, j, r[j-i])
			}
		}
	}

	return t, nil
}
