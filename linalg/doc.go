// Package linalg carries the numeric policy and the structured-matrix
// constructors shared by the problem generators.
//
// It is deliberately thin: dense storage, factorizations and products all
// come from gonum.org/v1/gonum/mat. What lives here is only the part the
// generators need on top of that backend:
//
//   - Precision — an explicit element-type tag (Float64, Float32). Storage
//     is always float64 (gonum's element type); Precision supplies the
//     machine epsilon of the tagged type and quantizes values through it,
//     so a Float32 problem behaves like one stored at single precision.
//   - Bidiagonal — an upper bidiagonal *mat.Dense from a main diagonal and
//     a superdiagonal.
//   - Toeplitz — a *mat.Dense constant along each diagonal, defined by its
//     first column and first row.
//
// All constructors validate fail-fast and return sentinel errors from
// errors.go; nothing here panics on user input.
package linalg
