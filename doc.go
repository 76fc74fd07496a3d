// Package regprob generates synthetic test problems for numerical
// regularization research: dense matrices with known, tunable
// ill-conditioning and matching right-hand sides and exact solutions.
//
// 🚀 What is regprob?
//
//	A small, deterministic library that discretizes classical ill-posed
//	operators into ready-to-solve linear systems A·x ≈ b:
//	  • problems/  — second derivative (Deriv2), 1-D image restoration
//	    (Shaw), discontinuous solution (Wing), Fox-Goodwin (Foxgood),
//	    inverse heat equation (Heat), gravity surveying (Gravity)
//	  • oscillate/ — symmetric matrices with a prescribed singular-value
//	    spectrum, built on a pseudo-random orthogonal basis
//	  • linalg/    — numeric precision policy plus bidiagonal and
//	    Toeplitz constructors shared by the generators
//
// ✨ Why choose regprob?
//
//   - Known ground truth - every generator returns A, b and the exact x,
//     so regularizers (Tikhonov, TSVD, ...) can be benchmarked honestly
//   - Tunable conditioning - geometric or arithmetic singular-value decay
//     down to 1/κ with κ = sqrt(1/eps)
//   - Reproducible - the only randomized routine takes an explicit
//     *rand.Rand handle; seed it and every call is repeatable
//   - Built on gonum - dense storage, SVD and products come from
//     gonum.org/v1/gonum/mat
//
// Quick example:
//
//	prob, err := problems.Shaw(linalg.Float64, 32)
//	if err != nil { ... }
//	fmt.Println(prob.Residual()) // ≈ 0: b is constructed as A·x
//
// Each generator is a pure function of its arguments: no shared state,
// no I/O, fresh allocations per call.
//
//	go get github.com/katalvlaran/regprob/problems
package regprob
