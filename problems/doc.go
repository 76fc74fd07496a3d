// Package problems discretizes classical ill-posed operators into dense
// test problems A·x ≈ b with a known exact solution.
//
// 🚀 What is problems?
//
//	Each generator is an independent pure function returning a Problem
//	(A, b, x) built from closed-form discretization formulas:
//	  • Deriv2  — second-derivative (Green's function) operator on [0,1]
//	  • Shaw    — 1-D image restoration kernel (even n)
//	  • Wing    — discontinuous-solution kernel with interval (t1, t2)
//	  • Foxgood — Fox-Goodwin severely ill-posed kernel
//	  • Heat    — inverse heat equation, lower-triangular Toeplitz (even n)
//	  • Gravity — 1-D gravity surveying kernel with depth d
//
// ⚖️ Exact vs. approximate right-hand sides:
//
//	Deriv2, Shaw, Heat and Gravity construct b as A·x, so the residual
//	‖A·x − b‖ vanishes to rounding. Wing and Foxgood instead derive b as
//	an independent closed-form quadrature of the same continuous integral
//	equation: A·x ≈ b only approximately, and that gap is part of the
//	problem's design — it is never "fixed" by recomputing b.
//
// ⚙️ Usage:
//
//	prob, err := problems.HeatKappa(linalg.Float64, 100, 1)
//	if err != nil { ... }
//	_ = prob.A // *mat.Dense, n×n
//	_ = prob.B // *mat.VecDense, length n
//	_ = prob.X // *mat.VecDense, length n
//
// All preconditions are checked before any allocation; violations return
// the sentinel errors in errors.go. Everything is single-threaded,
// deterministic and O(n²) per call.
//
// The formulas follow the classical regularization-tools conventions and
// are written 1-based; the implementation keeps that meaning exactly while
// storing 0-based.
package problems
