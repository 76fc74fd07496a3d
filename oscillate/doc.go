// Package oscillate synthesizes symmetric test matrices with a prescribed
// singular-value spectrum.
//
// 🚀 What is oscillate?
//
//	Given a target spectrum Σ, FromSpectrum builds a random upper
//	bidiagonal matrix B, takes its SVD B = U·S·Vᵀ, discards S and V, and
//	returns U·diag(Σ)·Uᵀ — a symmetric matrix whose singular values are
//	exactly Σ, expressed in a pseudo-random orthogonal basis uncorrelated
//	with Σ's ordering (hence the "oscillating" structure).
//
//	New derives the spectrum first: κ = sqrt(1/eps) for the requested
//	Precision, then Σ decays from 1 down to 1/κ either geometrically
//	(constant ratio, ModeGeometric) or linearly (constant step,
//	ModeArithmetic — the default and the Mode zero value).
//
// ⚙️ Usage:
//
//	rng := rand.New(rand.NewSource(42)) // seed for reproducibility
//	A, err := oscillate.New(linalg.Float64, 64, oscillate.ModeGeometric, rng)
//
// Randomness:
//
//	The basis is random by design. Pass a seeded *rand.Rand for
//	deterministic output; a nil handle draws from the process-global
//	source, so unseeded calls are intentionally NOT reproducible.
//	*rand.Rand is not goroutine-safe — do not share one handle across
//	concurrent calls.
//
// Performance: the SVD dominates, O(n³) time, O(n²) memory.
package oscillate
