// Package oscillate: decay-mode enumeration for spectrum construction.
package oscillate

// Mode selects how a synthesized spectrum decays from 1 down to 1/κ,
// where κ = sqrt(1/eps) for the requested precision.
//
//   - ModeArithmetic — Σ[i] = 1 - (i/(n-1))·(1 - 1/κ): constant step.
//   - ModeGeometric  — Σ[i] = factor^i with factor = κ^(-1/(n-1)):
//     constant ratio between consecutive values.
//
// The zero value is ModeArithmetic (the default decay law).
type Mode int

const (
	// ModeArithmetic decays linearly in the index.
	ModeArithmetic Mode = iota
	// ModeGeometric decays by a constant factor per index.
	ModeGeometric
)

// String implements fmt.Stringer for diagnostics.
func (m Mode) String() string {
	switch m {
	case ModeArithmetic:
		return "arithmetic"
	case ModeGeometric:
		return "geometric"
	default:
		return "mode(?)"
	}
}
