package linalg

// Precision tags the floating-point element type a generated problem is
// meant to live in. Dense storage is always float64 (the gonum element
// type); Precision controls the two places where the element type matters:
//
//   - Eps()   — the machine epsilon used for condition-number targets.
//   - Round() — quantization of computed entries through the tagged type.
//
// The zero value is Float64.
type Precision int

const (
	// Float64 is IEEE 754 double precision (the default).
	Float64 Precision = iota
	// Float32 is IEEE 754 single precision: values are stored quantized to
	// float32, which caps the reachable condition numbers accordingly.
	Float32
)

// Machine epsilons of the tagged types (ulp of 1.0).
const (
	epsFloat64 = 0x1p-52
	epsFloat32 = 0x1p-23
)

// Eps returns the machine epsilon of the tagged element type.
// Unknown tags fall back to the Float64 epsilon; use Validate to reject them.
func (p Precision) Eps() float64 {
	if p == Float32 {
		return epsFloat32
	}

	return epsFloat64
}

// Round quantizes v through the tagged element type: identity for Float64,
// a round-trip through float32 for Float32.
func (p Precision) Round(v float64) float64 {
	if p == Float32 {
		return float64(float32(v))
	}

	return v
}

// Validate reports ErrUnknownPrecision for values outside the enum.
// Every generator calls this before touching its numeric arguments.
func (p Precision) Validate() error {
	if p != Float64 && p != Float32 {
		return ErrUnknownPrecision
	}

	return nil
}

// String implements fmt.Stringer for diagnostics.
func (p Precision) String() string {
	switch p {
	case Float64:
		return "float64"
	case Float32:
		return "float32"
	default:
		return "precision(?)"
	}
}
