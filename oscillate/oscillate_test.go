package oscillate_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/regprob/linalg"
	"github.com/katalvlaran/regprob/oscillate"
)

// singularValues factors a and returns its singular values in the backend's
// descending order.
func singularValues(t *testing.T, a *mat.Dense) []float64 {
	t.Helper()

	var svd mat.SVD
	require.True(t, svd.Factorize(a, mat.SVDNone), "svd must converge on test input")

	return svd.Values(nil)
}

// TestSpectrum_Geometric checks the constant-ratio law and both endpoints.
func TestSpectrum_Geometric(t *testing.T) {
	const n = 16
	kappa := math.Sqrt(1 / linalg.Float64.Eps())

	sigma, err := oscillate.Spectrum(linalg.Float64, n, oscillate.ModeGeometric)
	require.NoError(t, err)
	require.Len(t, sigma, n)

	assert.Equal(t, 1.0, sigma[0], "spectrum must start at 1")
	assert.InDelta(t, 1/kappa, sigma[n-1], 1e-12, "spectrum must end at 1/kappa")

	factor := math.Pow(kappa, -1/float64(n-1))
	for i := 1; i < n; i++ {
		assert.InDelta(t, factor, sigma[i]/sigma[i-1], 1e-12, "ratio at %d must equal factor", i)
	}
}

// TestSpectrum_Arithmetic checks the constant-step law and both endpoints.
func TestSpectrum_Arithmetic(t *testing.T) {
	const n = 16
	kappa := math.Sqrt(1 / linalg.Float64.Eps())

	sigma, err := oscillate.Spectrum(linalg.Float64, n, oscillate.ModeArithmetic)
	require.NoError(t, err)
	require.Len(t, sigma, n)

	assert.Equal(t, 1.0, sigma[0], "spectrum must start at 1")
	assert.InDelta(t, 1/kappa, sigma[n-1], 1e-12, "spectrum must end at 1/kappa")

	step := (1 - 1/kappa) / float64(n-1)
	for i := 1; i < n; i++ {
		assert.InDelta(t, step, sigma[i-1]-sigma[i], 1e-12, "step at %d must be constant", i)
	}
}

// TestSpectrum_Float32 verifies that the condition target follows the
// precision tag: a milder kappa for single precision.
func TestSpectrum_Float32(t *testing.T) {
	const n = 8
	kappa := math.Sqrt(1 / linalg.Float32.Eps())

	sigma, err := oscillate.Spectrum(linalg.Float32, n, oscillate.ModeArithmetic)
	require.NoError(t, err)
	assert.InDelta(t, 1/kappa, sigma[n-1], 1e-12, "float32 spectrum must end at its own 1/kappa")
}

// TestSpectrum_SinglePoint pins the n == 1 convention: [1] for either mode.
func TestSpectrum_SinglePoint(t *testing.T) {
	for _, mode := range []oscillate.Mode{oscillate.ModeArithmetic, oscillate.ModeGeometric} {
		sigma, err := oscillate.Spectrum(linalg.Float64, 1, mode)
		require.NoError(t, err, "mode %v", mode)
		assert.Equal(t, []float64{1}, sigma, "mode %v", mode)
	}
}

// TestSpectrum_Errors covers all precondition failures.
func TestSpectrum_Errors(t *testing.T) {
	_, err := oscillate.Spectrum(linalg.Float64, 0, oscillate.ModeArithmetic)
	assert.ErrorIs(t, err, oscillate.ErrNonPositiveDimension, "n == 0")

	_, err = oscillate.Spectrum(linalg.Float64, 8, oscillate.Mode(3))
	assert.ErrorIs(t, err, oscillate.ErrUnknownMode, "unknown mode")

	_, err = oscillate.Spectrum(linalg.Precision(9), 8, oscillate.ModeArithmetic)
	assert.ErrorIs(t, err, linalg.ErrUnknownPrecision, "unknown precision")
}

// TestFromSpectrum_PreservesSpectrum verifies the core contract: the output
// is symmetric and its singular values equal the requested spectrum.
func TestFromSpectrum_PreservesSpectrum(t *testing.T) {
	sigma := []float64{5, 3, 1, 0.5, 0.25}
	rng := rand.New(rand.NewSource(1))

	a, err := oscillate.FromSpectrum(sigma, rng)
	require.NoError(t, err)

	rows, cols := a.Dims()
	require.Equal(t, len(sigma), rows)
	require.Equal(t, len(sigma), cols)

	for i := 0; i < rows; i++ {
		for j := i + 1; j < cols; j++ {
			assert.InDelta(t, a.At(i, j), a.At(j, i), 1e-12, "symmetry at (%d,%d)", i, j)
		}
	}

	got := singularValues(t, a)
	assert.True(t, floats.EqualApprox(sigma, got, 1e-9),
		"singular values %v must match requested spectrum %v", got, sigma)
}

// TestFromSpectrum_UnorderedInput confirms that no ordering is enforced:
// the spectrum survives even when passed increasing.
func TestFromSpectrum_UnorderedInput(t *testing.T) {
	sigma := []float64{0.5, 1, 2, 4}

	a, err := oscillate.FromSpectrum(sigma, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	got := singularValues(t, a)
	want := []float64{4, 2, 1, 0.5} // backend reports descending
	assert.True(t, floats.EqualApprox(want, got, 1e-9), "got %v", got)
}

// TestFromSpectrum_SeededReproducibility: the same seed yields the same
// matrix, different seeds (almost surely) do not.
func TestFromSpectrum_SeededReproducibility(t *testing.T) {
	sigma := []float64{3, 2, 1}

	a1, err := oscillate.FromSpectrum(sigma, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	a2, err := oscillate.FromSpectrum(sigma, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	a3, err := oscillate.FromSpectrum(sigma, rand.New(rand.NewSource(43)))
	require.NoError(t, err)

	assert.True(t, mat.Equal(a1, a2), "same seed must reproduce the matrix exactly")
	assert.False(t, mat.Equal(a1, a3), "different seeds must change the basis")
}

// TestFromSpectrum_NilRNG verifies the nil-handle policy still produces a
// valid matrix with the right spectrum.
func TestFromSpectrum_NilRNG(t *testing.T) {
	sigma := []float64{2, 1}

	a, err := oscillate.FromSpectrum(sigma, nil)
	require.NoError(t, err)

	got := singularValues(t, a)
	assert.True(t, floats.EqualApprox(sigma, got, 1e-9), "got %v", got)
}

// TestFromSpectrum_EmptySpectrum covers the only direct precondition.
func TestFromSpectrum_EmptySpectrum(t *testing.T) {
	_, err := oscillate.FromSpectrum(nil, nil)
	assert.ErrorIs(t, err, oscillate.ErrEmptySpectrum)
}

// TestNew_DelegatesToSpectrum verifies the composed entry point end to end:
// the synthesized matrix carries the mode's spectrum.
func TestNew_DelegatesToSpectrum(t *testing.T) {
	const n = 12

	a, err := oscillate.New(linalg.Float64, n, oscillate.ModeGeometric, rand.New(rand.NewSource(5)))
	require.NoError(t, err)

	want, err := oscillate.Spectrum(linalg.Float64, n, oscillate.ModeGeometric)
	require.NoError(t, err)

	got := singularValues(t, a)
	assert.True(t, floats.EqualApprox(want, got, 1e-8),
		"synthesized singular values %v must match the mode spectrum %v", got, want)
}

// TestNew_Errors propagates the spectrum preconditions.
func TestNew_Errors(t *testing.T) {
	_, err := oscillate.New(linalg.Float64, -1, oscillate.ModeArithmetic, nil)
	assert.ErrorIs(t, err, oscillate.ErrNonPositiveDimension)

	_, err = oscillate.New(linalg.Float64, 4, oscillate.Mode(99), nil)
	assert.ErrorIs(t, err, oscillate.ErrUnknownMode)
}

// TestMode_String covers the diagnostic names.
func TestMode_String(t *testing.T) {
	assert.Equal(t, "arithmetic", oscillate.ModeArithmetic.String())
	assert.Equal(t, "geometric", oscillate.ModeGeometric.String())
	assert.Equal(t, "mode(?)", oscillate.Mode(5).String())
}
