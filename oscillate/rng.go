// Package oscillate - RNG policy for the randomized synthesizer.
//
// Goals:
//   - Composability: callers own the randomness source; the package never
//     hides a seed.
//   - Reproducibility on demand: the same seeded *rand.Rand yields the
//     same matrix, bit for bit.
//   - Honest default: a nil handle draws a fresh stream from the
//     process-global source, so unseeded calls are NOT reproducible
//     across runs. This is a documented property of the synthesizer,
//     not an accident.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a handle across
//     goroutines; give each worker its own seeded stream.
package oscillate

import "math/rand"

// rngOrDefault returns rng unchanged when non-nil; otherwise it creates an
// independent stream seeded from the process-global source (which Go seeds
// randomly at startup).
//
// Complexity: O(1).
func rngOrDefault(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}

	return rand.New(rand.NewSource(rand.Int63()))
}
