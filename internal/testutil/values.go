package testutil

import (
	"math"
	"math/rand"
)

// MixedMagnitudes generates n deterministic values whose magnitudes
// span roughly 10^-decades to 10^+decades, the worst case for naive
// floating-point accumulation.
func MixedMagnitudes(seed int64, n, decades int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		exp := rng.Intn(2*decades+1) - decades
		out[i] = (rng.Float64()*2 - 1) * math.Pow(10, float64(exp))
	}

	return out
}

// Shuffled returns a deterministically shuffled copy of values.
func Shuffled(seed int64, values []float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})

	return out
}
