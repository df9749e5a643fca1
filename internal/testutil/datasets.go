package testutil

import "math/rand"

// DeterministicNormal generates normally distributed samples with a fixed
// seed for reproducibility.
func DeterministicNormal(seed int64, mean, stddev float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = mean + stddev*rng.NormFloat64()
	}
	return out
}

// Shuffled returns a copy of data with its elements deterministically
// reordered. The input is left untouched.
func Shuffled(seed int64, data []float64) []float64 {
	out := make([]float64, len(data))
	copy(out, data)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
