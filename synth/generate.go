package synth

import (
	"fmt"
	"math/rand"
)

// Generator creates deterministic sample datasets from a fixed seed.
type Generator struct {
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the deterministic random seed.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured dataset generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// SetSeed replaces the seed used by subsequent draws.
func (g *Generator) SetSeed(seed int64) {
	g.seed = seed
}

// Seed returns the current random seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Normal generates n values drawn from the normal distribution with the
// given mean and standard deviation.
func (g *Generator) Normal(mean, stddev float64, n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("normal sample count must be > 0: %d", n)
	}
	if stddev < 0 {
		return nil, fmt.Errorf("normal stddev must be >= 0: %f", stddev)
	}
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = mean + stddev*rng.NormFloat64()
	}
	return out, nil
}

// Uniform generates n values evenly distributed in [lo, hi).
func (g *Generator) Uniform(lo, hi float64, n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("uniform sample count must be > 0: %d", n)
	}
	if lo > hi {
		return nil, fmt.Errorf("uniform bounds inverted: [%f, %f)", lo, hi)
	}
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = lo + rng.Float64()*(hi-lo)
	}
	return out, nil
}

// Sequence returns n values starting at start and advancing by step.
func Sequence(start, step float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

// Constant returns n copies of value.
func Constant(value float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}
