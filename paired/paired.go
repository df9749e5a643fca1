// Package paired provides descriptive statistics over paired samples:
// covariance and the Pearson correlation coefficient. Both samples must have
// the same length; unlike the single-sample routines these operations report
// malformed input as an error rather than folding it into the result.
package paired

import (
	"errors"

	"github.com/cwbudde/algo-stats/descriptive"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by paired statistics.
var (
	ErrEmptyInput     = errors.New("paired: empty input")
	ErrLengthMismatch = errors.New("paired: sample length mismatch")
)

type config struct {
	estimator descriptive.Estimator
}

// Option configures paired statistics.
type Option func(*config)

// WithEstimator selects the divisor convention for covariance.
// Unknown values are ignored.
func WithEstimator(e descriptive.Estimator) Option {
	return func(c *config) {
		if e == descriptive.EstimatorSample || e == descriptive.EstimatorPopulation {
			c.estimator = e
		}
	}
}

func applyOptions(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Covariance returns the covariance of the paired samples x and y, using the
// sample divisor n-1 unless WithEstimator selects the population divisor n.
// A single pair yields 0 under either convention. Neither buffer is modified.
func Covariance(x, y []float64, opts ...Option) (float64, error) {
	if len(x) != len(y) {
		return 0, ErrLengthMismatch
	}

	if len(x) == 0 {
		return 0, ErrEmptyInput
	}

	if len(x) == 1 {
		return 0, nil
	}

	cfg := applyOptions(opts...)

	meanX := descriptive.Mean(x)
	meanY := descriptive.Mean(y)

	dx := make([]float64, len(x))
	dy := make([]float64, len(y))
	for i := range x {
		dx[i] = x[i] - meanX
		dy[i] = y[i] - meanY
	}

	vecmath.MulBlockInPlace(dx, dy)

	var sum float64
	for _, v := range dx {
		sum += v
	}

	div := float64(len(x) - 1)
	if cfg.estimator == descriptive.EstimatorPopulation {
		div = float64(len(x))
	}

	return sum / div, nil
}

// Correlation returns the Pearson correlation coefficient of x and y.
// The result is 0 when either sample has zero deviation (a constant series).
// Neither buffer is modified.
func Correlation(x, y []float64) (float64, error) {
	cov, err := Covariance(x, y)
	if err != nil {
		return 0, err
	}

	sx := descriptive.StdDev(x)
	sy := descriptive.StdDev(y)
	if sx == 0 || sy == 0 {
		return 0, nil
	}

	return cov / (sx * sy), nil
}
