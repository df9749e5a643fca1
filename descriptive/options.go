package descriptive

// Estimator selects the divisor convention for dispersion statistics.
type Estimator int

const (
	// EstimatorSample divides summed squared deviations by n-1 (Bessel's
	// correction). This is the default.
	EstimatorSample Estimator = iota
	// EstimatorPopulation divides summed squared deviations by n.
	EstimatorPopulation
)

// divisor returns the denominator for n samples under this convention.
func (e Estimator) divisor(n int) float64 {
	if e == EstimatorPopulation {
		return float64(n)
	}

	return float64(n - 1)
}

type config struct {
	estimator Estimator
}

func defaultConfig() config {
	return config{estimator: EstimatorSample}
}

// Option configures statistics that depend on an estimator convention.
type Option func(*config)

// WithEstimator selects the divisor convention. Unknown values are ignored.
func WithEstimator(e Estimator) Option {
	return func(c *config) {
		if e == EstimatorSample || e == EstimatorPopulation {
			c.estimator = e
		}
	}
}

func applyOptions(opts ...Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
