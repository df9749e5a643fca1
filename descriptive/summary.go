package descriptive

import (
	"math"
	"sort"
)

// Summary holds the descriptive statistics of a sample buffer.
type Summary struct {
	Count    int
	Sum      float64
	Mean     float64
	Median   float64
	Variance float64
	StdDev   float64
	Min      float64
	Max      float64
	Range    float64
}

// Describe computes all summary statistics in the estimator convention
// selected by opts. Unlike [Median], Describe never reorders data; the median
// is taken from an internal sorted copy.
// Returns a zero-valued Summary for an empty slice.
func Describe(data []float64, opts ...Option) Summary {
	n := len(data)
	if n == 0 {
		return Summary{}
	}

	minVal, maxVal := MinMax(data)
	variance := Variance(data, opts...)

	sorted := make([]float64, n)
	copy(sorted, data)
	sort.Float64s(sorted)

	var median float64
	if n%2 == 0 {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	} else {
		median = sorted[n/2]
	}

	return Summary{
		Count:    n,
		Sum:      Sum(data),
		Mean:     Mean(data),
		Median:   median,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
		Min:      minVal,
		Max:      maxVal,
		Range:    maxVal - minVal,
	}
}
