package descriptive

import (
	"math"
	"sort"
)

// Mean returns the arithmetic mean of data.
// Returns 0 for an empty slice.
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}

	var sum float64
	for _, v := range data {
		sum += v
	}

	return sum / float64(len(data))
}

// Sum returns the sum of all elements in data.
// Returns 0 for an empty slice.
func Sum(data []float64) float64 {
	var sum float64
	for _, v := range data {
		sum += v
	}

	return sum
}

// Variance returns the variance of data, using the sample divisor n-1 unless
// WithEstimator selects the population divisor n.
// Returns 0 for fewer than two elements under either convention.
func Variance(data []float64, opts ...Option) float64 {
	if len(data) <= 1 {
		return 0
	}

	cfg := applyOptions(opts...)
	mean := Mean(data)

	var sumSq float64
	for _, v := range data {
		d := v - mean
		sumSq += d * d
	}

	return sumSq / cfg.estimator.divisor(len(data))
}

// StdDev returns the standard deviation of data, the square root of
// [Variance] under the same estimator convention.
// Returns 0 for fewer than two elements.
func StdDev(data []float64, opts ...Option) float64 {
	return math.Sqrt(Variance(data, opts...))
}

// Median returns the middle value of data. The buffer is sorted ascending in
// place as an observable side effect. For an even number of elements the two
// middle values are averaged.
// Returns 0 for an empty slice without touching the buffer.
func Median(data []float64) float64 {
	n := len(data)
	if n == 0 {
		return 0
	}

	sort.Float64s(data)

	if n%2 == 0 {
		return (data[n/2-1] + data[n/2]) / 2
	}

	return data[n/2]
}

// Percentile returns the p-th percentile of data (0 <= p <= 100) using linear
// interpolation between the two nearest order statistics. Like [Median] it
// sorts the buffer ascending in place. Values of p outside [0, 100] clamp to
// the minimum and maximum.
// Returns 0 for an empty slice without touching the buffer.
func Percentile(data []float64, p float64) float64 {
	n := len(data)
	if n == 0 {
		return 0
	}

	sort.Float64s(data)

	if !(p > 0) {
		return data[0]
	}

	if p >= 100 {
		return data[n-1]
	}

	rank := p / 100 * float64(n-1)
	lower := int(rank)
	frac := rank - float64(lower)

	if lower+1 >= n {
		return data[lower]
	}

	return data[lower] + frac*(data[lower+1]-data[lower])
}

// Min returns the smallest element of data.
// Returns 0 for an empty slice.
func Min(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}

	minVal := data[0]
	for _, v := range data[1:] {
		if v < minVal {
			minVal = v
		}
	}

	return minVal
}

// Max returns the largest element of data.
// Returns 0 for an empty slice.
func Max(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}

	maxVal := data[0]
	for _, v := range data[1:] {
		if v > maxVal {
			maxVal = v
		}
	}

	return maxVal
}

// MinMax returns the smallest and largest elements of data in a single pass.
// Returns 0, 0 for an empty slice.
func MinMax(data []float64) (minVal, maxVal float64) {
	if len(data) == 0 {
		return 0, 0
	}

	minVal, maxVal = data[0], data[0]
	for _, v := range data[1:] {
		if v < minVal {
			minVal = v
		} else if v > maxVal {
			maxVal = v
		}
	}

	return minVal, maxVal
}

// Range returns the spread max - min of data.
// Returns 0 for an empty slice.
func Range(data []float64) float64 {
	minVal, maxVal := MinMax(data)

	return maxVal - minVal
}

// Mode returns the most frequent value in data. Ties are broken by the first
// value to reach the winning count, so the result is deterministic.
// Returns 0 for an empty slice.
func Mode(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}

	counts := make(map[float64]int, len(data))
	best := data[0]
	bestCount := 0

	for _, v := range data {
		counts[v]++
		if counts[v] > bestCount {
			bestCount = counts[v]
			best = v
		}
	}

	return best
}
