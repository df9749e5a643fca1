package dataset

import (
	"sort"

	"github.com/cwbudde/algo-stats/descriptive"
)

// Dataset wraps a float64 sample buffer with non-mutating statistics
// accessors. Order statistics are taken from an internal sorted copy, so the
// stored order is never disturbed.
type Dataset struct {
	values []float64
}

// New returns an empty Dataset with capacity for n values.
func New(n int) *Dataset {
	if n < 0 {
		n = 0
	}
	return &Dataset{values: make([]float64, 0, n)}
}

// FromSlice wraps an existing slice without copying.
// Mutations to the slice are visible through the Dataset and vice versa.
func FromSlice(s []float64) *Dataset {
	return &Dataset{values: s}
}

// Values returns the underlying slice.
func (d *Dataset) Values() []float64 {
	return d.values
}

// Len returns the current number of values.
func (d *Dataset) Len() int {
	return len(d.values)
}

// Append adds values to the end of the dataset.
func (d *Dataset) Append(values ...float64) {
	d.values = append(d.values, values...)
}

// Reset truncates the dataset to zero length, keeping capacity for reuse.
func (d *Dataset) Reset() {
	d.values = d.values[:0]
}

// Copy returns a deep copy of the dataset.
func (d *Dataset) Copy() *Dataset {
	s := make([]float64, len(d.values))
	copy(s, d.values)
	return &Dataset{values: s}
}

// Sorted returns the values in ascending order as a new slice, leaving the
// dataset untouched.
func (d *Dataset) Sorted() []float64 {
	s := make([]float64, len(d.values))
	copy(s, d.values)
	sort.Float64s(s)
	return s
}

// Mean returns the arithmetic mean of the stored values.
func (d *Dataset) Mean() float64 {
	return descriptive.Mean(d.values)
}

// Variance returns the variance of the stored values.
func (d *Dataset) Variance(opts ...descriptive.Option) float64 {
	return descriptive.Variance(d.values, opts...)
}

// StdDev returns the standard deviation of the stored values.
func (d *Dataset) StdDev(opts ...descriptive.Option) float64 {
	return descriptive.StdDev(d.values, opts...)
}

// Min returns the smallest stored value.
func (d *Dataset) Min() float64 {
	return descriptive.Min(d.values)
}

// Max returns the largest stored value.
func (d *Dataset) Max() float64 {
	return descriptive.Max(d.values)
}

// Median returns the middle value. The sort happens on an internal copy; the
// stored order is preserved.
func (d *Dataset) Median() float64 {
	return descriptive.Median(d.Sorted())
}

// Percentile returns the p-th percentile (0 <= p <= 100), computed on an
// internal sorted copy.
func (d *Dataset) Percentile(p float64) float64 {
	return descriptive.Percentile(d.Sorted(), p)
}

// Describe returns the full summary of the stored values.
func (d *Dataset) Describe(opts ...descriptive.Option) descriptive.Summary {
	return descriptive.Describe(d.values, opts...)
}
