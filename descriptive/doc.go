// Package descriptive provides descriptive statistics over float64 sample
// buffers.
//
// All functions operate on caller-owned slices and are total: degenerate
// inputs (an empty buffer, or a single element where a dispersion estimate
// needs at least two) return 0 rather than NaN or an error.
//
// # Mutation contract
//
// [Median] and [Percentile] sort the caller's buffer ascending in place as an
// observable side effect; the buffer is not restored afterward. Callers that
// need the original order must pass a copy, or use [Describe], which never
// reorders its input. All other functions treat the buffer as read-only.
//
// # Estimator convention
//
// Dispersion statistics default to the sample estimator (divisor n-1,
// Bessel's correction). Select the population divisor n explicitly:
//
//	sample := descriptive.StdDev(x)
//	population := descriptive.StdDev(x,
//		descriptive.WithEstimator(descriptive.EstimatorPopulation))
//
// Accumulation is plain left-to-right summation throughout; no compensated
// or reordered summation is used, so results match the textbook two-pass
// formulas term for term.
package descriptive
