// Package dataset provides a reusable sample container, tolerant free-text
// parsing of numeric input, and a pool for repeated analyses. The statistics
// accessors on Dataset never reorder the stored values, in contrast to the
// in-place order statistics of the descriptive package.
package dataset
