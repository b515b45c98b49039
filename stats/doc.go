// Package stats computes the descriptive statistics the analysis pipeline is
// built on: per-column means and variances, the sample covariance matrix,
// the correlation matrix, and standardization of observation matrices.
//
// All functions are pure: they never mutate their input matrix and return
// freshly allocated results. Sample statistics use the n−1 denominator
// throughout, so at least two observations are required.
package stats
