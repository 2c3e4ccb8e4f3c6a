// Package pipeline provides reference dataset preprocessing helpers.
//
// # Operations
//
//   - BatchIterator / Batches: contiguous, non-copying batches of a dataset
//   - ComputeMean: element-wise mean of equal-dimension vectors
//   - Standardize: per-dimension z-score using the sample variance
//
// Inputs are never mutated. Standardize returns fresh DataPoints.
//
// # Dimensions
//
// ComputeMean, Variance, Fit and Standardize require every vector to have the
// dimension of the first one and return *groundtruth.ErrDimensionMismatch
// otherwise.
//
// # Zero Variance
//
// The sample variance divides by max(n-1, 1). A dimension whose variance is
// not positive keeps a standard deviation of 1, so its values are centered
// but not rescaled. Scaler.ConstantDims reports those dimensions.
package pipeline
