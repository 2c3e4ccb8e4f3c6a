// Package similarity provides reference vector similarity measures over float64 vectors.
//
// # Operations
//
//   - Dot: sum of element-wise products
//   - L2Norm: Euclidean length
//   - Cosine: dot product divided by the product of norms
//   - Normalize: scale to unit length
//
// Pairwise operations return *groundtruth.ErrDimensionMismatch when the inputs
// have different lengths. They never truncate.
//
// # Degenerate Vectors
//
// Cosine returns 0 when either input has zero norm, and Normalize returns a
// zero vector of the same length for a zero input. Neither is the
// mathematically defined value; both keep the functions total.
//
// # Usage
//
//	dot, _ := similarity.Dot([]float64{1, 2, 3}, []float64{4, 5, 6}) // 32
//	norm := similarity.L2Norm([]float64{3, 4})                      // 5
//	unit := similarity.Normalize([]float64{3, 4})                   // [0.6 0.8]
package similarity
