// Package groundtruth provides reference numeric utilities used as the canonical
// implementation when validating ports in other languages.
//
// The module is split into two independent packages:
//
//   - similarity: dot product, L2 norm, cosine similarity and normalization
//   - pipeline: batching, element-wise mean and z-score standardization
//
// The conformance package runs the canonical scenarios against any port that is
// exposed through its Implementation interface.
//
// # Quick Start
//
//	dot, err := similarity.Dot([]float64{1, 2, 3}, []float64{4, 5, 6}) // 32
//	sim, err := similarity.Cosine(a, b)
//	unit := similarity.Normalize(v)
//
//	it, err := pipeline.NewBatchIterator(data, 32)
//	for batch, ok := it.Next(); ok; batch, ok = it.Next() {
//		// ...
//	}
//
//	scaled, err := pipeline.Standardize(data)
//
// # Degenerate Inputs
//
// Numeric operations are total wherever a reasonable fallback exists:
// zero vectors have norm 0, cosine similarity against a zero vector is 0,
// normalizing a zero vector yields a zero vector, and a feature with zero
// variance is centered but not rescaled. The only failures are validation
// errors, all of which match ErrValidation via errors.Is.
package groundtruth
