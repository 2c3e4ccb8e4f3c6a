package similarity

import (
	"math"
	"slices"

	"github.com/hupe1980/groundtruth"
	"github.com/hupe1980/groundtruth/internal/kernel"
)

// Dot calculates the dot product of two vectors.
func Dot(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, groundtruth.NewDimensionMismatch(len(a), len(b))
	}

	return kernel.Dot(a, b), nil
}

// L2Norm calculates the Euclidean length of v.
// It returns 0 for empty and zero vectors.
func L2Norm(v []float64) float64 {
	return math.Sqrt(kernel.SumSquares(v))
}

// Cosine calculates the cosine similarity between two vectors.
//
// Returns 0 if either vector has zero norm.
func Cosine(a, b []float64) (float64, error) {
	dot, err := Dot(a, b)
	if err != nil {
		return 0, err
	}

	normA := L2Norm(a)
	normB := L2Norm(b)
	if normA == 0 || normB == 0 {
		return 0, nil
	}

	return dot / (normA * normB), nil
}

// Normalize returns a unit-length copy of v.
// A zero vector yields a zero vector of the same length.
func Normalize(v []float64) []float64 {
	dst := slices.Clone(v)
	if dst == nil {
		dst = []float64{}
	}
	if !NormalizeInPlace(dst) {
		clear(dst)
	}
	return dst
}

// NormalizeInPlace scales v to unit length in place.
// Returns false and leaves v untouched if v has zero norm.
func NormalizeInPlace(v []float64) bool {
	norm := L2Norm(v)
	if norm == 0 {
		return false
	}
	// Must stay x / norm: scaling by 1/norm rounds differently.
	for i := range v {
		v[i] /= norm
	}
	return true
}

// SquaredL2 calculates the squared Euclidean distance between two vectors.
func SquaredL2(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, groundtruth.NewDimensionMismatch(len(a), len(b))
	}

	var distance float64
	for i := range a {
		d := a[i] - b[i]
		distance += float64(d * d)
	}

	return distance, nil
}

// Euclidean calculates the Euclidean distance between two vectors.
func Euclidean(a, b []float64) (float64, error) {
	d, err := SquaredL2(a, b)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(d), nil
}

// Kernel returns the name of the accumulation kernel in use.
func Kernel() string {
	return kernel.Active().String()
}
