package pipeline

import "github.com/hupe1980/groundtruth"

// ComputeMean calculates the element-wise mean of vectors.
// An empty input yields an empty vector.
func ComputeMean(vectors [][]float64) ([]float64, error) {
	if len(vectors) == 0 {
		return []float64{}, nil
	}

	dim, err := dimension(vectors)
	if err != nil {
		return nil, err
	}

	sums := make([]float64, dim)
	for _, vec := range vectors {
		for i, x := range vec {
			sums[i] += x
		}
	}

	n := float64(len(vectors))
	for i := range sums {
		sums[i] /= n
	}

	return sums, nil
}

// Variance calculates the per-dimension sample variance of vectors around mean.
//
// The denominator is n-1, clamped to 1 so single-sample inputs yield zeros.
func Variance(vectors [][]float64, mean []float64) ([]float64, error) {
	if len(vectors) == 0 {
		return make([]float64, len(mean)), nil
	}

	dim, err := dimension(vectors)
	if err != nil {
		return nil, err
	}
	if dim != len(mean) {
		return nil, groundtruth.NewDimensionMismatch(dim, len(mean))
	}

	variance := make([]float64, dim)
	for _, vec := range vectors {
		for i, x := range vec {
			d := x - mean[i]
			variance[i] += float64(d * d)
		}
	}

	denom := float64(max(len(vectors)-1, 1))
	for i := range variance {
		variance[i] /= denom
	}

	return variance, nil
}

// dimension returns the dimension of the first vector and verifies that all
// other vectors share it.
func dimension(vectors [][]float64) (int, error) {
	dim := len(vectors[0])
	for i, vec := range vectors {
		if len(vec) != dim {
			return 0, &groundtruth.ErrDimensionMismatch{Expected: dim, Actual: len(vec), Index: i}
		}
	}
	return dim, nil
}
