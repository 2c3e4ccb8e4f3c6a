package conformance

import (
	"github.com/hupe1980/groundtruth/pipeline"
	"github.com/hupe1980/groundtruth/similarity"
)

// Implementation is the operation surface every port exposes.
//
// Validation failures must be reported as errors, not panics. Panics are
// recovered by Verify and reported as failures of the running case.
type Implementation interface {
	DotProduct(a, b []float64) (float64, error)
	L2Norm(v []float64) float64
	CosineSimilarity(a, b []float64) (float64, error)
	Normalize(v []float64) []float64
	// Batches drains a batch iterator over data.
	Batches(data []pipeline.DataPoint, size int) ([][]pipeline.DataPoint, error)
	ComputeMean(vectors [][]float64) ([]float64, error)
	Standardize(data []pipeline.DataPoint) ([]pipeline.DataPoint, error)
}

// Reference returns the canonical Go implementation.
func Reference() Implementation {
	return reference{}
}

type reference struct{}

func (reference) DotProduct(a, b []float64) (float64, error) { return similarity.Dot(a, b) }

func (reference) L2Norm(v []float64) float64 { return similarity.L2Norm(v) }

func (reference) CosineSimilarity(a, b []float64) (float64, error) { return similarity.Cosine(a, b) }

func (reference) Normalize(v []float64) []float64 { return similarity.Normalize(v) }

func (reference) Batches(data []pipeline.DataPoint, size int) ([][]pipeline.DataPoint, error) {
	it, err := pipeline.NewBatchIterator(data, size)
	if err != nil {
		return nil, err
	}

	batches := make([][]pipeline.DataPoint, 0, it.Len())
	for batch, ok := it.Next(); ok; batch, ok = it.Next() {
		batches = append(batches, batch)
	}
	return batches, nil
}

func (reference) ComputeMean(vectors [][]float64) ([]float64, error) {
	return pipeline.ComputeMean(vectors)
}

func (reference) Standardize(data []pipeline.DataPoint) ([]pipeline.DataPoint, error) {
	return pipeline.Standardize(data)
}
