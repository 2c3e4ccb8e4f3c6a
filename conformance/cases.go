package conformance

import (
	"errors"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/hupe1980/groundtruth/pipeline"
)

var (
	// ErrMismatch is returned by a case whose result differs from the reference.
	ErrMismatch = errors.New("result mismatch")

	// ErrPanic is returned by a case whose implementation panicked.
	ErrPanic = errors.New("implementation panicked")
)

// Op names the operation a case exercises.
type Op string

const (
	OpDotProduct       Op = "dot_product"
	OpL2Norm           Op = "l2_norm"
	OpCosineSimilarity Op = "cosine_similarity"
	OpNormalize        Op = "normalize"
	OpBatchIterator    Op = "batch_iterator"
	OpComputeMean      Op = "compute_mean"
	OpStandardize      Op = "standardize"
)

// Case is a single canonical scenario.
type Case struct {
	Name string
	Op   Op
	// Check returns nil if impl behaves like the reference within tol.
	Check func(impl Implementation, tol float64) error
}

// Cases returns the canonical scenarios in a stable order.
//
// Validation cases accept any non-nil error, since ports report failures in
// their own error types.
func Cases() []Case {
	return []Case{
		{Name: "dot_product/literal", Op: OpDotProduct, Check: func(impl Implementation, _ float64) error {
			got, err := impl.DotProduct([]float64{1, 2, 3}, []float64{4, 5, 6})
			if err != nil {
				return err
			}
			return expectExact("dot([1 2 3], [4 5 6])", 32, got)
		}},
		{Name: "dot_product/commutative", Op: OpDotProduct, Check: func(impl Implementation, _ float64) error {
			a := []float64{0.5, -1.25, 3, 7.5, 1e-3}
			b := []float64{2, 0.1, -4, 1e-3, 9}
			ab, err := impl.DotProduct(a, b)
			if err != nil {
				return err
			}
			ba, err := impl.DotProduct(b, a)
			if err != nil {
				return err
			}
			return expectExact("dot(a, b) vs dot(b, a)", ab, ba)
		}},
		{Name: "dot_product/empty", Op: OpDotProduct, Check: func(impl Implementation, _ float64) error {
			got, err := impl.DotProduct([]float64{}, []float64{})
			if err != nil {
				return err
			}
			return expectExact("dot([], [])", 0, got)
		}},
		{Name: "dot_product/length_mismatch", Op: OpDotProduct, Check: func(impl Implementation, _ float64) error {
			_, err := impl.DotProduct([]float64{1, 2, 3}, []float64{1, 2})
			return expectError("dot([1 2 3], [1 2])", err)
		}},
		{Name: "l2_norm/literal", Op: OpL2Norm, Check: func(impl Implementation, _ float64) error {
			return expectExact("l2([3 4])", 5, impl.L2Norm([]float64{3, 4}))
		}},
		{Name: "l2_norm/zero", Op: OpL2Norm, Check: func(impl Implementation, _ float64) error {
			return expectExact("l2([0 0 0])", 0, impl.L2Norm([]float64{0, 0, 0}))
		}},
		{Name: "l2_norm/empty", Op: OpL2Norm, Check: func(impl Implementation, _ float64) error {
			return expectExact("l2([])", 0, impl.L2Norm([]float64{}))
		}},
		{Name: "cosine_similarity/identical", Op: OpCosineSimilarity, Check: func(impl Implementation, tol float64) error {
			v := []float64{1, 2, 3}
			got, err := impl.CosineSimilarity(v, v)
			if err != nil {
				return err
			}
			return expectApprox("cos(v, v)", 1, got, tol)
		}},
		{Name: "cosine_similarity/orthogonal", Op: OpCosineSimilarity, Check: func(impl Implementation, tol float64) error {
			got, err := impl.CosineSimilarity([]float64{1, 0}, []float64{0, 1})
			if err != nil {
				return err
			}
			return expectApprox("cos([1 0], [0 1])", 0, got, tol)
		}},
		{Name: "cosine_similarity/zero_vector", Op: OpCosineSimilarity, Check: func(impl Implementation, _ float64) error {
			got, err := impl.CosineSimilarity([]float64{0, 0}, []float64{1, 2})
			if err != nil {
				return err
			}
			if err := expectExact("cos([0 0], [1 2])", 0, got); err != nil {
				return err
			}
			got, err = impl.CosineSimilarity([]float64{1, 2}, []float64{0, 0})
			if err != nil {
				return err
			}
			return expectExact("cos([1 2], [0 0])", 0, got)
		}},
		{Name: "cosine_similarity/length_mismatch", Op: OpCosineSimilarity, Check: func(impl Implementation, _ float64) error {
			_, err := impl.CosineSimilarity([]float64{1, 0}, []float64{1, 0, 0})
			return expectError("cos([1 0], [1 0 0])", err)
		}},
		{Name: "normalize/unit_length", Op: OpNormalize, Check: func(impl Implementation, tol float64) error {
			got := impl.Normalize([]float64{3, 4})
			if err := expectVector("normalize([3 4])", []float64{0.6, 0.8}, got, tol); err != nil {
				return err
			}
			return expectApprox("l2(normalize([3 4]))", 1, impl.L2Norm(got), tol)
		}},
		{Name: "normalize/zero_vector", Op: OpNormalize, Check: func(impl Implementation, _ float64) error {
			return expectVector("normalize([0 0])", []float64{0, 0}, impl.Normalize([]float64{0, 0}), 0)
		}},
		{Name: "normalize/empty", Op: OpNormalize, Check: func(impl Implementation, _ float64) error {
			return expectVector("normalize([])", []float64{}, impl.Normalize([]float64{}), 0)
		}},
		{Name: "normalize/input_unchanged", Op: OpNormalize, Check: func(impl Implementation, _ float64) error {
			v := []float64{3, 4}
			impl.Normalize(v)
			return expectVector("input after normalize", []float64{3, 4}, v, 0)
		}},
		{Name: "batch_iterator/remainder", Op: OpBatchIterator, Check: func(impl Implementation, _ float64) error {
			return expectBatches(impl, 10, 3, []int{3, 3, 3, 1})
		}},
		{Name: "batch_iterator/evenly_divisible", Op: OpBatchIterator, Check: func(impl Implementation, _ float64) error {
			return expectBatches(impl, 9, 3, []int{3, 3, 3})
		}},
		{Name: "batch_iterator/empty", Op: OpBatchIterator, Check: func(impl Implementation, _ float64) error {
			return expectBatches(impl, 0, 3, []int{})
		}},
		{Name: "batch_iterator/invalid_size", Op: OpBatchIterator, Check: func(impl Implementation, _ float64) error {
			_, err := impl.Batches(labeled(3), 0)
			if err := expectError("batches(size=0)", err); err != nil {
				return err
			}
			_, err = impl.Batches(labeled(3), -1)
			return expectError("batches(size=-1)", err)
		}},
		{Name: "compute_mean/literal", Op: OpComputeMean, Check: func(impl Implementation, tol float64) error {
			got, err := impl.ComputeMean([][]float64{{1, 2}, {3, 4}, {5, 6}})
			if err != nil {
				return err
			}
			return expectVector("mean([[1 2] [3 4] [5 6]])", []float64{3, 4}, got, tol)
		}},
		{Name: "compute_mean/empty", Op: OpComputeMean, Check: func(impl Implementation, _ float64) error {
			got, err := impl.ComputeMean([][]float64{})
			if err != nil {
				return err
			}
			return expectVector("mean([])", []float64{}, got, 0)
		}},
		{Name: "compute_mean/dimension_mismatch", Op: OpComputeMean, Check: func(impl Implementation, _ float64) error {
			_, err := impl.ComputeMean([][]float64{{1, 2}, {3}})
			return expectError("mean([[1 2] [3]])", err)
		}},
		{Name: "standardize/zero_mean", Op: OpStandardize, Check: func(impl Implementation, tol float64) error {
			got, err := impl.Standardize(sampleDataset())
			if err != nil {
				return err
			}
			if err := expectLen("standardize(dataset)", 3, len(got)); err != nil {
				return err
			}
			for dim := range 2 {
				var sum float64
				for _, d := range got {
					sum += d.Features[dim]
				}
				if err := expectApprox(fmt.Sprintf("mean of dimension %d", dim), 0, sum/float64(len(got)), tol); err != nil {
					return err
				}
			}
			return nil
		}},
		{Name: "standardize/sample_variance", Op: OpStandardize, Check: func(impl Implementation, tol float64) error {
			got, err := impl.Standardize(sampleDataset())
			if err != nil {
				return err
			}
			want := [][]float64{{-1, -1}, {0, 0}, {1, 1}}
			if err := expectLen("standardize(dataset)", len(want), len(got)); err != nil {
				return err
			}
			for i, d := range got {
				if err := expectVector(fmt.Sprintf("features[%d]", i), want[i], d.Features, tol); err != nil {
					return err
				}
			}
			return nil
		}},
		{Name: "standardize/labels_preserved", Op: OpStandardize, Check: func(impl Implementation, _ float64) error {
			data := sampleDataset()
			got, err := impl.Standardize(data)
			if err != nil {
				return err
			}
			if err := expectLen("standardize(dataset)", len(data), len(got)); err != nil {
				return err
			}
			for i := range data {
				if got[i].Label != data[i].Label {
					return fmt.Errorf("%w: label[%d]: want %d, got %d", ErrMismatch, i, data[i].Label, got[i].Label)
				}
			}
			return nil
		}},
		{Name: "standardize/constant_dimension", Op: OpStandardize, Check: func(impl Implementation, tol float64) error {
			got, err := impl.Standardize([]pipeline.DataPoint{
				{Features: []float64{5, 1}},
				{Features: []float64{5, 3}},
				{Features: []float64{5, 5}},
			})
			if err != nil {
				return err
			}
			want := [][]float64{{0, -1}, {0, 0}, {0, 1}}
			if err := expectLen("standardize(constant)", len(want), len(got)); err != nil {
				return err
			}
			for i, d := range got {
				if err := expectVector(fmt.Sprintf("features[%d]", i), want[i], d.Features, tol); err != nil {
					return err
				}
			}
			return nil
		}},
		{Name: "standardize/single_point", Op: OpStandardize, Check: func(impl Implementation, _ float64) error {
			got, err := impl.Standardize([]pipeline.DataPoint{{Features: []float64{4, -2}, Label: 3}})
			if err != nil {
				return err
			}
			if err := expectLen("standardize(single)", 1, len(got)); err != nil {
				return err
			}
			if got[0].Label != 3 {
				return fmt.Errorf("%w: label: want 3, got %d", ErrMismatch, got[0].Label)
			}
			return expectVector("features[0]", []float64{0, 0}, got[0].Features, 0)
		}},
		{Name: "standardize/empty", Op: OpStandardize, Check: func(impl Implementation, _ float64) error {
			got, err := impl.Standardize([]pipeline.DataPoint{})
			if err != nil {
				return err
			}
			return expectLen("standardize([])", 0, len(got))
		}},
		{Name: "standardize/input_unchanged", Op: OpStandardize, Check: func(impl Implementation, _ float64) error {
			data := sampleDataset()
			if _, err := impl.Standardize(data); err != nil {
				return err
			}
			for i, d := range sampleDataset() {
				if err := expectVector(fmt.Sprintf("input features[%d]", i), d.Features, data[i].Features, 0); err != nil {
					return err
				}
			}
			return nil
		}},
	}
}

func sampleDataset() []pipeline.DataPoint {
	return []pipeline.DataPoint{
		{Features: []float64{1, 10}, Label: 0},
		{Features: []float64{3, 20}, Label: 1},
		{Features: []float64{5, 30}, Label: 0},
	}
}

func labeled(n int) []pipeline.DataPoint {
	data := make([]pipeline.DataPoint, n)
	for i := range data {
		data[i] = pipeline.DataPoint{Features: []float64{float64(i)}, Label: i}
	}
	return data
}

func expectBatches(impl Implementation, n, size int, sizes []int) error {
	batches, err := impl.Batches(labeled(n), size)
	if err != nil {
		return err
	}

	got := make([]int, len(batches))
	var labels []int
	for i, b := range batches {
		got[i] = len(b)
		for _, d := range b {
			labels = append(labels, d.Label)
		}
	}
	if !slices.Equal(sizes, got) {
		return fmt.Errorf("%w: batch sizes of %d items by %d: want %v, got %v", ErrMismatch, n, size, sizes, got)
	}
	for i, l := range labels {
		if l != i {
			return fmt.Errorf("%w: batch order: item %d has label %d", ErrMismatch, i, l)
		}
	}
	return nil
}

func expectExact(what string, want, got float64) error {
	if want != got {
		return fmt.Errorf("%w: %s: want %v, got %v", ErrMismatch, what, want, got)
	}
	return nil
}

func expectApprox(what string, want, got, tol float64) error {
	if !scalar.EqualWithinAbs(want, got, tol) {
		return fmt.Errorf("%w: %s: want %v ± %g, got %v", ErrMismatch, what, want, tol, got)
	}
	return nil
}

func expectVector(what string, want, got []float64, tol float64) error {
	if len(want) != len(got) {
		return fmt.Errorf("%w: %s: want length %d, got %d", ErrMismatch, what, len(want), len(got))
	}
	if !floats.EqualApprox(want, got, tol) {
		return fmt.Errorf("%w: %s: want %v ± %g, got %v", ErrMismatch, what, want, tol, got)
	}
	return nil
}

func expectLen(what string, want, got int) error {
	if want != got {
		return fmt.Errorf("%w: %s: want %d items, got %d", ErrMismatch, what, want, got)
	}
	return nil
}

func expectError(what string, err error) error {
	if err == nil {
		return fmt.Errorf("%w: %s: want validation error, got nil", ErrMismatch, what)
	}
	return nil
}
