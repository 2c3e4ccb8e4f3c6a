package pipeline

import (
	"math"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/groundtruth"
)

// Scaler holds per-dimension statistics learned by Fit.
type Scaler struct {
	mean     []float64
	variance []float64
	std      []float64
	constant *roaring.Bitmap
	samples  int
}

// Fit learns the mean and standard deviation of every feature dimension of data.
func Fit(data []DataPoint) (*Scaler, error) {
	features := Features(data)

	mean, err := ComputeMean(features)
	if err != nil {
		return nil, err
	}

	variance, err := Variance(features, mean)
	if err != nil {
		return nil, err
	}

	constant := roaring.New()
	std := make([]float64, len(variance))
	for i, v := range variance {
		if v > 0 {
			std[i] = math.Sqrt(v)
			continue
		}
		std[i] = 1
		constant.Add(uint32(i))
	}

	return &Scaler{
		mean:     mean,
		variance: variance,
		std:      std,
		constant: constant,
		samples:  len(data),
	}, nil
}

// Transform returns a standardized copy of data using the fitted statistics.
// Labels are preserved and data is not modified.
func (s *Scaler) Transform(data []DataPoint) ([]DataPoint, error) {
	out := make([]DataPoint, len(data))
	for j, d := range data {
		if len(d.Features) != len(s.mean) {
			return nil, &groundtruth.ErrDimensionMismatch{Expected: len(s.mean), Actual: len(d.Features), Index: j}
		}

		features := make([]float64, len(d.Features))
		for i, x := range d.Features {
			features[i] = (x - s.mean[i]) / s.std[i]
		}
		out[j] = DataPoint{Features: features, Label: d.Label}
	}

	return out, nil
}

// Mean returns a copy of the fitted per-dimension means.
func (s *Scaler) Mean() []float64 { return slices.Clone(s.mean) }

// Variance returns a copy of the fitted per-dimension sample variances.
func (s *Scaler) Variance() []float64 { return slices.Clone(s.variance) }

// Std returns a copy of the per-dimension divisors, with 1 substituted for
// constant dimensions.
func (s *Scaler) Std() []float64 { return slices.Clone(s.std) }

// ConstantDims returns the dimensions whose variance was zero.
func (s *Scaler) ConstantDims() *roaring.Bitmap { return s.constant.Clone() }

// Dimension returns the number of feature dimensions.
func (s *Scaler) Dimension() int { return len(s.mean) }

// Samples returns the number of data points the scaler was fitted on.
func (s *Scaler) Samples() int { return s.samples }

// Standardize transforms every feature dimension of data to zero mean and
// unit sample variance. An empty input yields an empty result.
func Standardize(data []DataPoint) ([]DataPoint, error) {
	if len(data) == 0 {
		return []DataPoint{}, nil
	}

	s, err := Fit(data)
	if err != nil {
		return nil, err
	}

	return s.Transform(data)
}
