package similarity

import "fmt"

// Metric identifies a pairwise vector measure.
type Metric int

const (
	MetricDot Metric = iota
	MetricCosine
	MetricEuclidean
)

func (m Metric) String() string {
	switch m {
	case MetricDot:
		return "Dot"
	case MetricCosine:
		return "Cosine"
	case MetricEuclidean:
		return "Euclidean"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Func is a pairwise vector measure.
type Func func(a, b []float64) (float64, error)

// Provider returns the measure for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricDot:
		return Dot, nil
	case MetricCosine:
		return Cosine, nil
	case MetricEuclidean:
		return Euclidean, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}
