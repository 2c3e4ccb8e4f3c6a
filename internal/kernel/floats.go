package kernel

import "math"

var (
	dotImpl        = dotSequential
	sumSquaresImpl = sumSquaresSequential
)

// Dot calculates the dot product of two vectors.
//
// It assumes len(a) == len(b); callers validate lengths.
func Dot(a, b []float64) float64 {
	return dotImpl(a, b)
}

// SumSquares calculates the sum of squared elements of v.
func SumSquares(v []float64) float64 {
	return sumSquaresImpl(v)
}

// dotSequential rounds every product before adding it. The explicit float64
// conversion stops the compiler from fusing the two into an FMA, as it does
// on arm64.
func dotSequential(a, b []float64) float64 {
	var ret float64
	for i := range a {
		ret += float64(a[i] * b[i])
	}

	return ret
}

func sumSquaresSequential(v []float64) float64 {
	var ret float64
	for _, x := range v {
		ret += float64(x * x)
	}

	return ret
}

func dotFused(a, b []float64) float64 {
	var ret float64
	for i := range a {
		ret = math.FMA(a[i], b[i], ret)
	}

	return ret
}

func sumSquaresFused(v []float64) float64 {
	var ret float64
	for _, x := range v {
		ret = math.FMA(x, x, ret)
	}

	return ret
}
