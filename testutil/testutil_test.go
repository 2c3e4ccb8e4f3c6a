package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniformVectors(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.UniformVectors(8, 32)

	assert.Equal(t, 8, len(v))
	assert.Equal(t, 32, len(v[0]))
	assert.Less(t, v[0][0], 1.0)
	assert.GreaterOrEqual(t, v[1][0], 0.0)
}

func TestUniformRangeVector(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.UniformRangeVector(64)

	assert.Equal(t, 64, len(v))
	for _, x := range v {
		assert.Less(t, x, 1.0)
		assert.GreaterOrEqual(t, x, -1.0)
	}
}

func TestUnitVectors(t *testing.T) {
	rng := NewRNG(4711)

	for _, vec := range rng.UnitVectors(8, 32) {
		var sum float64
		for _, val := range vec {
			sum += val * val
		}
		assert.InDelta(t, 1.0, sum, 1e-12)
	}
}

func TestShiftedVectors(t *testing.T) {
	rng := NewRNG(42)

	v := rng.ShiftedVectors(2000, []float64{10, -3, 7}, []float64{2, 0.5, 0})

	var sum [3]float64
	for _, vec := range v {
		for j, x := range vec {
			sum[j] += x
		}
		assert.Equal(t, 7.0, vec[2], "zero std must give a constant dimension")
	}
	assert.InDelta(t, 10.0, sum[0]/2000, 0.2)
	assert.InDelta(t, -3.0, sum[1]/2000, 0.1)
}

func TestRowsDoNotAlias(t *testing.T) {
	rng := NewRNG(1)
	v := rng.GaussianVectors(2, 3)

	v[0] = append(v[0], math.Pi)
	assert.NotEqual(t, math.Pi, v[1][0])
}

func TestScalars(t *testing.T) {
	rng := NewRNG(99)

	for range 100 {
		n := rng.Intn(10)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 10)

		f := rng.Float64()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)
	}

	v := rng.UniformVector(16)
	assert.Len(t, v, 16)
	for _, x := range v {
		assert.GreaterOrEqual(t, x, 0.0)
		assert.Less(t, x, 1.0)
	}

	rng.Reset()
	first := rng.Intn(10)
	rng.Reset()
	assert.Equal(t, first, rng.Intn(10))
}

func TestLabels(t *testing.T) {
	rng := NewRNG(7)
	for _, l := range rng.Labels(100, 3) {
		assert.GreaterOrEqual(t, l, 0)
		assert.Less(t, l, 3)
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	v1 := rng.UniformVectors(1, 10)

	rng.Reset()
	v2 := rng.UniformVectors(1, 10)

	assert.Equal(t, v1, v2)
	assert.Equal(t, int64(4711), rng.Seed())
}
