package kernel

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDot(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"Positive values (size 3)", []float64{1, 2, 3}, []float64{4, 5, 6}, 32},
		{"Negative values (size 3)", []float64{-1, -2, -3}, []float64{-4, -5, -6}, 32},
		{"Mixed values (size 3)", []float64{1, -2, 3}, []float64{-4, 5, -6}, -32},
		{"Zero values (size 3)", []float64{0, 0, 0}, []float64{0, 0, 0}, 0},
		{"Empty", []float64{}, []float64{}, 0},
		{"Positive values (size 10)", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 385},
	}

	kernels := map[string]func(a, b []float64) float64{
		"Sequential": dotSequential,
		"Fused":      dotFused,
		"Active":     Dot,
	}

	for kname, fn := range kernels {
		for _, tc := range tests {
			t.Run(kname+"/"+tc.name, func(t *testing.T) {
				assert.Equal(t, tc.expected, fn(tc.a, tc.b))
			})
		}
	}
}

func TestSumSquares(t *testing.T) {
	tests := []struct {
		name     string
		v        []float64
		expected float64
	}{
		{"Pythagorean", []float64{3, 4}, 25},
		{"Negative", []float64{-1, -2, -2}, 9},
		{"Zero", []float64{0, 0}, 0},
		{"Empty", nil, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, sumSquaresSequential(tc.v))
			assert.Equal(t, tc.expected, sumSquaresFused(tc.v))
			assert.Equal(t, tc.expected, SumSquares(tc.v))
		})
	}
}

func TestSequentialMatchesNaiveLoop(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	a := randomFloats(rng, 257)
	b := randomFloats(rng, 257)

	var want float64
	for i := range a {
		want += float64(a[i] * b[i])
	}

	assert.Equal(t, want, dotSequential(a, b))
	assert.InDelta(t, want, dotFused(a, b), 1e-9)
	assert.Equal(t, dotSequential(a, a), sumSquaresSequential(a))
}

// TestSequentialRoundsProducts uses inputs whose result depends on whether
// each product is rounded before the add. Expected values are those of an
// unfused loop (Python, Rust) and of math.FMA respectively.
func TestSequentialRoundsProducts(t *testing.T) {
	x := 1 + math.Ldexp(1, -30)

	t.Run("Dot", func(t *testing.T) {
		a := []float64{1, x}
		b := []float64{-1, x}

		assert.Equal(t, 1.862645149230957e-09, dotSequential(a, b))
		assert.Equal(t, 1.8626451500983188e-09, dotFused(a, b))
	})

	t.Run("SumSquares", func(t *testing.T) {
		v := []float64{1.1680807910822022, 1.5823100485111739}

		assert.Equal(t, 3.8681178241146563, sumSquaresSequential(v))
		assert.Equal(t, 3.8681178241146568, sumSquaresFused(v))
	})

	t.Run("Active", func(t *testing.T) {
		want := dotSequential([]float64{1, x}, []float64{-1, x})
		if Active() == Fused {
			want = dotFused([]float64{1, x}, []float64{-1, x})
		}
		assert.Equal(t, want, Dot([]float64{1, x}, []float64{-1, x}))
	})
}

func BenchmarkDot(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	va := randomFloats(rng, 4096)
	vb := randomFloats(rng, 4096)

	b.ResetTimer()
	for b.Loop() {
		_ = Dot(va, vb)
	}
}

func randomFloats(rng *rand.Rand, n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = rng.Float64()*2 - 1
	}
	return v
}
