package testutil

import (
	"math"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// UniformVector generates a vector with values in range [0, 1).
func (r *RNG) UniformVector(dimensions int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	vec := make([]float64, dimensions)
	for i := range vec {
		vec[i] = r.rand.Float64()
	}
	return vec
}

// UniformRangeVector generates a vector with values in range [-1, 1).
func (r *RNG) UniformRangeVector(dimensions int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	vec := make([]float64, dimensions)
	for i := range vec {
		vec[i] = r.rand.Float64()*2 - 1
	}
	return vec
}

// GaussianVector generates a vector drawn from a standard normal distribution.
func (r *RNG) GaussianVector(dimensions int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	vec := make([]float64, dimensions)
	for i := range vec {
		vec[i] = r.rand.NormFloat64()
	}
	return vec
}

// UniformVectors generates random vectors with values in range [0, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformVectors(num int, dimensions int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dimensions)
	vectors := make([][]float64, num)

	for i := range num {
		vec := data[i*dimensions : (i+1)*dimensions : (i+1)*dimensions]
		for j := range vec {
			vec[j] = r.rand.Float64()
		}
		vectors[i] = vec
	}

	return vectors
}

// GaussianVectors generates random vectors from a standard normal distribution.
func (r *RNG) GaussianVectors(num int, dimensions int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dimensions)
	vectors := make([][]float64, num)

	for i := range num {
		vec := data[i*dimensions : (i+1)*dimensions : (i+1)*dimensions]
		for j := range vec {
			vec[j] = r.rand.NormFloat64()
		}
		vectors[i] = vec
	}

	return vectors
}

// ShiftedVectors generates Gaussian vectors whose dimension j has mean means[j]
// and standard deviation stds[j]. len(means) must equal len(stds).
// A zero std yields a constant dimension.
func (r *RNG) ShiftedVectors(num int, means, stds []float64) [][]float64 {
	dim := len(means)
	vectors := r.GaussianVectors(num, dim)
	for _, vec := range vectors {
		for j := range vec {
			vec[j] = means[j] + vec[j]*stds[j]
		}
	}
	return vectors
}

// UnitVectors generates L2-normalized random vectors (on the hypersphere).
// Uses Gaussian sampling for a uniform distribution on the sphere.
func (r *RNG) UnitVectors(num int, dimensions int) [][]float64 {
	vectors := r.GaussianVectors(num, dimensions)
	for _, vec := range vectors {
		var norm float64
		for _, v := range vec {
			norm += v * v
		}
		if norm == 0 {
			continue
		}
		norm = math.Sqrt(norm)
		for j := range vec {
			vec[j] /= norm
		}
	}
	return vectors
}

// Labels generates num class labels in [0, classes).
func (r *RNG) Labels(num, classes int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	labels := make([]int, num)
	for i := range labels {
		labels[i] = r.rand.Intn(classes)
	}
	return labels
}
