// Package testutil provides testing utilities for groundtruth.
//
// This package is intended for use in tests and benchmarks only.
// All generators are seeded so that failures are reproducible.
//
// # Random Vector Generation
//
//	rng := testutil.NewRNG(seed)
//	v := rng.UniformRangeVector(128)           // uniform [-1, 1)
//	g := rng.GaussianVectors(100, 8)           // standard normal
//	x := rng.ShiftedVectors(100, means, stds)  // per-dimension mean and spread
package testutil
