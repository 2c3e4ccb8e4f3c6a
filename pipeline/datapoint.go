package pipeline

import "slices"

// DataPoint is a labeled feature vector.
type DataPoint struct {
	Features []float64
	Label    int
}

// Clone returns a deep copy of p.
func (p DataPoint) Clone() DataPoint {
	return DataPoint{Features: slices.Clone(p.Features), Label: p.Label}
}

// Features returns the feature vectors of data without copying them.
func Features(data []DataPoint) [][]float64 {
	features := make([][]float64, len(data))
	for i, d := range data {
		features[i] = d.Features
	}
	return features
}
