// ABOUTME: Pure vector math for combining group member embeddings
// ABOUTME: No I/O so the reduction is unit-testable without a provider
package models

import (
	"errors"
	"fmt"
)

// MeanVector computes the element-wise arithmetic mean of the given
// vectors. All vectors must share the same dimensionality. A single
// vector averages to itself.
func MeanVector(vectors [][]float64) ([]float64, error) {
	if len(vectors) == 0 {
		return nil, errors.New("no vectors to average")
	}

	dim := len(vectors[0])
	for i, v := range vectors {
		if len(v) != dim {
			return nil, fmt.Errorf("vector dimension mismatch: vector 0 has %d, vector %d has %d", dim, i, len(v))
		}
	}

	mean := make([]float64, dim)
	for _, v := range vectors {
		for i, x := range v {
			mean[i] += x
		}
	}
	n := float64(len(vectors))
	for i := range mean {
		mean[i] /= n
	}
	return mean, nil
}
