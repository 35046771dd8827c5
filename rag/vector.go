package rag

import "math"

// NormalizeVector returns v scaled to unit length, so dot products are
// cosine similarities. A zero vector stays zero.
func NormalizeVector(v []float32) []float32 {
	result := make([]float32, len(v))

	var sumSquares float64
	for _, val := range v {
		sumSquares += float64(val) * float64(val)
	}
	if sumSquares == 0 {
		return result
	}

	magnitude := float32(math.Sqrt(sumSquares))
	for i, val := range v {
		result[i] = val / magnitude
	}
	return result
}
