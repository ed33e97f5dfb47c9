package distance

import (
	"gonum.org/v1/gonum/floats"
)

// L2 calculates the Euclidean distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
func L2(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// SquaredL2 calculates the squared Euclidean distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
func SquaredL2(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// SameDimension reports whether a and b have equal length.
func SameDimension(a, b []float64) bool {
	return len(a) == len(b)
}
