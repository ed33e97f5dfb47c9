// Package distance provides Euclidean distance calculations over raw
// float64 coordinate slices.
//
// The functions here assume equal-length inputs; dimension checking is the
// caller's job (the root package validates dimensions eagerly and reports
// mismatches as *kmeansgo.ErrDimensionMismatch).
//
// # Usage
//
//	d := distance.L2(a, b)
//	d2 := distance.SquaredL2(a, b)
package distance
