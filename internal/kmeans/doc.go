// Package kmeans implements the Lloyd's-algorithm primitives shared by the
// sequential and parallel engines.
//
// Everything here works on raw coordinate slices so the hot loops stay free
// of interface calls and per-point allocations.
package kmeans
