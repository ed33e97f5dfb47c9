// Package testutil provides testing utilities for kmeansgo.
//
// This package is intended for use in tests and benchmarks only.
// It produces raw [][]float64 data so that it can be used from any package,
// including the root package's own tests; wrap with kmeansgo.PointsFrom.
//
// # Random Data Generation
//
//	rng := testutil.NewRNG(seed)
//	vecs := rng.UniformVectors(1000, 8)             // uniform [0, 1)
//	vecs = rng.ClusteredVectors(1000, 8, 5, 0.05)   // Gaussian blobs
//	vecs, labels := rng.Blobs(centers, 100, 0.5)    // blobs around given centers
//	vecs, labels = rng.SkewedBlobs(centers, 1000, 0.5, 1.5) // uneven cluster sizes
//
// # Ground Truth
//
//	idx := testutil.BruteForceNearest(vec, centroids)
//	sse := testutil.BruteForceSSE(vecs, centroids)
package testutil
