// Package kmeansgo partitions n-dimensional points into k clusters with
// Lloyd's algorithm.
//
// # Engines
//
// SequentialEngine is the reference implementation. ParallelEngine has the
// same contract and splits assignment and centroid recomputation over a
// bounded fork-join scheduler using local-reduce-merge: each task assigns its
// points into a private partition, partitions are merged at join points, and
// the result is applied to the clusters in a single serial step.
//
//	cfg, _ := kmeansgo.NewConfig(3, 100, 1e-6)
//	eng := kmeansgo.NewParallel(kmeansgo.WithSeed(42))
//	if err := eng.Initialize(points, cfg); err != nil {
//	    return err
//	}
//	res, err := eng.Run(ctx)
//
// # Seeding
//
// Initial centroids are k distinct input points drawn uniformly at random,
// or chosen with KMeansPlusPlus, or supplied through SetInitialCentroids.
// Clusters that end an assignment phase empty are repaired by an
// EmptyClusterPolicy (ReseedFromLargest by default).
//
// # Multi-start
//
// MultiStart runs several independently seeded restarts one after another
// and returns the one with the lowest SSE:
//
//	ms := kmeansgo.NewMultiStart(kmeansgo.WithSeed(7))
//	best, err := ms.Run(ctx, cfg, points, kmeansgo.MultiStartParams{
//	    Restarts:       10,
//	    KMeansPlusPlus: true,
//	    Parallel:       true,
//	})
//
// # Progress
//
// An Observer receives a snapshot after each iteration and once at the end of
// a run. Notifications are synchronous and the engine never delays on its
// own; package observer provides pacing, recording and streaming adapters.
package kmeansgo
