package kmeansgo

import (
	"github.com/hupe1980/kmeansgo/internal/forkjoin"
	"github.com/hupe1980/kmeansgo/internal/kmeans"
)

// ParallelEngine has the same contract as SequentialEngine but splits the
// assignment phase over the point range and the recompute phase over the
// cluster range with a bounded fork-join scheduler.
//
// Assignment is local-reduce-merge: every leaf task builds a private
// partition (cluster index -> assigned points), partitions are merged pairwise
// at join points, and the merged partition is written into the clusters by
// one serial step after the whole task tree has finished. No task ever
// touches shared clusters during assignment, so no locks are needed.
type ParallelEngine struct {
	core
	pool *forkjoin.Pool
}

var _ Engine = (*ParallelEngine)(nil)

// NewParallel creates a parallel engine.
func NewParallel(optFns ...Option) *ParallelEngine {
	return newParallel(applyOptions(optFns))
}

func newParallel(opts options) *ParallelEngine {
	pool := forkjoin.NewPool(opts.parallelism)

	return &ParallelEngine{
		core: newCore("parallel", parallelPhases{pool: pool}, opts),
		pool: pool,
	}
}

// Parallelism returns the worker bound of the engine.
func (e *ParallelEngine) Parallelism() int { return e.pool.Parallelism() }

// partition maps a cluster index to the points assigned to it.
type partition [][]Point

// mergePartitions appends right's lists to left's, index by index. left is
// owned by the caller and reused for the result. Concatenation keeps points
// in input order, so the merged result does not depend on split positions.
func mergePartitions(left, right partition) partition {
	for j := range left {
		if len(right[j]) > 0 {
			left[j] = append(left[j], right[j]...)
		}
	}
	return left
}

type parallelPhases struct {
	pool *forkjoin.Pool
}

func (p parallelPhases) assign(e *core) {
	centroids := centroidsOf(e.clusters)
	k := len(e.clusters)

	leaf := func(lo, hi int) partition {
		local := make(partition, k)
		for i := lo; i < hi; i++ {
			j, _ := kmeans.Nearest(e.vecs[i], centroids)
			local[j] = append(local[j], e.points[i])
		}
		return local
	}

	merged := forkjoin.Reduce(p.pool, 0, len(e.vecs), e.opts.assignCutoff, leaf, mergePartitions)

	// Single serial apply into the shared clusters.
	for j := range e.clusters {
		e.clusters[j].Points = merged[j]
	}
}

func (p parallelPhases) recompute(e *core) bool {
	and := func(a, b bool) bool { return a && b }
	return forkjoin.Reduce(p.pool, 0, len(e.clusters), e.opts.recomputeCutoff, e.recomputeRange, and)
}
