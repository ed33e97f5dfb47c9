package kmeansgo

import "github.com/hupe1980/kmeansgo/internal/kmeans"

// SequentialEngine is the reference single-goroutine implementation of
// Lloyd's algorithm.
type SequentialEngine struct {
	core
}

var _ Engine = (*SequentialEngine)(nil)

// NewSequential creates a sequential engine.
func NewSequential(optFns ...Option) *SequentialEngine {
	return newSequential(applyOptions(optFns))
}

func newSequential(opts options) *SequentialEngine {
	return &SequentialEngine{
		core: newCore("sequential", sequentialPhases{}, opts),
	}
}

type sequentialPhases struct{}

func (sequentialPhases) assign(e *core) {
	centroids := centroidsOf(e.clusters)
	for i, vec := range e.vecs {
		j, _ := kmeans.Nearest(vec, centroids)
		e.clusters[j].Points = append(e.clusters[j].Points, e.points[i])
	}
}

func (sequentialPhases) recompute(e *core) bool {
	return e.recomputeRange(0, len(e.clusters))
}
