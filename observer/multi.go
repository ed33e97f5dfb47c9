package observer

import (
	"time"

	"github.com/hupe1980/kmeansgo"
)

// Multi forwards every notification to each observer in order. All
// observers receive the same snapshot slices.
type Multi []kmeansgo.Observer

var _ kmeansgo.Observer = Multi(nil)

// OnIterationComplete implements kmeansgo.Observer.
func (m Multi) OnIterationComplete(snapshot []kmeansgo.Cluster, iteration int, sse float64) {
	for _, o := range m {
		o.OnIterationComplete(snapshot, iteration, sse)
	}
}

// OnRunComplete implements kmeansgo.Observer.
func (m Multi) OnRunComplete(final []kmeansgo.Cluster, sse float64, elapsed time.Duration, iterations int) {
	for _, o := range m {
		o.OnRunComplete(final, sse, elapsed, iterations)
	}
}
