package kmeansgo

import "time"

// Observer receives progress notifications from an engine run.
//
// Both methods are called synchronously on the goroutine executing Run,
// between iterations. The engine adds no delay of its own; pacing (for
// example to animate centroid movement) is up to the observer. Cluster
// slices passed in are copies owned by the observer.
type Observer interface {
	// OnIterationComplete is called once with iteration 0 for the initial
	// centroids (no members yet) and then after every completed iteration.
	OnIterationComplete(snapshot []Cluster, iteration int, sse float64)

	// OnRunComplete is called once when the run ends normally.
	OnRunComplete(final []Cluster, sse float64, elapsed time.Duration, iterations int)
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	IterationComplete func(snapshot []Cluster, iteration int, sse float64)
	RunComplete       func(final []Cluster, sse float64, elapsed time.Duration, iterations int)
}

// OnIterationComplete implements Observer.
func (f ObserverFuncs) OnIterationComplete(snapshot []Cluster, iteration int, sse float64) {
	if f.IterationComplete != nil {
		f.IterationComplete(snapshot, iteration, sse)
	}
}

// OnRunComplete implements Observer.
func (f ObserverFuncs) OnRunComplete(final []Cluster, sse float64, elapsed time.Duration, iterations int) {
	if f.RunComplete != nil {
		f.RunComplete(final, sse, elapsed, iterations)
	}
}

// NoopObserver ignores all notifications.
type NoopObserver struct{}

func (NoopObserver) OnIterationComplete([]Cluster, int, float64)          {}
func (NoopObserver) OnRunComplete([]Cluster, float64, time.Duration, int) {}
