package kmeansgo

import "slices"

// Builder is an immutable fluent builder for engines and multi-start
// orchestrators. Each method returns a new builder with the updated
// configuration, so a partially configured builder can be shared and
// extended safely.
//
// Example:
//
//	eng := kmeansgo.NewBuilder().
//	    Parallel().
//	    Seed(42).
//	    AssignCutoff(5000).
//	    Build()
type Builder struct {
	parallel bool
	opts     []Option
}

// NewBuilder returns a builder for a sequential engine with default options.
func NewBuilder() Builder {
	return Builder{}
}

func (b Builder) with(opt Option) Builder {
	b.opts = append(slices.Clone(b.opts), opt)
	return b
}

// Sequential selects the SequentialEngine (default).
func (b Builder) Sequential() Builder {
	b.parallel = false
	return b
}

// Parallel selects the ParallelEngine.
func (b Builder) Parallel() Builder {
	b.parallel = true
	return b
}

// Seed sets the seed for deterministic runs.
// If not set, a random seed (time-based) is used.
func (b Builder) Seed(seed int64) Builder {
	return b.with(WithSeed(seed))
}

// Logger sets the structured logger.
func (b Builder) Logger(l *Logger) Builder {
	return b.with(WithLogger(l))
}

// Metrics sets the metrics collector for monitoring.
func (b Builder) Metrics(mc MetricsCollector) Builder {
	return b.with(WithMetricsCollector(mc))
}

// Observer sets the progress observer.
func (b Builder) Observer(obs Observer) Builder {
	return b.with(WithObserver(obs))
}

// Parallelism bounds the worker count of a parallel engine.
// Default: runtime.GOMAXPROCS(0).
func (b Builder) Parallelism(n int) Builder {
	return b.with(WithParallelism(n))
}

// AssignCutoff sets the parallel assignment leaf size.
// Default: 1000.
func (b Builder) AssignCutoff(n int) Builder {
	return b.with(WithAssignCutoff(n))
}

// RecomputeCutoff sets the parallel recompute leaf size.
// Default: 2.
func (b Builder) RecomputeCutoff(n int) Builder {
	return b.with(WithRecomputeCutoff(n))
}

// KMeansPlusPlus makes Initialize seed with k-means++.
func (b Builder) KMeansPlusPlus() Builder {
	return b.with(WithInitializer(PlusPlusInitializer{}))
}

// Initializer sets a custom initializer.
func (b Builder) Initializer(i Initializer) Builder {
	return b.with(WithInitializer(i))
}

// EmptyClusterPolicy sets a custom empty-cluster policy.
func (b Builder) EmptyClusterPolicy(p EmptyClusterPolicy) Builder {
	return b.with(WithEmptyClusterPolicy(p))
}

// StrictCentroidCount rejects initial centroid counts that differ from k.
func (b Builder) StrictCentroidCount() Builder {
	return b.with(WithStrictCentroidCount())
}

// Build creates the configured engine.
func (b Builder) Build() Engine {
	if b.parallel {
		return NewParallel(b.opts...)
	}
	return NewSequential(b.opts...)
}

// BuildMultiStart creates a multi-start orchestrator with the configured
// options. Whether restarts run in parallel is chosen per call through
// MultiStartParams, not by Parallel.
func (b Builder) BuildMultiStart() *MultiStart {
	return NewMultiStart(b.opts...)
}
