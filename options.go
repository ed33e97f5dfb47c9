package kmeansgo

const (
	// DefaultAssignCutoff is the largest point range a parallel assignment
	// leaf handles without splitting further.
	DefaultAssignCutoff = 1000

	// DefaultRecomputeCutoff is the largest cluster range a parallel
	// recompute leaf handles without splitting further.
	DefaultRecomputeCutoff = 2
)

type options struct {
	logger              *Logger
	metricsCollector    MetricsCollector
	observer            Observer
	seed                *int64
	parallelism         int
	assignCutoff        int
	recomputeCutoff     int
	initializer         Initializer
	emptyClusterPolicy  EmptyClusterPolicy
	strictCentroidCount bool
}

// Option configures engines and the multi-start orchestrator.
type Option func(*options)

func defaultOptions() options {
	return options{
		logger:             NoopLogger(),
		metricsCollector:   NoopMetricsCollector{},
		assignCutoff:       DefaultAssignCutoff,
		recomputeCutoff:    DefaultRecomputeCutoff,
		initializer:        UniformInitializer{},
		emptyClusterPolicy: ReseedFromLargest{},
	}
}

func applyOptions(optFns []Option) options {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}

// WithLogger sets the structured logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the metrics collector.
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithObserver registers a progress observer for engine runs.
//
// The multi-start orchestrator does not forward per-iteration notifications
// of its restarts, so this option has no effect there.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		o.observer = obs
	}
}

// WithSeed makes random choices (initial centroids, empty-cluster reseeding,
// multi-start restart seeds) reproducible.
// If not set, a time-based seed is used.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = &seed
	}
}

// WithParallelism bounds the number of goroutines used by a ParallelEngine.
// If n <= 0, runtime.GOMAXPROCS(0) is used.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

// WithAssignCutoff sets the leaf size for parallel assignment.
// Values < 1 reset it to DefaultAssignCutoff.
func WithAssignCutoff(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = DefaultAssignCutoff
		}
		o.assignCutoff = n
	}
}

// WithRecomputeCutoff sets the leaf size for parallel centroid recomputation.
// Values < 1 reset it to DefaultRecomputeCutoff.
func WithRecomputeCutoff(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = DefaultRecomputeCutoff
		}
		o.recomputeCutoff = n
	}
}

// WithInitializer sets how Initialize picks the initial centroids.
// If nil is passed, UniformInitializer is used.
func WithInitializer(i Initializer) Option {
	return func(o *options) {
		if i == nil {
			i = UniformInitializer{}
		}
		o.initializer = i
	}
}

// WithEmptyClusterPolicy replaces the default ReseedFromLargest policy.
// If nil is passed, ReseedFromLargest is used.
func WithEmptyClusterPolicy(p EmptyClusterPolicy) Option {
	return func(o *options) {
		if p == nil {
			p = ReseedFromLargest{}
		}
		o.emptyClusterPolicy = p
	}
}

// WithStrictCentroidCount makes SetInitialCentroids reject a centroid count
// different from the effective k with ErrInvalidArgument.
//
// By default the count is clamped: the run uses min(k, len(centroids))
// clusters.
func WithStrictCentroidCount() Option {
	return func(o *options) {
		o.strictCentroidCount = true
	}
}
