package prommetrics

import (
	"errors"
	"time"

	"github.com/hupe1980/kmeansgo"
	"github.com/prometheus/client_golang/prometheus"
)

// Run outcomes used as the "outcome" label of the runs counter.
const (
	OutcomeConverged     = "converged"
	OutcomeMaxIterations = "max_iterations"
	OutcomeStopped       = "stopped"
)

// Option configures a Collector.
type Option func(*config)

type config struct {
	namespace  string
	registerer prometheus.Registerer
	buckets    []float64
}

// WithNamespace sets the metric namespace. Defaults to "kmeans".
func WithNamespace(ns string) Option {
	return func(c *config) {
		c.namespace = ns
	}
}

// WithRegisterer sets where the metrics are registered.
// Defaults to prometheus.DefaultRegisterer.
func WithRegisterer(r prometheus.Registerer) Option {
	return func(c *config) {
		c.registerer = r
	}
}

// WithBuckets sets the histogram buckets, in seconds, for all duration
// metrics. Defaults to prometheus.DefBuckets.
func WithBuckets(b []float64) Option {
	return func(c *config) {
		c.buckets = b
	}
}

// Collector implements kmeansgo.MetricsCollector with Prometheus metrics.
// It is safe for concurrent use, so one Collector can serve many engines.
type Collector struct {
	iterations        *prometheus.CounterVec
	iterationDuration *prometheus.HistogramVec
	reseeded          *prometheus.CounterVec
	runs              *prometheus.CounterVec
	runDuration       *prometheus.HistogramVec
	runIterations     *prometheus.HistogramVec
	restarts          prometheus.Counter
	restartDuration   prometheus.Histogram
	restartSSE        prometheus.Gauge
}

var _ kmeansgo.MetricsCollector = (*Collector)(nil)

// New creates a Collector and registers its metrics.
func New(optFns ...Option) (*Collector, error) {
	cfg := config{
		namespace:  "kmeans",
		registerer: prometheus.DefaultRegisterer,
		buckets:    prometheus.DefBuckets,
	}
	for _, fn := range optFns {
		fn(&cfg)
	}

	c := &Collector{
		iterations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.namespace,
			Name:      "iterations_total",
			Help:      "Total number of completed Lloyd iterations.",
		}, []string{"engine"}),
		iterationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: cfg.namespace,
			Name:      "iteration_duration_seconds",
			Help:      "Duration of a single iteration.",
			Buckets:   cfg.buckets,
		}, []string{"engine"}),
		reseeded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.namespace,
			Name:      "reseeded_clusters_total",
			Help:      "Total number of empty clusters repaired.",
		}, []string{"engine"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.namespace,
			Name:      "runs_total",
			Help:      "Total number of finished runs by outcome.",
		}, []string{"engine", "outcome"}),
		runDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: cfg.namespace,
			Name:      "run_duration_seconds",
			Help:      "Duration of a run.",
			Buckets:   cfg.buckets,
		}, []string{"engine"}),
		runIterations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: cfg.namespace,
			Name:      "run_iterations",
			Help:      "Iterations a run took.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}, []string{"engine"}),
		restarts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.namespace,
			Name:      "restarts_total",
			Help:      "Total number of multi-start restarts.",
		}),
		restartDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: cfg.namespace,
			Name:      "restart_duration_seconds",
			Help:      "Duration of a multi-start restart.",
			Buckets:   cfg.buckets,
		}),
		restartSSE: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: cfg.namespace,
			Name:      "last_restart_sse",
			Help:      "SSE of the most recent multi-start restart.",
		}),
	}

	collectors := []prometheus.Collector{
		c.iterations,
		c.iterationDuration,
		c.reseeded,
		c.runs,
		c.runDuration,
		c.runIterations,
		c.restarts,
		c.restartDuration,
		c.restartSSE,
	}

	var errs []error
	for _, col := range collectors {
		if err := cfg.registerer.Register(col); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return c, nil
}

// MustNew is like New but panics on registration errors.
func MustNew(optFns ...Option) *Collector {
	c, err := New(optFns...)
	if err != nil {
		panic(err)
	}
	return c
}

// RecordIteration implements kmeansgo.MetricsCollector.
func (c *Collector) RecordIteration(engine string, duration time.Duration, reseeded int) {
	c.iterations.WithLabelValues(engine).Inc()
	c.iterationDuration.WithLabelValues(engine).Observe(duration.Seconds())
	if reseeded > 0 {
		c.reseeded.WithLabelValues(engine).Add(float64(reseeded))
	}
}

// RecordRun implements kmeansgo.MetricsCollector.
func (c *Collector) RecordRun(engine string, iterations int, converged bool, duration time.Duration, err error) {
	outcome := OutcomeMaxIterations
	switch {
	case err != nil:
		outcome = OutcomeStopped
	case converged:
		outcome = OutcomeConverged
	}

	c.runs.WithLabelValues(engine, outcome).Inc()
	c.runDuration.WithLabelValues(engine).Observe(duration.Seconds())
	c.runIterations.WithLabelValues(engine).Observe(float64(iterations))
}

// RecordRestart implements kmeansgo.MetricsCollector.
func (c *Collector) RecordRestart(_ int, sse float64, duration time.Duration) {
	c.restarts.Inc()
	c.restartDuration.Observe(duration.Seconds())
	c.restartSSE.Set(sse)
}
