package kmeansgo

import (
	"math"
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus (see package prommetrics).
//
// Methods are called synchronously from the engine's run loop, never from
// inside a parallel phase.
type MetricsCollector interface {
	// RecordIteration is called after each iteration. reseeded is the number
	// of empty clusters the EmptyClusterPolicy repaired.
	RecordIteration(engine string, duration time.Duration, reseeded int)

	// RecordRun is called when a run ends, err is non-nil if it was stopped.
	RecordRun(engine string, iterations int, converged bool, duration time.Duration, err error)

	// RecordRestart is called after each restart of a multi-start search.
	RecordRestart(restart int, sse float64, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordIteration(string, time.Duration, int)        {}
func (NoopMetricsCollector) RecordRun(string, int, bool, time.Duration, error) {}
func (NoopMetricsCollector) RecordRestart(int, float64, time.Duration)         {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	IterationCount      atomic.Int64
	IterationTotalNanos atomic.Int64
	ReseededClusters    atomic.Int64
	RunCount            atomic.Int64
	RunConverged        atomic.Int64
	RunErrors           atomic.Int64
	RunTotalNanos       atomic.Int64
	RestartCount        atomic.Int64
	lastRestartSSE      atomic.Uint64
}

// RecordIteration implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIteration(_ string, duration time.Duration, reseeded int) {
	b.IterationCount.Add(1)
	b.IterationTotalNanos.Add(duration.Nanoseconds())
	b.ReseededClusters.Add(int64(reseeded))
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(_ string, _ int, converged bool, duration time.Duration, err error) {
	b.RunCount.Add(1)
	b.RunTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RunErrors.Add(1)
	}
	if converged {
		b.RunConverged.Add(1)
	}
}

// RecordRestart implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRestart(_ int, sse float64, _ time.Duration) {
	b.RestartCount.Add(1)
	b.lastRestartSSE.Store(math.Float64bits(sse))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		IterationCount:    b.IterationCount.Load(),
		IterationAvgNanos: avgNanos(b.IterationTotalNanos.Load(), b.IterationCount.Load()),
		ReseededClusters:  b.ReseededClusters.Load(),
		RunCount:          b.RunCount.Load(),
		RunConverged:      b.RunConverged.Load(),
		RunErrors:         b.RunErrors.Load(),
		RunAvgNanos:       avgNanos(b.RunTotalNanos.Load(), b.RunCount.Load()),
		RestartCount:      b.RestartCount.Load(),
		LastRestartSSE:    math.Float64frombits(b.lastRestartSSE.Load()),
	}
}

func avgNanos(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	IterationCount    int64
	IterationAvgNanos int64
	ReseededClusters  int64
	RunCount          int64
	RunConverged      int64
	RunErrors         int64
	RunAvgNanos       int64
	RestartCount      int64
	LastRestartSSE    float64
}
