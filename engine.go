package kmeansgo

import (
	"context"
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/hupe1980/kmeansgo/distance"
	"github.com/hupe1980/kmeansgo/internal/kmeans"
)

// State is the lifecycle state of an engine.
type State int

const (
	StateUninitialized State = iota
	StateInitialized
	StateIterating
	StateConverged
	StateMaxIterations
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "Uninitialized"
	case StateInitialized:
		return "Initialized"
	case StateIterating:
		return "Iterating"
	case StateConverged:
		return "Converged"
	case StateMaxIterations:
		return "MaxIterationsReached"
	case StateStopped:
		return "Stopped"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

// Engine runs Lloyd's algorithm over a fixed point set.
//
// An engine is single-use per Initialize: Initialize (optionally followed by
// SetInitialCentroids) prepares a run, Run executes it. Calling Initialize
// again starts over. Engines are not safe for concurrent use.
type Engine interface {
	// Initialize validates the inputs and picks initial centroids with the
	// configured Initializer. The effective cluster count is
	// min(cfg.K(), len(points)).
	Initialize(points []Point, cfg Config) error

	// SetInitialCentroids replaces the initial centroids chosen by
	// Initialize. The centroids are copied.
	SetInitialCentroids(centroids []Point) error

	// Run iterates until convergence or the iteration cap. ctx is checked
	// only between iterations; if it is done, Run returns the state after the
	// last complete iteration together with an error wrapping ctx.Err().
	Run(ctx context.Context) (RunResult, error)

	// ComputeSSE returns the SSE of the current clusters.
	ComputeSSE() float64

	// IterationsCompleted returns the number of finished iterations.
	IterationsCompleted() int

	// Clusters returns a copy of the current clusters.
	Clusters() []Cluster

	// State returns the lifecycle state.
	State() State

	// K returns the effective number of clusters.
	K() int
}

// RunResult is the outcome of one engine run.
type RunResult struct {
	Clusters   []Cluster     `json:"clusters"`
	SSE        float64       `json:"sse"`
	Iterations int           `json:"iterations"`
	Converged  bool          `json:"converged"`
	Elapsed    time.Duration `json:"elapsed"`
}

// Clone returns a deep copy of r.
func (r RunResult) Clone() RunResult {
	r.Clusters = cloneClusters(r.Clusters)
	return r
}

// Centroids returns the final centroids in cluster order.
func (r RunResult) Centroids() []Point {
	out := make([]Point, len(r.Clusters))
	for i, c := range r.Clusters {
		out[i] = c.Centroid
	}
	return out
}

// Assign returns the index of the cluster whose centroid is nearest to p.
func (r RunResult) Assign(p Point) (int, error) {
	if len(r.Clusters) == 0 {
		return -1, invalidArgument("result has no clusters")
	}
	if dim := r.Clusters[0].Centroid.Dim(); p.Dim() != dim {
		return -1, &ErrDimensionMismatch{Expected: dim, Actual: p.Dim()}
	}

	idx, _ := kmeans.Nearest(p.coords, centroidsOf(r.Clusters))
	return idx, nil
}

// ClosestClusters returns the indices of the n clusters whose centroids are
// nearest to p, nearest first.
func (r RunResult) ClosestClusters(p Point, n int) ([]int, error) {
	if len(r.Clusters) == 0 {
		return nil, invalidArgument("result has no clusters")
	}
	if dim := r.Clusters[0].Centroid.Dim(); p.Dim() != dim {
		return nil, &ErrDimensionMismatch{Expected: dim, Actual: p.Dim()}
	}

	return kmeans.FindClosestCentroids(p.coords, centroidsOf(r.Clusters), n), nil
}

// phases are the two steps of an iteration that differ between the
// sequential and the parallel engine.
type phases interface {
	// assign fills every cluster's member list from scratch.
	assign(e *core)
	// recompute updates centroids from members and reports whether every
	// centroid moved at most the tolerance since e.prev was captured.
	recompute(e *core) bool
}

// core holds the state and lifecycle shared by both engines.
type core struct {
	name   string
	opts   options
	phases phases
	logger *Logger
	rng    *rand.Rand

	cfg    Config
	points []Point
	vecs   [][]float64
	dim    int
	k      int

	clusters []Cluster
	// prev holds each centroid as it was at the start of the current
	// iteration, before empty-cluster repair.
	prev []Point

	state      State
	iterations int
	converged  bool
}

func newCore(name string, p phases, opts options) core {
	seed := time.Now().UnixNano()
	if opts.seed != nil {
		seed = *opts.seed
	}

	return core{
		name:   name,
		opts:   opts,
		phases: p,
		logger: opts.logger.WithEngine(name),
		rng:    rand.New(rand.NewSource(seed)), // nolint gosec
	}
}

func (e *core) Initialize(points []Point, cfg Config) error {
	if e.state == StateIterating {
		return invalidState("Initialize", e.state)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	dim, err := validatePoints(points)
	if err != nil {
		return err
	}

	k := min(cfg.K(), len(points))

	centroids, err := e.opts.initializer.Centroids(points, k, e.rng)
	if err != nil {
		return err
	}
	if err := e.checkCentroids(centroids, dim); err != nil {
		return err
	}

	e.cfg = cfg
	e.points = slices.Clone(points)
	e.vecs = coordsOf(e.points)
	e.dim = dim
	e.setClusters(centroids[:min(k, len(centroids))])
	e.iterations = 0
	e.converged = false
	e.state = StateInitialized

	e.logger.Debug("engine initialized",
		"points", len(points),
		"dimension", dim,
		"k", e.k,
		"requested_k", cfg.K(),
	)

	return nil
}

func (e *core) SetInitialCentroids(centroids []Point) error {
	if e.state != StateInitialized {
		return invalidState("SetInitialCentroids", e.state)
	}
	if len(centroids) == 0 {
		return invalidArgument("initial centroids must not be empty")
	}
	if err := e.checkCentroids(centroids, e.dim); err != nil {
		return err
	}

	k := e.k
	if len(centroids) != k {
		if e.opts.strictCentroidCount {
			return invalidArgument("got %d initial centroids, want %d", len(centroids), k)
		}
		k = min(k, len(centroids))
	}

	e.setClusters(centroids[:k])

	return nil
}

func (e *core) checkCentroids(centroids []Point, dim int) error {
	for _, c := range centroids {
		if c.Dim() != dim {
			return &ErrDimensionMismatch{Expected: dim, Actual: c.Dim()}
		}
	}
	return nil
}

// setClusters installs fresh clusters around a private copy of centroids.
func (e *core) setClusters(centroids []Point) {
	e.k = len(centroids)
	e.clusters = newClusters(slices.Clone(centroids))
	e.prev = make([]Point, e.k)
}

func (e *core) Run(ctx context.Context) (RunResult, error) {
	if e.state != StateInitialized {
		return RunResult{}, invalidState("Run", e.state)
	}

	start := time.Now()
	e.state = StateIterating
	e.notifyIteration()

	for e.iterations < e.cfg.MaxIterations() {
		if err := ctx.Err(); err != nil {
			e.state = StateStopped
			res := e.result(time.Since(start))
			err = fmt.Errorf("run stopped after %d iterations: %w", e.iterations, err)
			e.opts.metricsCollector.RecordRun(e.name, e.iterations, false, res.Elapsed, err)
			e.logger.LogRun(ctx, e.iterations, false, res.SSE, res.Elapsed, err)
			return res, err
		}

		iterStart := time.Now()
		converged, reseeded := e.iterate()
		e.iterations++

		e.opts.metricsCollector.RecordIteration(e.name, time.Since(iterStart), reseeded)
		e.logger.LogIteration(ctx, e.iterations, reseeded, converged)
		e.notifyIteration()

		if converged {
			e.converged = true
			break
		}
	}

	if e.converged {
		e.state = StateConverged
	} else {
		e.state = StateMaxIterations
	}

	res := e.result(time.Since(start))

	if e.opts.observer != nil {
		e.opts.observer.OnRunComplete(cloneClusters(e.clusters), res.SSE, res.Elapsed, res.Iterations)
	}
	e.opts.metricsCollector.RecordRun(e.name, res.Iterations, res.Converged, res.Elapsed, nil)
	e.logger.LogRun(ctx, res.Iterations, res.Converged, res.SSE, res.Elapsed, nil)

	return res, nil
}

// iterate runs one assignment, repair and recompute cycle.
func (e *core) iterate() (bool, int) {
	for i := range e.clusters {
		e.prev[i] = e.clusters[i].Centroid
		e.clusters[i].Points = e.clusters[i].Points[:0]
	}

	e.phases.assign(e)

	reseeded := e.opts.emptyClusterPolicy.Apply(e.clusters, e.points, e.rng)

	return e.phases.recompute(e), reseeded
}

// recomputeRange recomputes clusters [lo, hi) and reports whether all of
// them moved at most the tolerance. Distinct ranges touch distinct clusters.
func (e *core) recomputeRange(lo, hi int) bool {
	tol := e.cfg.Tolerance()
	within := true

	for i := lo; i < hi; i++ {
		c := &e.clusters[i]
		c.recompute(e.dim)
		if distance.L2(e.prev[i].coords, c.Centroid.coords) > tol {
			within = false
		}
	}

	return within
}

func (e *core) notifyIteration() {
	if e.opts.observer == nil {
		return
	}
	snapshot := cloneClusters(e.clusters)
	e.opts.observer.OnIterationComplete(snapshot, e.iterations, SSE(snapshot))
}

func (e *core) result(elapsed time.Duration) RunResult {
	return RunResult{
		Clusters:   cloneClusters(e.clusters),
		SSE:        SSE(e.clusters),
		Iterations: e.iterations,
		Converged:  e.converged,
		Elapsed:    elapsed,
	}
}

func (e *core) ComputeSSE() float64 { return SSE(e.clusters) }

func (e *core) IterationsCompleted() int { return e.iterations }

func (e *core) Clusters() []Cluster { return cloneClusters(e.clusters) }

func (e *core) State() State { return e.state }

func (e *core) K() int { return e.k }
