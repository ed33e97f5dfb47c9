package kmeansgo

import (
	"context"
	"fmt"
	"time"
)

// MultiStartParams selects how a multi-start search runs its restarts.
type MultiStartParams struct {
	// Restarts is the number of independent runs; must be positive.
	Restarts int
	// KMeansPlusPlus seeds each restart with KMeansPlusPlus instead of the
	// engine's initializer.
	KMeansPlusPlus bool
	// Parallel runs each restart on a ParallelEngine.
	Parallel bool
}

// RestartSummary describes one restart of a multi-start search.
type RestartSummary struct {
	Restart    int           `json:"restart"`
	SSE        float64       `json:"sse"`
	Iterations int           `json:"iterations"`
	Converged  bool          `json:"converged"`
	Elapsed    time.Duration `json:"elapsed"`
}

// MultiStartResult is the best run of a multi-start search.
type MultiStartResult struct {
	// Clusters of the restart with the lowest SSE.
	Clusters []Cluster `json:"clusters"`
	SSE      float64   `json:"sse"`
	// BestRestart is the 1-based index of the winning restart.
	BestRestart    int           `json:"best_restart"`
	BestIterations int           `json:"best_iterations"`
	TotalElapsed   time.Duration `json:"total_elapsed"`
	AverageElapsed time.Duration `json:"average_elapsed"`
	// Restarts lists every restart in execution order.
	Restarts []RestartSummary `json:"restarts"`
}

// MultiStart runs several independently seeded engine runs and keeps the one
// with the lowest SSE.
//
// Restarts execute one after another, never concurrently, so their timings
// stay comparable; each restart may still parallelize internally.
type MultiStart struct {
	opts options
}

// NewMultiStart creates an orchestrator. Engine options (logger, metrics,
// seed, parallelism, cutoffs, empty-cluster policy, initializer) apply to
// every restart.
func NewMultiStart(optFns ...Option) *MultiStart {
	return &MultiStart{opts: applyOptions(optFns)}
}

// Run performs params.Restarts restarts over points.
//
// Restart r (0-based) is seeded with baseSeed+r, where baseSeed comes from
// WithSeed or the current time. The returned SSE is never larger than the SSE
// of any restart. A failing restart aborts the search and its error is
// returned; ctx is checked between restarts and between iterations.
func (m *MultiStart) Run(ctx context.Context, cfg Config, points []Point, params MultiStartParams) (MultiStartResult, error) {
	if err := cfg.Validate(); err != nil {
		return MultiStartResult{}, err
	}
	if _, err := validatePoints(points); err != nil {
		return MultiStartResult{}, err
	}
	if params.Restarts <= 0 {
		return MultiStartResult{}, invalidArgument("number of restarts must be positive, got %d", params.Restarts)
	}

	baseSeed := time.Now().UnixNano()
	if m.opts.seed != nil {
		baseSeed = *m.opts.seed
	}

	logger := m.opts.logger.WithK(cfg.K()).WithCount(len(points))

	var (
		best     RunResult
		bestIdx  int
		total    time.Duration
		restarts = make([]RestartSummary, 0, params.Restarts)
	)

	for r := range params.Restarts {
		if err := ctx.Err(); err != nil {
			return MultiStartResult{}, fmt.Errorf("multi-start stopped before restart %d: %w", r+1, err)
		}

		seed := baseSeed + int64(r)
		start := time.Now()

		res, err := m.runRestart(ctx, cfg, points, params, seed)
		elapsed := time.Since(start)

		if err != nil {
			logger.LogRestart(ctx, r+1, params.Restarts, 0, elapsed, err)
			return MultiStartResult{}, fmt.Errorf("restart %d: %w", r+1, err)
		}

		total += elapsed
		restarts = append(restarts, RestartSummary{
			Restart:    r + 1,
			SSE:        res.SSE,
			Iterations: res.Iterations,
			Converged:  res.Converged,
			Elapsed:    elapsed,
		})

		m.opts.metricsCollector.RecordRestart(r+1, res.SSE, elapsed)
		logger.LogRestart(ctx, r+1, params.Restarts, res.SSE, elapsed, nil)

		// res is already a private copy; later restarts build new engines.
		if bestIdx == 0 || res.SSE < best.SSE {
			best = res
			bestIdx = r + 1
		}
	}

	logger.LogMultiStart(ctx, params.Restarts, bestIdx, best.SSE, total)

	return MultiStartResult{
		Clusters:       best.Clusters,
		SSE:            best.SSE,
		BestRestart:    bestIdx,
		BestIterations: best.Iterations,
		TotalElapsed:   total,
		AverageElapsed: total / time.Duration(params.Restarts),
		Restarts:       restarts,
	}, nil
}

func (m *MultiStart) runRestart(ctx context.Context, cfg Config, points []Point, params MultiStartParams, seed int64) (RunResult, error) {
	opts := m.opts
	opts.seed = &seed
	opts.observer = nil
	if params.KMeansPlusPlus {
		opts.initializer = PlusPlusInitializer{}
	}

	var eng Engine
	if params.Parallel {
		eng = newParallel(opts)
	} else {
		eng = newSequential(opts)
	}

	if err := eng.Initialize(points, cfg); err != nil {
		return RunResult{}, err
	}

	return eng.Run(ctx)
}
