package kmeansgo_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/hupe1980/kmeansgo"
	"github.com/hupe1980/kmeansgo/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiStart_BestOfRestarts(t *testing.T) {
	points := blobPoints(t, 21, 4, 50, 2)
	cfg := kmeansgo.MustConfig(4, 100, 1e-6)

	tests := []struct {
		name   string
		params kmeansgo.MultiStartParams
	}{
		{"sequential", kmeansgo.MultiStartParams{Restarts: 6}},
		{"parallel", kmeansgo.MultiStartParams{Restarts: 6, Parallel: true}},
		{"plus-plus", kmeansgo.MultiStartParams{Restarts: 6, KMeansPlusPlus: true}},
		{"parallel plus-plus", kmeansgo.MultiStartParams{Restarts: 6, KMeansPlusPlus: true, Parallel: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms := kmeansgo.NewMultiStart(kmeansgo.WithSeed(7))

			res, err := ms.Run(context.Background(), cfg, points, tt.params)
			require.NoError(t, err)

			require.Len(t, res.Restarts, 6)
			assert.GreaterOrEqual(t, res.BestRestart, 1)
			assert.LessOrEqual(t, res.BestRestart, 6)
			for i, r := range res.Restarts {
				assert.Equal(t, i+1, r.Restart)
				assert.LessOrEqual(t, res.SSE, r.SSE)
			}

			best := res.Restarts[res.BestRestart-1]
			assert.Equal(t, best.SSE, res.SSE)
			assert.Equal(t, best.Iterations, res.BestIterations)
			assert.Equal(t, kmeansgo.SSE(res.Clusters), res.SSE)
			assert.Len(t, res.Clusters, 4)

			var total int64
			for _, r := range res.Restarts {
				total += int64(r.Elapsed)
			}
			assert.Equal(t, total, int64(res.TotalElapsed))
			assert.Equal(t, res.TotalElapsed/6, res.AverageElapsed)
		})
	}
}

func TestMultiStart_Deterministic(t *testing.T) {
	points := blobPoints(t, 3, 3, 40, 2)
	cfg := kmeansgo.MustConfig(3, 100, 1e-6)
	params := kmeansgo.MultiStartParams{Restarts: 4, KMeansPlusPlus: true}

	a, err := kmeansgo.NewMultiStart(kmeansgo.WithSeed(99)).Run(context.Background(), cfg, points, params)
	require.NoError(t, err)
	b, err := kmeansgo.NewMultiStart(kmeansgo.WithSeed(99)).Run(context.Background(), cfg, points, params)
	require.NoError(t, err)

	assert.Equal(t, a.SSE, b.SSE)
	assert.Equal(t, a.BestRestart, b.BestRestart)
	for i := range a.Restarts {
		assert.Equal(t, a.Restarts[i].SSE, b.Restarts[i].SSE)
	}
}

func TestMultiStart_FindsSeparatedBlobs(t *testing.T) {
	centers := testutil.GridCenters(3, 2, 100)
	vecs, _ := testutil.NewRNG(8).Blobs(centers, 30, 0.5)
	points, err := kmeansgo.PointsFrom(vecs)
	require.NoError(t, err)

	res, err := kmeansgo.NewMultiStart(kmeansgo.WithSeed(1)).Run(
		context.Background(),
		kmeansgo.MustConfig(3, 100, 1e-9),
		points,
		kmeansgo.MultiStartParams{Restarts: 10, KMeansPlusPlus: true},
	)
	require.NoError(t, err)

	for _, c := range res.Clusters {
		assert.Equal(t, 30, c.Size())
	}
	optimum := testutil.BruteForceSSE(vecs, centers)
	assert.LessOrEqual(t, res.SSE, optimum)
}

func TestMultiStart_Validation(t *testing.T) {
	ms := kmeansgo.NewMultiStart()
	cfg := kmeansgo.MustConfig(2, 10, 1e-6)
	points := squarePoints()
	ctx := context.Background()

	_, err := ms.Run(ctx, cfg, points, kmeansgo.MultiStartParams{Restarts: 0})
	assert.ErrorIs(t, err, kmeansgo.ErrInvalidArgument)

	_, err = ms.Run(ctx, cfg, nil, kmeansgo.MultiStartParams{Restarts: 1})
	assert.ErrorIs(t, err, kmeansgo.ErrInvalidArgument)

	_, err = ms.Run(ctx, kmeansgo.Config{}, points, kmeansgo.MultiStartParams{Restarts: 1})
	assert.ErrorIs(t, err, kmeansgo.ErrInvalidArgument)

	mixed := []kmeansgo.Point{kmeansgo.MustPoint(1), kmeansgo.MustPoint(1, 2)}
	_, err = ms.Run(ctx, cfg, mixed, kmeansgo.MultiStartParams{Restarts: 1})
	assert.ErrorIs(t, err, kmeansgo.ErrDimension)
}

func TestMultiStart_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := kmeansgo.NewMultiStart().Run(ctx, kmeansgo.MustConfig(2, 10, 1e-6), squarePoints(), kmeansgo.MultiStartParams{Restarts: 3})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMultiStart_Metrics(t *testing.T) {
	mc := &kmeansgo.BasicMetricsCollector{}
	ms := kmeansgo.NewMultiStart(kmeansgo.WithSeed(1), kmeansgo.WithMetricsCollector(mc))

	res, err := ms.Run(context.Background(), kmeansgo.MustConfig(2, 100, 1e-6), squarePoints(), kmeansgo.MultiStartParams{Restarts: 5})
	require.NoError(t, err)

	stats := mc.GetStats()
	assert.Equal(t, int64(5), stats.RestartCount)
	assert.Equal(t, int64(5), stats.RunCount)
	assert.Equal(t, res.Restarts[4].SSE, stats.LastRestartSSE)
}

func TestMultiStart_ClampsK(t *testing.T) {
	res, err := kmeansgo.NewMultiStart(kmeansgo.WithSeed(1)).Run(
		context.Background(),
		kmeansgo.MustConfig(10, 100, 1e-6),
		squarePoints(),
		kmeansgo.MultiStartParams{Restarts: 2, KMeansPlusPlus: true},
	)
	require.NoError(t, err)
	assert.Len(t, res.Clusters, 4)
	assert.Equal(t, 0.0, res.SSE)
}

type countingInitializer struct {
	calls *int
}

func (c countingInitializer) Centroids(points []kmeansgo.Point, k int, rng *rand.Rand) ([]kmeansgo.Point, error) {
	*c.calls++
	return kmeansgo.SampleUniform(points, k, rng)
}

func TestMultiStart_PlusPlusReplacesInitializer(t *testing.T) {
	points := blobPoints(t, 11, 3, 30, 2)
	cfg := kmeansgo.MustConfig(3, 100, 1e-6)

	var calls int
	ms := kmeansgo.NewMultiStart(kmeansgo.WithSeed(40), kmeansgo.WithInitializer(countingInitializer{calls: &calls}))

	res, err := ms.Run(context.Background(), cfg, points, kmeansgo.MultiStartParams{Restarts: 3, KMeansPlusPlus: true})
	require.NoError(t, err)
	assert.Zero(t, calls)

	// Each restart matches a standalone k-means++ run with the same seed.
	for r, summary := range res.Restarts {
		eng := kmeansgo.NewSequential(kmeansgo.WithSeed(40+int64(r)), kmeansgo.WithInitializer(kmeansgo.PlusPlusInitializer{}))
		require.NoError(t, eng.Initialize(points, cfg))

		want, err := eng.Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, want.SSE, summary.SSE, "restart %d", summary.Restart)
		assert.Equal(t, want.Iterations, summary.Iterations, "restart %d", summary.Restart)
	}

	_, err = ms.Run(context.Background(), cfg, points, kmeansgo.MultiStartParams{Restarts: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}
