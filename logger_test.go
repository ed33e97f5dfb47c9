package kmeansgo_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/hupe1980/kmeansgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_EngineRun(t *testing.T) {
	var buf bytes.Buffer
	logger := kmeansgo.NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	eng := kmeansgo.NewSequential(kmeansgo.WithLogger(logger), kmeansgo.WithSeed(1))
	require.NoError(t, eng.Initialize(squarePoints(), kmeansgo.MustConfig(2, 100, 1e-6)))

	_, err := eng.Run(context.Background())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"engine initialized"`)
	assert.Contains(t, out, `"msg":"iteration completed"`)
	assert.Contains(t, out, `"msg":"run completed"`)
	assert.Contains(t, out, `"engine":"sequential"`)
}

func TestLogger_StoppedRun(t *testing.T) {
	var buf bytes.Buffer
	logger := kmeansgo.NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	eng := kmeansgo.NewParallel(kmeansgo.WithLogger(logger))
	require.NoError(t, eng.Initialize(squarePoints(), kmeansgo.MustConfig(2, 100, 1e-6)))

	_, err := eng.Run(ctx)
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "run stopped")
	assert.Contains(t, out, "engine=parallel")
	assert.NotContains(t, out, "iteration completed")
}

func TestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	logger := kmeansgo.NewLogger(slog.NewTextHandler(&buf, nil)).
		WithK(3).
		WithDimension(8).
		WithCount(100)

	logger.Info("hello")

	out := buf.String()
	assert.Contains(t, out, "k=3")
	assert.Contains(t, out, "dimension=8")
	assert.Contains(t, out, "count=100")
}

func TestLogger_Constructors(t *testing.T) {
	assert.NotNil(t, kmeansgo.NewLogger(nil))
	assert.NotNil(t, kmeansgo.NewJSONLogger(slog.LevelInfo))
	assert.NotNil(t, kmeansgo.NewTextLogger(slog.LevelDebug))

	noop := kmeansgo.NoopLogger()
	assert.False(t, noop.Enabled(context.Background(), slog.LevelError))
}
