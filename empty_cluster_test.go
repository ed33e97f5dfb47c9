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

func TestReseedFromLargest(t *testing.T) {
	a, b, c := kmeansgo.MustPoint(0), kmeansgo.MustPoint(1), kmeansgo.MustPoint(2)
	d, e, f := kmeansgo.MustPoint(10), kmeansgo.MustPoint(11), kmeansgo.MustPoint(12)

	clusters := []kmeansgo.Cluster{
		{Centroid: kmeansgo.MustPoint(1), Points: []kmeansgo.Point{a, b, c}},
		{Centroid: kmeansgo.MustPoint(50)},
		{Centroid: kmeansgo.MustPoint(11), Points: []kmeansgo.Point{d, e, f}},
	}

	n := kmeansgo.ReseedFromLargest{}.Apply(clusters, nil, rand.New(rand.NewSource(1)))
	assert.Equal(t, 1, n)

	// Ties go to the lowest index, so cluster 0 donates.
	assert.Equal(t, 2, clusters[0].Size())
	require.Equal(t, 1, clusters[1].Size())
	assert.Equal(t, 3, clusters[2].Size())

	moved := clusters[1].Points[0]
	assert.True(t, clusters[1].Centroid.Equal(moved))
	for _, p := range clusters[0].Points {
		assert.False(t, p.Equal(moved))
	}
}

func TestReseedFromLargest_SingleMemberDonor(t *testing.T) {
	p := kmeansgo.MustPoint(3)
	clusters := []kmeansgo.Cluster{
		{Centroid: p, Points: []kmeansgo.Point{p}},
		{Centroid: kmeansgo.MustPoint(9)},
	}

	n := kmeansgo.ReseedFromLargest{}.Apply(clusters, nil, rand.New(rand.NewSource(1)))
	assert.Equal(t, 1, n)
	assert.True(t, clusters[1].Centroid.Equal(p))
	assert.Equal(t, 1, clusters[0].Size())
	assert.Equal(t, 0, clusters[1].Size())
}

func TestReseedFromLargest_AllEmpty(t *testing.T) {
	points := linePoints(5)
	clusters := []kmeansgo.Cluster{
		{Centroid: kmeansgo.MustPoint(-1, 0)},
		{Centroid: kmeansgo.MustPoint(-2, 0)},
	}

	n := kmeansgo.ReseedFromLargest{}.Apply(clusters, points, rand.New(rand.NewSource(1)))
	assert.Equal(t, 2, n)
	for _, c := range clusters {
		assert.GreaterOrEqual(t, indexOf(points, c.Centroid), 0)
		assert.Zero(t, c.Size())
	}
}

func TestReseedFromLargest_NothingEmpty(t *testing.T) {
	clusters := []kmeansgo.Cluster{
		{Centroid: kmeansgo.MustPoint(0), Points: []kmeansgo.Point{kmeansgo.MustPoint(0)}},
	}
	assert.Zero(t, kmeansgo.ReseedFromLargest{}.Apply(clusters, nil, rand.New(rand.NewSource(1))))
}

func TestEngine_IdenticalPointsLeaveNoClusterEmpty(t *testing.T) {
	points, err := kmeansgo.PointsFrom(testutil.Repeated([]float64{5, 5}, 10))
	require.NoError(t, err)

	for _, eng := range []kmeansgo.Engine{
		kmeansgo.NewSequential(kmeansgo.WithSeed(1)),
		kmeansgo.NewParallel(kmeansgo.WithSeed(1), kmeansgo.WithAssignCutoff(3)),
	} {
		require.NoError(t, eng.Initialize(points, kmeansgo.MustConfig(3, 10, 1e-6)))

		res, err := eng.Run(context.Background())
		require.NoError(t, err)

		assert.True(t, res.Converged)
		assert.Equal(t, 1, res.Iterations)
		assert.Equal(t, 0.0, res.SSE)

		total := 0
		for _, c := range res.Clusters {
			assert.Positive(t, c.Size())
			total += c.Size()
		}
		assert.Equal(t, 10, total)
	}
}
