package kmeansgo

import (
	"math"
	"math/rand"
	"time"

	"github.com/bits-and-blooms/bitset"
	"github.com/hupe1980/kmeansgo/internal/kmeans"
)

// Initializer chooses the initial centroids of a run.
//
// Implementations must return exactly k points copied by value from points
// and must only use rng for randomness.
type Initializer interface {
	Centroids(points []Point, k int, rng *rand.Rand) ([]Point, error)
}

// UniformInitializer picks k distinct input points uniformly at random.
// It is the default for engines.
type UniformInitializer struct{}

// Centroids implements Initializer.
func (UniformInitializer) Centroids(points []Point, k int, rng *rand.Rand) ([]Point, error) {
	return SampleUniform(points, k, rng)
}

// PlusPlusInitializer seeds with k-means++.
type PlusPlusInitializer struct{}

// Centroids implements Initializer.
func (PlusPlusInitializer) Centroids(points []Point, k int, rng *rand.Rand) ([]Point, error) {
	return KMeansPlusPlus(points, k, rng)
}

func checkSeedArgs(points []Point, k int) error {
	if _, err := validatePoints(points); err != nil {
		return err
	}
	if k <= 0 {
		return invalidArgument("k must be positive, got %d", k)
	}
	if k > len(points) {
		return invalidArgument("k (%d) cannot exceed the number of points (%d)", k, len(points))
	}
	return nil
}

func defaultRand(rng *rand.Rand) *rand.Rand {
	if rng == nil {
		return rand.New(rand.NewSource(time.Now().UnixNano())) // nolint gosec
	}
	return rng
}

// SampleUniform returns k points drawn uniformly without replacement.
//
// Indices are drawn with Floyd's algorithm, so the cost is O(k) draws
// regardless of len(points); the result order is shuffled.
func SampleUniform(points []Point, k int, rng *rand.Rand) ([]Point, error) {
	if err := checkSeedArgs(points, k); err != nil {
		return nil, err
	}
	rng = defaultRand(rng)

	n := len(points)
	chosen := bitset.New(uint(n))
	indices := make([]int, 0, k)

	for j := n - k; j < n; j++ {
		t := rng.Intn(j + 1)
		if chosen.Test(uint(t)) {
			t = j
		}
		chosen.Set(uint(t))
		indices = append(indices, t)
	}

	rng.Shuffle(len(indices), func(a, b int) {
		indices[a], indices[b] = indices[b], indices[a]
	})

	centroids := make([]Point, k)
	for i, idx := range indices {
		centroids[i] = points[idx]
	}

	return centroids, nil
}

// KMeansPlusPlus chooses k centroids with k-means++ seeding.
//
// The first centroid is a uniformly random input point. Each further centroid
// is drawn with probability proportional to the squared distance between a
// point and its nearest already-chosen centroid. Returns ErrInvalidArgument
// for an empty point set, k <= 0 or k > len(points).
func KMeansPlusPlus(points []Point, k int, rng *rand.Rand) ([]Point, error) {
	if err := checkSeedArgs(points, k); err != nil {
		return nil, err
	}
	rng = defaultRand(rng)

	vecs := coordsOf(points)
	centroids := make([]Point, 0, k)
	centroids = append(centroids, points[rng.Intn(len(points))])

	minDist := make([]float64, len(points))
	for i := range minDist {
		minDist[i] = math.MaxFloat64
	}

	for len(centroids) < k {
		// Only the newest centroid can lower a point's nearest distance.
		total := kmeans.UpdateMinDistances(minDist, vecs, centroids[len(centroids)-1].coords)
		idx := kmeans.SampleWeighted(minDist, rng.Float64()*total)
		centroids = append(centroids, points[idx])
	}

	return centroids, nil
}
