package testutil

import (
	"math"
	"math/rand"
	"sort"
	"sync"

	"gonum.org/v1/gonum/floats"
)

// RNG is a seeded, mutex-guarded source of test data.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset rewinds the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Rand returns a *rand.Rand seeded from this RNG, for seeding functions that
// take one.
func (r *RNG) Rand() *rand.Rand {
	r.mu.Lock()
	defer r.mu.Unlock()
	return rand.New(rand.NewSource(r.rand.Int63())) // nolint gosec
}

// UniformVectors returns num points with coordinates in [0, 1).
func (r *RNG) UniformVectors(num, dim int) [][]float64 {
	return r.UniformRangeVectors(num, dim, 0, 1)
}

// UniformRangeVectors returns num points with coordinates in
// [minVal, maxVal). All points share one backing array.
func (r *RNG) UniformRangeVectors(num, dim int, minVal, maxVal float64) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	span := maxVal - minVal
	return r.vectorsLocked(num, dim, func(int, int) float64 {
		return minVal + r.rand.Float64()*span
	})
}

// ClusteredVectors returns num points scattered around clusters random
// centers on the unit sphere. Point i belongs to center i%clusters.
func (r *RNG) ClusteredVectors(num, dim, clusters int, spread float64) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	centers := r.vectorsLocked(clusters, dim, func(int, int) float64 {
		return r.rand.NormFloat64()
	})
	for _, c := range centers {
		if norm := floats.Norm(c, 2); norm > 0 {
			floats.Scale(1/norm, c)
		}
	}

	return r.vectorsLocked(num, dim, func(i, j int) float64 {
		return centers[i%clusters][j] + r.rand.NormFloat64()*spread
	})
}

// Blobs generates perCenter points around each of the given centers with
// Gaussian noise of the given standard deviation. It returns the points
// grouped by center and the center index of every point.
func (r *RNG) Blobs(centers [][]float64, perCenter int, spread float64) ([][]float64, []int) {
	labels := make([]int, 0, len(centers)*perCenter)
	for c := range centers {
		for range perCenter {
			labels = append(labels, c)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.aroundLocked(centers, labels, spread), labels
}

// SkewedBlobs generates num points around the given centers. Center c is
// chosen with probability proportional to 1/(c+1)^s, so the first centers
// own most of the points. It returns the points and the center index of
// every point.
func (r *RNG) SkewedBlobs(centers [][]float64, num int, spread, s float64) ([][]float64, []int) {
	cumulative := make([]float64, len(centers))
	var total float64
	for c := range centers {
		total += math.Pow(float64(c+1), -s)
		cumulative[c] = total
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	labels := make([]int, num)
	for i := range labels {
		u := r.rand.Float64() * total
		labels[i] = min(sort.SearchFloat64s(cumulative, u), len(centers)-1)
	}

	return r.aroundLocked(centers, labels, spread), labels
}

// Shuffle permutes vectors in place.
func (r *RNG) Shuffle(vectors [][]float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Shuffle(len(vectors), func(i, j int) {
		vectors[i], vectors[j] = vectors[j], vectors[i]
	})
}

func (r *RNG) vectorsLocked(num, dim int, coord func(i, j int) float64) [][]float64 {
	data := make([]float64, num*dim)
	vectors := make([][]float64, num)
	for i := range vectors {
		vec := data[i*dim : (i+1)*dim : (i+1)*dim]
		for j := range vec {
			vec[j] = coord(i, j)
		}
		vectors[i] = vec
	}
	return vectors
}

func (r *RNG) aroundLocked(centers [][]float64, labels []int, spread float64) [][]float64 {
	vectors := make([][]float64, len(labels))
	for i, c := range labels {
		vec := make([]float64, len(centers[c]))
		for j := range vec {
			vec[j] = centers[c][j] + r.rand.NormFloat64()*spread
		}
		vectors[i] = vec
	}
	return vectors
}

// GridCenters returns n centers on the first axis, spaced apart by
// separation, in the given dimension.
func GridCenters(n, dim int, separation float64) [][]float64 {
	centers := make([][]float64, n)
	for i := range centers {
		centers[i] = make([]float64, dim)
		centers[i][0] = float64(i) * separation
	}
	return centers
}

// Repeated returns n independent copies of vec.
func Repeated(vec []float64, n int) [][]float64 {
	vectors := make([][]float64, n)
	for i := range vectors {
		vectors[i] = append([]float64(nil), vec...)
	}
	return vectors
}

// BruteForceNearest returns the index of the centroid nearest to vec, the
// lowest index on ties, or -1 if there are no centroids.
func BruteForceNearest(vec []float64, centroids [][]float64) int {
	best, bestDist := -1, math.Inf(1)
	for i, c := range centroids {
		if d := floats.Distance(vec, c, 2); best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// BruteForceSSE assigns every vector to its nearest centroid and returns the
// sum of squared distances.
func BruteForceSSE(vectors, centroids [][]float64) float64 {
	var sse float64
	for _, v := range vectors {
		i := BruteForceNearest(v, centroids)
		d := floats.Distance(v, centroids[i], 2)
		sse += d * d
	}
	return sse
}
