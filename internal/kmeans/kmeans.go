package kmeans

import (
	"math"
	"slices"

	"github.com/hupe1980/kmeansgo/distance"
	"gonum.org/v1/gonum/floats"
)

// Nearest finds the closest centroid for a vector by linear scan.
//
// Ties resolve to the lowest centroid index: a later centroid only wins when
// it is strictly closer. Returns -1 if centroids is empty.
func Nearest(vec []float64, centroids [][]float64) (int, float64) {
	best := -1
	minDist := math.MaxFloat64

	for j, center := range centroids {
		d := distance.SquaredL2(vec, center)
		if best < 0 || d < minDist {
			minDist = d
			best = j
		}
	}

	return best, minDist
}

// Mean writes the per-dimension arithmetic mean of members into dst.
// It returns false and leaves dst untouched when members is empty.
func Mean(dst []float64, members [][]float64) bool {
	if len(members) == 0 {
		return false
	}

	for i := range dst {
		dst[i] = 0
	}
	for _, m := range members {
		floats.Add(dst, m)
	}
	floats.Scale(1/float64(len(members)), dst)

	return true
}

// UpdateMinDistances lowers dst[i] to the squared distance between
// vectors[i] and centroid when that is smaller, and returns the new sum of dst.
//
// Initialize dst with math.MaxFloat64 (or +Inf) before the first call.
func UpdateMinDistances(dst []float64, vectors [][]float64, centroid []float64) float64 {
	var total float64
	for i, vec := range vectors {
		d := distance.SquaredL2(vec, centroid)
		if d < dst[i] {
			dst[i] = d
		}
		total += dst[i]
	}
	return total
}

// SampleWeighted picks the first index with positive weight whose cumulative
// weight reaches target. It falls back to the last index when every weight is
// zero or rounding leaves target above the running sum.
func SampleWeighted(weights []float64, target float64) int {
	var cumulative float64
	for i, w := range weights {
		cumulative += w
		if w > 0 && cumulative >= target {
			return i
		}
	}
	return len(weights) - 1
}

type centroidDist struct {
	id   int
	dist float64
}

// FindClosestCentroids returns the indices of the n closest centroids to the
// query vector, nearest first. Equal distances keep index order.
func FindClosestCentroids(query []float64, centroids [][]float64, n int) []int {
	k := len(centroids)
	if n > k {
		n = k
	}
	if n <= 0 {
		return nil
	}

	dists := make([]centroidDist, k)
	for i, center := range centroids {
		dists[i] = centroidDist{id: i, dist: distance.SquaredL2(query, center)}
	}

	slices.SortStableFunc(dists, func(a, b centroidDist) int {
		switch {
		case a.dist < b.dist:
			return -1
		case a.dist > b.dist:
			return 1
		default:
			return 0
		}
	})

	result := make([]int, n)
	for i := range n {
		result[i] = dists[i].id
	}

	return result
}
