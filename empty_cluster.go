package kmeansgo

import (
	"math/rand"
	"slices"
)

// EmptyClusterPolicy repairs clusters that ended an assignment phase with no
// members. Engines call Apply after assignment and before centroid
// recomputation, always from a single goroutine.
type EmptyClusterPolicy interface {
	// Apply returns the number of clusters it reseeded.
	Apply(clusters []Cluster, points []Point, rng *rand.Rand) int
}

// ReseedFromLargest is the default EmptyClusterPolicy.
//
// An empty cluster takes a uniformly random member of the currently largest
// cluster (lowest index on ties) as its new centroid, and that member moves
// over with it, so the largest cluster gives up one point and the empty one
// gains it. If every cluster is empty the centroid moves to a uniformly
// random input point instead.
type ReseedFromLargest struct{}

// Apply implements EmptyClusterPolicy.
func (ReseedFromLargest) Apply(clusters []Cluster, points []Point, rng *rand.Rand) int {
	reseeded := 0

	for i := range clusters {
		if len(clusters[i].Points) > 0 {
			continue
		}

		donor := largestCluster(clusters)
		if donor < 0 {
			if len(points) == 0 {
				continue
			}
			clusters[i].Centroid = points[rng.Intn(len(points))]
			reseeded++
			continue
		}

		members := clusters[donor].Points
		m := rng.Intn(len(members))
		chosen := members[m]

		clusters[i].Centroid = chosen
		if len(members) > 1 {
			clusters[donor].Points = slices.Delete(members, m, m+1)
			clusters[i].Points = append(clusters[i].Points, chosen)
		}
		reseeded++
	}

	return reseeded
}

// largestCluster returns the index of the cluster with the most members, or
// -1 if all are empty.
func largestCluster(clusters []Cluster) int {
	best, size := -1, 0
	for i, c := range clusters {
		if len(c.Points) > size {
			best, size = i, len(c.Points)
		}
	}
	return best
}
