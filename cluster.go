package kmeansgo

import (
	"fmt"

	"github.com/hupe1980/kmeansgo/internal/kmeans"
)

// Cluster is a centroid together with the points currently assigned to it.
//
// Engines rebuild Points from scratch on every iteration. Clusters handed out
// by an engine (results, observer snapshots) are copies and may be kept or
// modified by the caller.
type Cluster struct {
	Centroid Point   `json:"centroid"`
	Points   []Point `json:"points"`
}

// Size returns the number of member points.
func (c Cluster) Size() int { return len(c.Points) }

// Clone returns a copy whose member slice does not alias c's.
func (c Cluster) Clone() Cluster {
	members := make([]Point, len(c.Points))
	copy(members, c.Points)
	return Cluster{Centroid: c.Centroid, Points: members}
}

func (c Cluster) String() string {
	return fmt.Sprintf("Cluster{centroid=%s, points=%d}", c.Centroid, len(c.Points))
}

// recompute moves the centroid to the mean of the members. A cluster without
// members keeps its centroid.
func (c *Cluster) recompute(dim int) {
	if len(c.Points) == 0 {
		return
	}

	mean := make([]float64, dim)
	kmeans.Mean(mean, coordsOf(c.Points))
	c.Centroid = Point{coords: mean}
}

func newClusters(centroids []Point) []Cluster {
	clusters := make([]Cluster, len(centroids))
	for i, c := range centroids {
		clusters[i] = Cluster{Centroid: c}
	}
	return clusters
}

func cloneClusters(clusters []Cluster) []Cluster {
	if clusters == nil {
		return nil
	}
	out := make([]Cluster, len(clusters))
	for i, c := range clusters {
		out[i] = c.Clone()
	}
	return out
}

func centroidsOf(clusters []Cluster) [][]float64 {
	vecs := make([][]float64, len(clusters))
	for i, c := range clusters {
		vecs[i] = c.Centroid.coords
	}
	return vecs
}
