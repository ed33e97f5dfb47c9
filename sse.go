package kmeansgo

import "github.com/hupe1980/kmeansgo/distance"

// SSE returns the sum over all clusters of the squared Euclidean distances
// between each member point and its cluster's centroid.
func SSE(clusters []Cluster) float64 {
	var sse float64
	for _, c := range clusters {
		for _, p := range c.Points {
			sse += distance.SquaredL2(p.coords, c.Centroid.coords)
		}
	}
	return sse
}
