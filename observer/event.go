package observer

import (
	"time"

	"github.com/hupe1980/kmeansgo"
)

// EventType distinguishes per-iteration events from the final one.
type EventType string

const (
	EventIteration EventType = "iteration"
	EventComplete  EventType = "complete"
)

// Event is a single notification in serializable form.
type Event struct {
	Type      EventType          `json:"type"`
	Iteration int                `json:"iteration"`
	SSE       float64            `json:"sse"`
	Elapsed   time.Duration      `json:"elapsed,omitempty"`
	Centroids []kmeansgo.Point   `json:"centroids"`
	Sizes     []int              `json:"sizes"`
	Clusters  []kmeansgo.Cluster `json:"clusters,omitempty"`
}

func newEvent(typ EventType, clusters []kmeansgo.Cluster, iteration int, sse float64, elapsed time.Duration, members bool) Event {
	ev := Event{
		Type:      typ,
		Iteration: iteration,
		SSE:       sse,
		Elapsed:   elapsed,
		Centroids: make([]kmeansgo.Point, len(clusters)),
		Sizes:     make([]int, len(clusters)),
	}
	for i, c := range clusters {
		ev.Centroids[i] = c.Centroid
		ev.Sizes[i] = c.Size()
	}
	if members {
		ev.Clusters = clusters
	}
	return ev
}
