package observer

import (
	"slices"
	"sync"
	"time"

	"github.com/hupe1980/kmeansgo"
)

// Recorder stores every notification it receives, including member points.
// It is safe to read from another goroutine while a run is in progress.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

var _ kmeansgo.Observer = (*Recorder)(nil)

// OnIterationComplete implements kmeansgo.Observer.
func (r *Recorder) OnIterationComplete(snapshot []kmeansgo.Cluster, iteration int, sse float64) {
	r.append(newEvent(EventIteration, snapshot, iteration, sse, 0, true))
}

// OnRunComplete implements kmeansgo.Observer.
func (r *Recorder) OnRunComplete(final []kmeansgo.Cluster, sse float64, elapsed time.Duration, iterations int) {
	r.append(newEvent(EventComplete, final, iterations, sse, elapsed, true))
}

func (r *Recorder) append(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

// Events returns a copy of the recorded events in arrival order.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.events)
}

// Iterations returns only the iteration events.
func (r *Recorder) Iterations() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Event, 0, len(r.events))
	for _, ev := range r.events {
		if ev.Type == EventIteration {
			out = append(out, ev)
		}
	}
	return out
}

// Final returns the completion event, if the run has completed.
func (r *Recorder) Final() (Event, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Type == EventComplete {
			return r.events[i], true
		}
	}
	return Event{}, false
}

// Reset drops all recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
