package observer

import (
	"context"
	"time"

	"github.com/hupe1980/kmeansgo"
	"golang.org/x/time/rate"
)

// Paced forwards iteration events to another observer no more often than
// once per interval. The run-complete event is forwarded immediately.
//
// Because observers are called synchronously, pacing here slows the engine
// run down; that is the point when animating. Once ctx is done, events are
// forwarded without waiting.
type Paced struct {
	ctx     context.Context
	next    kmeansgo.Observer
	limiter *rate.Limiter
}

var _ kmeansgo.Observer = (*Paced)(nil)

// NewPaced wraps next. An interval <= 0 disables pacing.
func NewPaced(ctx context.Context, next kmeansgo.Observer, interval time.Duration) *Paced {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &Paced{
		ctx:     ctx,
		next:    next,
		limiter: rate.NewLimiter(limit, 1),
	}
}

// OnIterationComplete implements kmeansgo.Observer.
func (p *Paced) OnIterationComplete(snapshot []kmeansgo.Cluster, iteration int, sse float64) {
	// Wait only fails once ctx is done; the event is still delivered.
	_ = p.limiter.Wait(p.ctx)
	p.next.OnIterationComplete(snapshot, iteration, sse)
}

// OnRunComplete implements kmeansgo.Observer.
func (p *Paced) OnRunComplete(final []kmeansgo.Cluster, sse float64, elapsed time.Duration, iterations int) {
	p.next.OnRunComplete(final, sse, elapsed, iterations)
}
