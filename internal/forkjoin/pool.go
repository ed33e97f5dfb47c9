package forkjoin

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Pool bounds how many goroutines a Reduce tree may use at once.
// A nil *Pool runs everything on the calling goroutine.
type Pool struct {
	parallelism int

	// slots counts forked workers; the calling goroutine is not included.
	slots *semaphore.Weighted

	forks atomic.Int64
}

// NewPool creates a pool for the given parallelism.
// If parallelism <= 0, runtime.GOMAXPROCS(0) is used.
func NewPool(parallelism int) *Pool {
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}

	p := &Pool{parallelism: parallelism}
	if parallelism > 1 {
		p.slots = semaphore.NewWeighted(int64(parallelism - 1))
	}

	return p
}

// Parallelism returns the maximum number of goroutines a Reduce may occupy,
// including the caller.
func (p *Pool) Parallelism() int {
	if p == nil {
		return 1
	}
	return p.parallelism
}

// Forks returns how many subtasks have been handed to another goroutine
// since the pool was created.
func (p *Pool) Forks() int64 {
	if p == nil {
		return 0
	}
	return p.forks.Load()
}

func (p *Pool) tryFork() bool {
	if p == nil || p.slots == nil {
		return false
	}
	if !p.slots.TryAcquire(1) {
		return false
	}
	p.forks.Add(1)
	return true
}

func (p *Pool) release() {
	p.slots.Release(1)
}

// Reduce evaluates leaf over [lo, hi) split into pieces of at most cutoff
// indices and combines the partial results with merge.
//
// merge always receives the result of the lower half first. When merge is
// associative the result is independent of where the range was split and of
// which halves ran concurrently. leaf must only touch state that no other
// leaf touches; the scheduler adds no synchronization beyond the join.
func Reduce[T any](p *Pool, lo, hi, cutoff int, leaf func(lo, hi int) T, merge func(left, right T) T) T {
	if cutoff < 1 {
		cutoff = 1
	}
	if hi-lo <= cutoff {
		return leaf(lo, hi)
	}

	mid := lo + (hi-lo)/2

	if !p.tryFork() {
		left := Reduce(p, lo, mid, cutoff, leaf, merge)
		right := Reduce(p, mid, hi, cutoff, leaf, merge)
		return merge(left, right)
	}

	var (
		g    errgroup.Group
		left T
	)

	g.Go(func() error {
		defer p.release()
		left = Reduce(p, lo, mid, cutoff, leaf, merge)
		return nil
	})

	right := Reduce(p, mid, hi, cutoff, leaf, merge)

	// The forked half never reports an error; Wait is the join point.
	_ = g.Wait()

	return merge(left, right)
}
