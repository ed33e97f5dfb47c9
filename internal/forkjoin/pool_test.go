package forkjoin

import (
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sumLeaf(values []int) func(lo, hi int) int {
	return func(lo, hi int) int {
		s := 0
		for i := lo; i < hi; i++ {
			s += values[i]
		}
		return s
	}
}

func add(a, b int) int { return a + b }

func TestReduce_Sum(t *testing.T) {
	values := make([]int, 10_000)
	expected := 0
	for i := range values {
		values[i] = i
		expected += i
	}

	for _, cutoff := range []int{1, 7, 100, 1000, 20_000} {
		got := Reduce(NewPool(4), 0, len(values), cutoff, sumLeaf(values), add)
		assert.Equal(t, expected, got, "cutoff=%d", cutoff)
	}
}

func TestReduce_NilPoolRunsInline(t *testing.T) {
	var p *Pool

	got := Reduce(p, 0, 100, 3, func(lo, hi int) int { return hi - lo }, add)
	assert.Equal(t, 100, got)
	assert.Equal(t, 1, p.Parallelism())
	assert.Equal(t, int64(0), p.Forks())
}

func TestReduce_PreservesOrder(t *testing.T) {
	leaf := func(lo, hi int) []int {
		out := make([]int, 0, hi-lo)
		for i := lo; i < hi; i++ {
			out = append(out, i)
		}
		return out
	}
	concat := func(a, b []int) []int { return append(a, b...) }

	got := Reduce(NewPool(8), 0, 5000, 13, leaf, concat)
	require.Len(t, got, 5000)
	for i, v := range got {
		if v != i {
			t.Fatalf("position %d holds %d", i, v)
		}
	}
}

func TestReduce_EmptyRange(t *testing.T) {
	calls := 0
	got := Reduce(NewPool(2), 5, 5, 10, func(lo, hi int) int {
		calls++
		return hi - lo
	}, add)

	assert.Equal(t, 0, got)
	assert.Equal(t, 1, calls)
}

func TestReduce_BoundedWorkers(t *testing.T) {
	const parallelism = 3

	var live, peak atomic.Int64
	leaf := func(lo, hi int) int {
		n := live.Add(1)
		for {
			old := peak.Load()
			if n <= old || peak.CompareAndSwap(old, n) {
				break
			}
		}
		runtime.Gosched()
		live.Add(-1)
		return hi - lo
	}

	p := NewPool(parallelism)
	got := Reduce(p, 0, 4096, 1, leaf, add)

	assert.Equal(t, 4096, got)
	assert.LessOrEqual(t, peak.Load(), int64(parallelism))
}

func TestReduce_SingleWorkerNeverForks(t *testing.T) {
	p := NewPool(1)
	got := Reduce(p, 0, 1000, 1, func(lo, hi int) int { return hi - lo }, add)

	assert.Equal(t, 1000, got)
	assert.Equal(t, int64(0), p.Forks())
}

func TestNewPool_Default(t *testing.T) {
	p := NewPool(0)
	assert.Equal(t, runtime.GOMAXPROCS(0), p.Parallelism())
}
