// Package forkjoin provides a bounded divide-and-conquer scheduler.
//
// Reduce splits an index range in half until it falls below a cutoff, runs a
// leaf function on each piece and merges results pairwise on the way back up.
// A split forks its left half onto another goroutine only when the Pool has
// a free worker slot; otherwise it computes both halves inline. Splits never
// block waiting for a slot, so nested forks cannot deadlock and the number of
// live workers never exceeds the configured parallelism.
package forkjoin
