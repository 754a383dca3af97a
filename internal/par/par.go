// Copyright ©2024 The grb-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package par is the bulk-synchronous fork-join primitive assumed by the
// scheduler and the zombie marker: a parallel-for with a static chunk
// schedule and a thread count fixed per call, plus a scalar "+" reduction.
// There is no task migration, no work stealing and no suspension inside a
// chunk; every call is a single barrier at its end.
package par

import "sync"

// Context carries the degree of parallelism available to an operation.
// A nil Context, or one with Nthreads <= 0, means "run serially".
type Context struct {
	Nthreads int
}

// Threads returns the effective thread count, never less than 1.
func (c *Context) Threads() int {
	if c == nil || c.Nthreads < 1 {
		return 1
	}
	return c.Nthreads
}

// chunks divides n work items among nthreads static, contiguous,
// near-equal chunks, skipping any that would be empty.
func chunks(n, nthreads int) [][2]int {
	if nthreads > n {
		nthreads = n
	}
	if nthreads < 1 {
		nthreads = 1
	}
	size := (n + nthreads - 1) / nthreads
	var out [][2]int
	for start := 0; start < n; start += size {
		end := start + size
		if end > n {
			end = n
		}
		out = append(out, [2]int{start, end})
	}
	return out
}

// For runs body over disjoint, contiguous chunks of [0, n), blocking until
// every chunk has completed. With a single effective thread, or n small
// enough that chunking would leave only one chunk, body runs inline on the
// calling goroutine without ever forking.
func For(ctx *Context, n int, body func(start, end int)) {
	if n <= 0 {
		return
	}
	cs := chunks(n, ctx.Threads())
	if len(cs) <= 1 {
		body(0, n)
		return
	}
	var wg sync.WaitGroup
	wg.Add(len(cs))
	for _, c := range cs {
		go func(start, end int) {
			defer wg.Done()
			body(start, end)
		}(c[0], c[1])
	}
	wg.Wait()
}

// ReduceInt64Sum runs body over disjoint chunks of [0, n) in parallel and
// returns the sum of the chunks' partial results: a scalar "+" reduction
// over an associative-commutative combine, order-independent by construction.
func ReduceInt64Sum(ctx *Context, n int, body func(start, end int) int64) int64 {
	if n <= 0 {
		return 0
	}
	cs := chunks(n, ctx.Threads())
	if len(cs) <= 1 {
		return body(0, n)
	}
	partials := make([]int64, len(cs))
	var wg sync.WaitGroup
	wg.Add(len(cs))
	for i, c := range cs {
		go func(i, start, end int) {
			defer wg.Done()
			partials[i] = body(start, end)
		}(i, c[0], c[1])
	}
	wg.Wait()
	var total int64
	for _, p := range partials {
		total += p
	}
	return total
}
