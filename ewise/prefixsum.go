// Copyright ©2024 The grb-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ewise

import "github.com/grb-go/core/internal/par"

// prefixSum turns the per-item weights in work[0:n] (n = len(work)-1) into
// their exclusive cumulative sum: work[k] becomes the sum of the original
// work[0:k], work[0] becomes 0, and work[n] becomes the grand total. It
// returns that total.
//
// The scan is two-pass and blocked so that it is deterministic under
// parallel execution: each block first sums its own weights independently,
// the block totals are combined serially (cheap: one entry per thread),
// and then each block rewrites its own entries using its starting offset.
func prefixSum(ctx *par.Context, work []int64) int64 {
	n := len(work) - 1
	if n <= 0 {
		if len(work) == 1 {
			work[0] = 0
		}
		return 0
	}

	nthreads := ctx.Threads()
	if nthreads > n {
		nthreads = n
	}
	blockSize := (n + nthreads - 1) / nthreads
	nblocks := (n + blockSize - 1) / blockSize

	blockTotal := make([]int64, nblocks)
	par.For(ctx, nblocks, func(bstart, bend int) {
		for b := bstart; b < bend; b++ {
			start := b * blockSize
			end := start + blockSize
			if end > n {
				end = n
			}
			var sum int64
			for k := start; k < end; k++ {
				sum += work[k]
			}
			blockTotal[b] = sum
		}
	})

	var running int64
	blockOffset := make([]int64, nblocks)
	for b := 0; b < nblocks; b++ {
		blockOffset[b] = running
		running += blockTotal[b]
	}

	par.For(ctx, nblocks, func(bstart, bend int) {
		for b := bstart; b < bend; b++ {
			start := b * blockSize
			end := start + blockSize
			if end > n {
				end = n
			}
			acc := blockOffset[b]
			for k := start; k < end; k++ {
				w := work[k]
				work[k] = acc
				acc += w
			}
		}
	})

	work[n] = running
	return running
}
