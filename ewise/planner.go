// Copyright ©2024 The grb-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ewise

import (
	"github.com/grb-go/core/alloc"
	"github.com/grb-go/core/internal/par"
	"github.com/grb-go/core/matrix"
)

// minTargetWork is the floor on the work quantum used to pick the number
// of coarse tasks and the fine subdivision of a heavy vector; it prevents
// tiny tasks in very sparse inputs.
const minTargetWork = 4096

// oversubscription is the factor applied to the thread count when sizing
// the target task size, so the task count oversubscribes the thread pool
// enough for the bulk-synchronous scheduler to load-balance.
const oversubscription = 32

// Slice partitions the Cnvec output vectors of an element-wise operation
// between A and B into a TaskList of coarse and fine tasks balanced by a
// cheap structural work estimate (stored vector nnz, not operator cost).
//
// ch is the output's optional shallow hyperlist; when non-nil it may alias
// a.H or b.H, which Slice detects to avoid indirection. cToA and cToB are
// optional index translations from output vector k to the matching stored
// vector in a (resp. b), or nil if the corresponding input is standard.
// a and b's values are never read.
//
// On success the returned TaskList's ownership passes to the caller. On
// ErrOutOfMemory, every resource Slice allocated has already been freed.
func Slice(a, b *matrix.Matrix, cnvec int64, ch, cToA, cToB []int64, alc *alloc.Allocator, ctx *par.Context) (*TaskList, error) {
	if cnvec == 0 {
		return newTaskList(alc, 1)
	}
	if ctx.Threads() == 1 {
		tl, err := newTaskList(alc, 1)
		if err != nil {
			return nil, err
		}
		if err := tl.appendCoarse(0, cnvec-1); err != nil {
			tl.free()
			return nil, err
		}
		return tl, nil
	}

	cwork, ok := alloc.AllocSlice[int64](alc, int(cnvec+1))
	if !ok {
		return nil, ErrOutOfMemory
	}

	chAliasesA := a.AliasesH(ch)
	chAliasesB := b.AliasesH(ch)

	par.For(ctx, int(cnvec), func(start, end int) {
		for kk := start; kk < end; kk++ {
			k := int64(kk)
			j := k
			if ch != nil {
				j = ch[k]
			}
			kA := resolveVector(cToA, chAliasesA, k, j)
			kB := resolveVector(cToB, chAliasesB, k, j)
			cwork[k] = a.VecNNZ(kA) + b.VecNNZ(kB) + 1
		}
	})

	cworkTotal := prefixSum(ctx, cwork)

	nthreads := int64(ctx.Threads())
	target := int64(cworkTotal / (oversubscription * nthreads))
	if target < minTargetWork {
		target = minTargetWork
	}
	ntasks1 := cworkTotal / target
	if ntasks1 < 1 {
		ntasks1 = 1
	}

	coarse, ok := alloc.AllocSlice[int64](alc, int(ntasks1+1))
	if !ok {
		alloc.FreeSlice(alc, cwork)
		return nil, ErrOutOfMemory
	}
	coarse[0] = 0
	coarse[ntasks1] = cnvec
	var cursor int64
	for t := int64(1); t < ntasks1; t++ {
		cursor = trimSearch(t*target, cwork, cursor, cnvec)
		coarse[t] = cursor
	}

	tl, err := newTaskList(alc, ntasks1)
	if err != nil {
		alloc.FreeSlice(alc, cwork)
		alloc.FreeSlice(alc, coarse)
		return nil, err
	}

	fail := func(err error) (*TaskList, error) {
		tl.free()
		alloc.FreeSlice(alc, cwork)
		alloc.FreeSlice(alc, coarse)
		return nil, err
	}

	for t := int64(0); t < ntasks1; t++ {
		k := coarse[t]
		klast := coarse[t+1] - 1
		if k >= cnvec {
			break
		}
		if k < klast {
			if err := tl.appendCoarse(k, klast); err != nil {
				return fail(err)
			}
			continue
		}

		// k == klast: this slice holds at most one vector. Strip it out of
		// every later coarse slice that still starts here, so no coarse
		// task claims it too, then promote it to fine-grained parallelism.
		for tt := t + 1; tt < ntasks1 && coarse[tt] == k; tt++ {
			coarse[tt] = k + 1
		}

		j := k
		if ch != nil {
			j = ch[k]
		}
		kA := resolveVector(cToA, chAliasesA, k, j)
		kB := resolveVector(cToB, chAliasesB, k, j)
		aStart, aEnd := a.Range(kA)
		bStart, bEnd := b.Range(kB)

		ckwork := cwork[k+1] - cwork[k]
		nfine := ckwork / target
		if nfine < 1 {
			nfine = 1
		}
		if nfine == 1 {
			if err := tl.appendCoarse(k, k); err != nil {
				return fail(err)
			}
			continue
		}

		if err := tl.appendFine(k, aStart, bStart); err != nil {
			return fail(err)
		}
		// Cut tf falls after tf/nfine of the vector's work, counted from the
		// start of the vector, so successive cuts are non-decreasing.
		for tf := int64(1); tf < nfine; tf++ {
			targetWork := (tf * ckwork) / nfine
			_, npa, npb := sliceVector(aStart, aEnd, a.I, bStart, bEnd, b.I, a.Vlen, targetWork)
			if err := tl.appendFine(k, npa, npb); err != nil {
				return fail(err)
			}
		}
		if err := tl.setNextFields(aEnd, bEnd); err != nil {
			return fail(err)
		}
	}

	alloc.FreeSlice(alc, cwork)
	alloc.FreeSlice(alc, coarse)
	return tl, nil
}

// resolveVector picks the stored-vector index in the matching input for
// output vector k (column j), in order: an explicit C-to-input translation;
// else k itself, if the output's hyperlist aliases the input's; else j,
// assuming the input is standard. It returns -1 if cToX says there is no
// matching vector.
func resolveVector(cToX []int64, chAliasesX bool, k, j int64) int64 {
	switch {
	case cToX != nil:
		return cToX[k]
	case chAliasesX:
		return k
	default:
		return j
	}
}
