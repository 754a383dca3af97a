// Copyright ©2024 The grb-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zombie

import (
	"github.com/grb-go/core/internal/par"
	"github.com/grb-go/core/matrix"
)

// Mark walks s's back-pointers in parallel and flips the row index of
// every referenced entry of c that is not already a zombie, then adds the
// count of newly-flipped entries to c.Nzombies.
//
// Different positions in s map to distinct positions in c.I, because s is
// a structural subset of C(I,J) built by a sort-free subref, so the
// parallel writes never race: the only shared mutable state is the
// reduced counter, combined with an associative-commutative "+" and so
// independent of the order the chunks finish in.
//
// Calling Mark twice on the same (s, c) pair is idempotent: the second
// pass finds every entry already flipped, writes nothing, and adds 0 to
// Nzombies. Mark has no mask to consult because the mask it serves is
// structurally empty and complemented, and it never fails: c must not be
// jumbled at entry, and that precondition is the caller's to uphold.
func Mark(c *matrix.Matrix, s *matrix.Shadow, ctx *par.Context) {
	newly := par.ReduceInt64Sum(ctx, int(s.Nnz), func(start, end int) int64 {
		var local int64
		for p := start; p < end; p++ {
			pc := s.PC[p]
			i := c.I[pc]
			if !matrix.IsZombie(i) {
				c.I[pc] = matrix.Flip(i)
				local++
			}
		}
		return local
	})
	c.Nzombies += newly
}
