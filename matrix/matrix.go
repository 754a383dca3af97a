// Copyright ©2024 The grb-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix

import "unsafe"

// Matrix is a read-only structural view of a sparse matrix, addressed in
// compressed-vector form. A standard matrix stores vector k at column k; a
// hypersparse matrix lists the actual column index of stored vector k in H;
// a slice stores vector k at column HFirst+k and carries no H at all.
//
// Values, in X, are opaque to this package: partitioning and zombie marking
// never read them.
type Matrix struct {
	Vlen int64 // length of each stored vector
	Nvec int64 // number of stored vectors

	H      []int64 // nil unless IsHyper; H[k] is the column of stored vector k
	HFirst int64   // used only when IsSlice

	IsHyper bool
	IsSlice bool

	P []int64 // vector pointers, length Nvec+1; vector k occupies [P[k], P[k+1])
	I []int64 // row indices, length P[Nvec]
	X any     // values, opaque

	Jumbled  bool
	Nzombies int64
}

// VectorColumn returns the column that stored vector k corresponds to.
func (m *Matrix) VectorColumn(k int64) int64 {
	switch {
	case m.IsHyper:
		return m.H[k]
	case m.IsSlice:
		return m.HFirst + k
	default:
		return k
	}
}

// VecNNZ returns the number of stored entries in vector k.
func (m *Matrix) VecNNZ(k int64) int64 {
	if k < 0 {
		return 0
	}
	return m.P[k+1] - m.P[k]
}

// Range returns the half-open [start, end) slice of m.I (and implicitly
// m.X) occupied by vector k, or (0, 0) if k < 0 (no matching vector).
func (m *Matrix) Range(k int64) (start, end int64) {
	if k < 0 {
		return 0, 0
	}
	return m.P[k], m.P[k+1]
}

// AliasesH reports whether other is the same backing array as m.H, as when
// a caller passes an output hyperlist that was borrowed directly from this
// matrix's own hyperlist. Detecting the alias lets a caller index the other
// matrix by k directly instead of translating through column numbers.
func (m *Matrix) AliasesH(other []int64) bool {
	if m.H == nil || other == nil || len(m.H) == 0 || len(other) == 0 {
		return false
	}
	return unsafe.SliceData(m.H) == unsafe.SliceData(other)
}

// Shadow is a structural index-only matrix whose value array holds, at
// position p, the back-pointer PC[p] into a target matrix's entry array.
// It is produced by a sort-free subref over the intersection C(I,J) and is
// consumed only through PC; its own row pattern is never inspected here.
type Shadow struct {
	Nnz int64
	PC  []int64 // back-pointers into the target matrix's I array, length Nnz
}

// Flip returns the zombie encoding of a live row index i, or the live index
// of a flipped one. Flip is its own inverse: Flip(Flip(i)) == i for every
// non-negative i, and the result is always negative and distinct from -1.
func Flip(i int64) int64 {
	return -i - 2
}

// IsZombie reports whether i is a flipped (tombstoned) row index.
func IsZombie(i int64) bool {
	return i < 0
}
