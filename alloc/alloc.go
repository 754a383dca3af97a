// Copyright ©2024 The grb-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alloc

import (
	"sync"
	"unsafe"
)

// MaxIndex is the largest item count or item size Alloc will accept. It
// stands in for "the engine's index maximum": a request exceeding it, or
// one that overflows on multiplication, is treated as a sizing failure
// rather than attempted.
const MaxIndex = 1<<60 - 1

// Allocator tracks live allocation count and byte usage and can be told to
// deterministically fail the Nth allocation. The zero value is a valid,
// untracked allocator.
type Allocator struct {
	mu sync.Mutex

	tracking bool
	debug    bool
	fail     int64 // allocations remaining before a forced failure

	nmalloc int64
	inuse   int64
}

// New returns an untracked Allocator.
func New() *Allocator {
	return &Allocator{}
}

// SetTracking enables or disables live accounting. Test-only control.
func (a *Allocator) SetTracking(on bool) {
	a.mu.Lock()
	a.tracking = on
	a.mu.Unlock()
}

// SetDebug enables or disables fault injection. Test-only control.
func (a *Allocator) SetDebug(on bool) {
	a.mu.Lock()
	a.debug = on
	a.mu.Unlock()
}

// SetDebugCount arms fault injection to fail the Nth allocation attempted
// after this call (counting from 1). Test-only control; has no effect
// unless both tracking and debug are enabled.
func (a *Allocator) SetDebugCount(n int64) {
	a.mu.Lock()
	a.fail = n
	a.mu.Unlock()
}

// Nmalloc returns the number of outstanding tracked allocations.
func (a *Allocator) Nmalloc() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.nmalloc
}

// Inuse returns the number of bytes held by outstanding tracked allocations.
func (a *Allocator) Inuse() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.inuse
}

// checkedSize clamps nitems and itemSize to at least 1 and computes their
// product, reporting ok=false on overflow or on either operand exceeding
// MaxIndex.
func checkedSize(nitems, itemSize int64) (size int64, ok bool) {
	if nitems < 1 {
		nitems = 1
	}
	if itemSize < 1 {
		itemSize = 1
	}
	if nitems > MaxIndex || itemSize > MaxIndex {
		return 0, false
	}
	size = nitems * itemSize
	if size/itemSize != nitems {
		return 0, false
	}
	return size, true
}

// Alloc computes the byte size of nitems elements of itemSize and accounts
// for it. It does not itself produce a buffer: typed callers use AllocSlice,
// which calls Alloc for sizing and fault injection before calling make.
//
// If tracking is disabled the call always succeeds (size is still checked
// for overflow). If tracking and debug are both enabled, a critical section
// decrements the fault counter; a non-positive result pretends the
// allocation failed. On success, a second critical section increments the
// live-allocation and live-byte counters.
func (a *Allocator) Alloc(nitems, itemSize int64) (size int64, ok bool) {
	size, ok = checkedSize(nitems, itemSize)
	if !ok {
		return 0, false
	}

	a.mu.Lock()
	tracking := a.tracking
	fail := false
	if tracking && a.debug {
		a.fail--
		fail = a.fail <= 0
	}
	a.mu.Unlock()
	if fail {
		return 0, false
	}

	if tracking {
		a.mu.Lock()
		a.nmalloc++
		a.inuse += size
		a.mu.Unlock()
	}
	return size, true
}

// Free releases the accounting for an allocation of nitems elements of
// itemSize. It is the inverse of a successful Alloc.
func (a *Allocator) Free(nitems, itemSize int64) {
	a.mu.Lock()
	if !a.tracking {
		a.mu.Unlock()
		return
	}
	size, _ := checkedSize(nitems, itemSize)
	a.nmalloc--
	a.inuse -= size
	a.mu.Unlock()
}

// AllocSlice allocates a slice of n elements of T, accounting for it as n
// items of sizeof(T). The elements are zero-valued, matching make([]T, n).
func AllocSlice[T any](a *Allocator, n int) ([]T, bool) {
	var zero T
	if _, ok := a.Alloc(int64(n), int64(unsafe.Sizeof(zero))); !ok {
		return nil, false
	}
	if n < 1 {
		n = 0
	}
	return make([]T, n), true
}

// FreeSlice releases the accounting for a slice previously returned by
// AllocSlice or ReallocSlice.
func FreeSlice[T any](a *Allocator, s []T) {
	var zero T
	a.Free(int64(cap(s)), int64(unsafe.Sizeof(zero)))
}

// ReallocSlice grows or shrinks s to newN elements, preserving its content.
// Go slices cannot be resized in place, so this always allocates, copies,
// and frees the old backing array, exactly the fallback path the tracked
// allocator documents for a primitive that cannot resize in place. ok
// reports whether the new allocation succeeded; on failure s is returned
// unchanged and still valid.
func ReallocSlice[T any](a *Allocator, s []T, newN int) (out []T, ok bool) {
	grown, ok := AllocSlice[T](a, newN)
	if !ok {
		return s, false
	}
	copy(grown, s)
	FreeSlice(a, s)
	return grown, true
}
