// Copyright ©2024 The grb-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alloc

import "testing"

func TestAllocAccounting(t *testing.T) {
	a := New()
	a.SetTracking(true)

	xs, ok := AllocSlice[int64](a, 10)
	if !ok {
		t.Fatal("AllocSlice failed unexpectedly")
	}
	if got := a.Nmalloc(); got != 1 {
		t.Errorf("Nmalloc() = %d, want 1", got)
	}
	if got, want := a.Inuse(), int64(10*8); got != want {
		t.Errorf("Inuse() = %d, want %d", got, want)
	}

	ys, ok := AllocSlice[int64](a, 5)
	if !ok {
		t.Fatal("AllocSlice failed unexpectedly")
	}
	if got := a.Nmalloc(); got != 2 {
		t.Errorf("Nmalloc() = %d, want 2", got)
	}

	FreeSlice(a, xs)
	if got := a.Nmalloc(); got != 1 {
		t.Errorf("after Free, Nmalloc() = %d, want 1", got)
	}
	if got, want := a.Inuse(), int64(5*8); got != want {
		t.Errorf("after Free, Inuse() = %d, want %d", got, want)
	}

	FreeSlice(a, ys)
	if got := a.Nmalloc(); got != 0 {
		t.Errorf("after final Free, Nmalloc() = %d, want 0", got)
	}
	if got := a.Inuse(); got != 0 {
		t.Errorf("after final Free, Inuse() = %d, want 0", got)
	}
}

func TestAllocUntrackedAlwaysSucceeds(t *testing.T) {
	a := New()
	xs, ok := AllocSlice[int64](a, 1000)
	if !ok || len(xs) != 1000 {
		t.Fatalf("AllocSlice = (%v, %v), want a slice of length 1000 and ok", xs, ok)
	}
	if got := a.Nmalloc(); got != 0 {
		t.Errorf("untracked Nmalloc() = %d, want 0", got)
	}
}

func TestDebugFaultInjection(t *testing.T) {
	a := New()
	a.SetTracking(true)
	a.SetDebug(true)
	a.SetDebugCount(3)

	var oks []bool
	for i := 0; i < 4; i++ {
		_, ok := AllocSlice[int32](a, 4)
		oks = append(oks, ok)
	}
	want := []bool{true, true, false, false}
	for i, w := range want {
		if oks[i] != w {
			t.Errorf("allocation %d: ok = %v, want %v", i+1, oks[i], w)
		}
	}
	if got := a.Nmalloc(); got != 2 {
		t.Errorf("Nmalloc() = %d, want 2", got)
	}
}

func TestReallocSlicePreservesContent(t *testing.T) {
	a := New()
	a.SetTracking(true)

	xs, ok := AllocSlice[int](a, 3)
	if !ok {
		t.Fatal("AllocSlice failed")
	}
	xs[0], xs[1], xs[2] = 1, 2, 3

	grown, ok := ReallocSlice(a, xs, 6)
	if !ok {
		t.Fatal("ReallocSlice failed")
	}
	if len(grown) != 6 {
		t.Fatalf("len(grown) = %d, want 6", len(grown))
	}
	for i, want := range []int{1, 2, 3, 0, 0, 0} {
		if grown[i] != want {
			t.Errorf("grown[%d] = %d, want %d", i, grown[i], want)
		}
	}
	if got := a.Nmalloc(); got != 1 {
		t.Errorf("Nmalloc() = %d, want 1 (old allocation freed)", got)
	}
}

func TestCheckedSizeOverflow(t *testing.T) {
	if _, ok := checkedSize(MaxIndex, MaxIndex); ok {
		t.Error("checkedSize should reject a product overflow")
	}
	if _, ok := checkedSize(MaxIndex+1, 1); ok {
		t.Error("checkedSize should reject an operand above MaxIndex")
	}
	size, ok := checkedSize(0, 0)
	if !ok || size != 1 {
		t.Errorf("checkedSize(0, 0) = (%d, %v), want (1, true) after clamping to 1", size, ok)
	}
}
