// Copyright ©2024 The grb-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ewise

import (
	"testing"

	"github.com/grb-go/core/internal/par"
)

func TestPrefixSumIdentityOnZeros(t *testing.T) {
	work := make([]int64, 101)
	total := prefixSum(&par.Context{Nthreads: 4}, work)
	if total != 0 {
		t.Errorf("total = %d, want 0", total)
	}
	for i, w := range work {
		if w != 0 {
			t.Errorf("work[%d] = %d, want 0", i, w)
		}
	}
}

func TestPrefixSumExclusiveCumulative(t *testing.T) {
	input := []int64{3, 1, 4, 1, 5, 9, 2, 6}
	work := append([]int64(nil), input...)
	work = append(work, 0) // unused trailing slot
	total := prefixSum(&par.Context{Nthreads: 3}, work)

	var want int64
	for i, v := range input {
		if work[i] != want {
			t.Errorf("work[%d] = %d, want %d", i, work[i], want)
		}
		want += v
	}
	if total != want {
		t.Errorf("total = %d, want %d", total, want)
	}
	if work[len(input)] != want {
		t.Errorf("work[n] = %d, want %d", work[len(input)], want)
	}
}

func TestPrefixSumNonDecreasingAfterScan(t *testing.T) {
	input := []int64{2, 0, 3, 0, 0, 7, 1, 1, 1, 1}
	work := append(append([]int64(nil), input...), 0)
	prefixSum(&par.Context{Nthreads: 5}, work)
	for i := 1; i < len(work); i++ {
		if work[i] < work[i-1] {
			t.Fatalf("work not non-decreasing at %d: %v", i, work)
		}
	}
}

func TestTrimSearch(t *testing.T) {
	cwork := []int64{0, 2, 2, 5, 9, 9, 12}
	cases := []struct {
		work int64
		want int64
	}{
		{0, 1}, // cwork[0]=0<=0, cwork[1]=2>0 -> 1
		{2, 3}, // cwork[2]=2<=2, cwork[3]=5>2 -> 3
		{9, 6}, // cwork[5]=9<=9, cwork[6]=12>9 -> 6
	}
	for _, c := range cases {
		if got := trimSearch(c.work, cwork, 0, int64(len(cwork))); got != c.want {
			t.Errorf("trimSearch(%d) = %d, want %d", c.work, got, c.want)
		}
	}
}

func TestCountLess(t *testing.T) {
	i := []int64{1, 3, 3, 7, 9}
	cases := []struct {
		row  int64
		want int64
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{3, 1},
		{4, 3},
		{10, 5},
	}
	for _, c := range cases {
		if got := countLess(i, 0, int64(len(i)), c.row); got != c.want {
			t.Errorf("countLess(row=%d) = %d, want %d", c.row, got, c.want)
		}
	}
}
