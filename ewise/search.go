// Copyright ©2024 The grb-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ewise

// trimSearch advances the left cursor k to the smallest index in [k,
// pright] at which cwork exceeds work; equivalently, the largest index in
// [k, pright) with cwork[index] <= work, plus one. cwork must be
// non-decreasing, which holds once it has been through prefixSum. Starting
// the search from the caller's running cursor, rather than from k=0 every
// time, is what makes repeated calls for increasing targets cheap.
func trimSearch(work int64, cwork []int64, k, pright int64) int64 {
	lo, hi := k, pright
	for lo < hi {
		mid := lo + (hi-lo)/2
		if cwork[mid] <= work {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// countLess returns the smallest index p in [lo, hi] such that i[p] >= row,
// for the ascending sorted slice i[lo:hi]. Every entry in i[lo:p) is
// strictly less than row and every entry in i[p:hi) is greater than or
// equal to it; p - lo is therefore the count of entries below row.
func countLess(i []int64, lo, hi, row int64) int64 {
	for lo < hi {
		mid := lo + (hi-lo)/2
		if i[mid] < row {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
