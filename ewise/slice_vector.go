// Copyright ©2024 The grb-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ewise

// sliceVector finds a row threshold i* splitting the sorted row ranges
// ai[aStart:aEnd) and bi[bStart:bEnd), drawn from a universe of size vlen,
// so that the combined count of entries strictly left of i* is as close to
// targetWork as a single cut allows:
//
//	ai[aStart:pa) < i* <= ai[pa:aEnd)
//	bi[bStart:pb) < i* <= bi[pb:bEnd)
//
// It bisects the row universe; at each trial it counts entries in both
// ranges below the candidate row with countLess and compares the combined
// count to targetWork, tie-breaking toward the smaller i* so that
// consecutive fine tasks over the same output vector cover disjoint
// half-open row ranges.
//
// Either range may be empty (aStart == aEnd, for kA < 0, and likewise for
// B); the search then degenerates to a one-vector split.
func sliceVector(aStart, aEnd int64, ai []int64, bStart, bEnd int64, bi []int64, vlen, targetWork int64) (istar, pa, pb int64) {
	lo, hi := int64(0), vlen
	for lo < hi {
		mid := lo + (hi-lo)/2
		work := (countLess(ai, aStart, aEnd, mid) - aStart) + (countLess(bi, bStart, bEnd, mid) - bStart)
		if work < targetWork {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	istar = lo
	pa = countLess(ai, aStart, aEnd, istar)
	pb = countLess(bi, bStart, bEnd, istar)
	return istar, pa, pb
}
