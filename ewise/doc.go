// Copyright ©2024 The grb-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ewise partitions the output of an element-wise sparse matrix
// operation into a balanced list of parallel tasks.
//
// Slice is the entry point: given two input matrices, an output vector
// count and the index translations between them, it produces a TaskList
// of coarse tasks (one or more whole output vectors) and fine tasks (a
// slice of a single heavy output vector), balanced by a cheap structural
// work estimate. Downstream per-task kernels, semiring dispatch and the
// matrix container itself are out of scope: Slice only ever reads vector
// pointers, never values.
package ewise
