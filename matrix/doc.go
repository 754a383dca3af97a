// Copyright ©2024 The grb-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package matrix defines the read-only structural view of a sparse matrix
// that the scheduler, allocator and zombie marker operate over.
//
// A Matrix here is a collaborator's data: this package never allocates or
// mutates the value array, and it knows nothing about semirings, operators
// or value types. It exposes only the attributes needed to partition work
// and to encode deferred deletions.
package matrix
