// Copyright ©2024 The grb-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package alloc provides a checked-size, optionally-tracked allocator.
//
// It wraps the backing Go allocator with overflow-safe sizing, live
// allocation/byte accounting under a critical section, and deterministic
// fault injection so tests can exercise every allocation failure point of
// a caller exhaustively. Process-wide mutable state is avoided: every
// caller carries its own *Allocator handle.
package alloc
