// Copyright ©2024 The grb-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package zombie implements the parallel tombstone write used by masked
// complement-replace subassignment when the mask is structurally empty
// and complemented: every C-entry referenced through a shadow matrix's
// back-pointers gets its row index flipped in place, in parallel, with no
// allocation and no possibility of failure.
package zombie
