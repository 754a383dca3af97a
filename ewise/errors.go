// Copyright ©2024 The grb-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ewise

import "errors"

// ErrOutOfMemory is returned when any allocation inside Slice fails. Every
// partial resource (Cwork, the coarse partition, the TaskList) is released
// before it is returned, so a failed call leaves no state behind and the
// caller's inputs are untouched.
var ErrOutOfMemory = errors.New("ewise: out of memory")
