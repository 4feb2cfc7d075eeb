// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !aamono

package aa

// Antialiased reports whether drawing calls blend coverage into the frame
// buffer. Build with the aamono tag to use the host's exact primitives
// everywhere instead.
const Antialiased = true
