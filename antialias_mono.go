// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build aamono

package aa

// Antialiased is false in aamono builds: every drawing call passes
// through to the host's exact primitives.
const Antialiased = false
