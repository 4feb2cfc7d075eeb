// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !aadebug

package aa

const debugAssertions = false
