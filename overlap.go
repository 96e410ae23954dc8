// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package blz

import "unsafe"

// buffersOverlap reports whether a and b alias any part of the same
// backing array. Compress and Decompress both reverse one of their
// buffers in place, so an aliased input/output pair would corrupt data
// silently; reject it instead.
func buffersOverlap(a, b []byte) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}

	aStart := uintptr(unsafe.Pointer(&a[0]))
	aEnd := aStart + uintptr(len(a))
	bStart := uintptr(unsafe.Pointer(&b[0]))
	bEnd := bStart + uintptr(len(b))

	return aStart < bEnd && bStart < aEnd
}
