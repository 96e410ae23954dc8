// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package blz

// reverseBytes reverses b in place. Compress calls it three times (on the
// raw buffer before encoding, on the raw buffer again to restore it, and
// on the emitted token prefix); Decompress calls it twice (on the packed
// region before streaming it, and on the decoded output region after).
func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
