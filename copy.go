// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package blz

// copyBackRef expands a back-reference of the given length at distance
// dist, writing from outRegion[rp] onward, and returns the position after
// the last byte written. Distance is always >= 3 in BLZ's fixed
// scheme, but length can still exceed dist (runs longer than the
// repeated unit), so bytes are copied one at a time: each write becomes
// valid source for a later read in the same call, which is exactly the
// overlapping-copy behavior a repeated run needs.
func copyBackRef(outRegion []byte, rp, dist, length int) int {
	for length > 0 {
		outRegion[rp] = outRegion[rp-dist]
		rp++
		length--
	}
	return rp
}
