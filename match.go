// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package blz

// findMatch returns the best back-reference at cursor p into the reversed
// buffer d: bestPos is the lookbehind distance in [3, min(p, blzMaxOffset)]
// and bestLen is the longest prefix match of d[p:] against d[p-bestPos:],
// capped at blzMaxCoded (18). bestLen starts at blzThreshold (2) so a
// returned length greater than that is always worth encoding as a
// back-reference instead of two literals. When no match longer than
// blzThreshold exists, findMatch returns (blzThreshold, 0).
//
// Candidate distances are scanned ascending, so a strictly longer match
// replaces the incumbent while an equal-length match keeps the smaller
// (already-found) distance, matching the tie-break rule exactly.
func findMatch(d []byte, p int) (bestLen, bestPos int) {
	bestLen = blzThreshold

	maxPos := p
	if maxPos > blzMaxOffset {
		maxPos = blzMaxOffset
	}

	remaining := len(d) - p

	for pos := 3; pos <= maxPos; pos++ {
		length := 0
		for length < blzMaxCoded {
			if length == remaining || length >= pos {
				break
			}
			if d[p+length] != d[p+length-pos] {
				break
			}
			length++
		}

		if length > bestLen {
			bestPos = pos
			bestLen = length
			if bestLen == blzMaxCoded {
				break
			}
		}
	}

	return bestLen, bestPos
}
