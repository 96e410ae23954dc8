// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package blz

// BLZ format constants: flag-bit rotation, the fixed 4-bit length / 12-bit
// offset back-reference scheme, and trailer layout.

// Flag byte bit rotation.
const (
	blzShift = 1    // how far the flag mask shifts per token
	blzMask  = 0x80 // initial (MSB-first) flag bit
)

// Back-reference bounds: length is threshold+1..maxCoded, i.e. [3,18];
// offset is 3..maxOffset.
const (
	blzThreshold = 2      // matches longer than this are worth encoding
	blzMaxOffset = 0x1002 // 4098: largest representable back-reference distance
	blzMaxCoded  = (1 << 4) + blzThreshold
)

// Trailer layout (packed form): three little-endian u32 words.
const (
	trailerBaseSize = 12   // hdr_len before alignment padding
	trailerPadByte  = 0xFF // alignment filler between the packed tail and the trailer words
)
