// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package blz

import "encoding/binary"

// decodedTrailer is the parsed form of a compressed buffer's trailer: how
// many raw bytes precede the packed region, how long the packed region is,
// and the total decompressed size.
type decodedTrailer struct {
	decLen int // raw prefix length copied verbatim ahead of the packed region
	pakLen int // packed (reversed, bit-packed) region length
	rawLen int // total decompressed size
}

// WorstCaseCompressedSize returns the minimum compression output buffer
// size that Compress is guaranteed to succeed with for an n-byte input.
func WorstCaseCompressedSize(n int) int {
	return n + (n+7)/8 + 15
}

// DecompressedSize parses compressed's trailer and returns the size of the
// buffer Decompress needs to reconstruct the original data.
func DecompressedSize(compressed []byte) (int, error) {
	t, err := decodeTrailer(compressed)
	if err != nil {
		return 0, err
	}
	return t.rawLen, nil
}

// decodeTrailer parses the trailer in its two forms: stored (final u32
// zero) and packed (final u32 is the positive inc_len, preceded by hdr_len
// and enc_len). Shapes it cannot parse are rejected with ErrInvalidBlz.
func decodeTrailer(compressed []byte) (decodedTrailer, error) {
	c := len(compressed)
	if c < 4 {
		return decodedTrailer{}, ErrInvalidBlz
	}

	incLen := binary.LittleEndian.Uint32(compressed[c-4:])
	if incLen == 0 {
		decLen := c - 4
		return decodedTrailer{decLen: decLen, pakLen: 0, rawLen: decLen}, nil
	}

	if c < 12 {
		return decodedTrailer{}, ErrInvalidBlz
	}

	hdrLen := binary.LittleEndian.Uint32(compressed[c-8:])
	if uint32(c) <= hdrLen {
		return decodedTrailer{}, ErrInvalidBlz
	}

	encLen := binary.LittleEndian.Uint32(compressed[c-12:])
	if encLen < hdrLen || encLen > uint32(c) {
		// enc_len < hdr_len or enc_len > C would underflow pak_len/dec_len;
		// reject directly rather than let either wrap.
		return decodedTrailer{}, ErrInvalidBlz
	}

	decLen := uint32(c) - encLen
	pakLen := encLen - hdrLen

	// Widen to uint64 so a huge inc_len from malformed input wraps
	// visibly instead of silently overflowing back into range.
	rawLen64 := uint64(decLen) + uint64(encLen) + uint64(incLen)
	if rawLen64 < uint64(decLen) || rawLen64 > 1<<32-1 {
		return decodedTrailer{}, ErrInvalidBlz
	}

	return decodedTrailer{
		decLen: int(decLen),
		pakLen: int(pakLen),
		rawLen: int(rawLen64),
	}, nil
}
