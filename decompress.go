// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package blz

// Decompress reconstructs the original data from compressed into out using
// the lenient (reference-compatible) options: a truncated packed region
// stops and returns whatever was reconstructed so far, rather than an
// error. Use DecompressOpts for the hardened strict variant.
func Decompress(compressed, out []byte) (int, error) {
	return DecompressOpts(compressed, out, DefaultDecompressOptions())
}

// DecompressOpts parses compressed's trailer, copies its raw prefix, and
// streams the reversed packed tail into out, emitting literals and
// back-references until the reconstructed length is reached. out must be
// at least DecompressedSize(compressed) bytes. compressed is mutated
// transiently (its packed region is reversed in place); callers that need
// the input preserved must clone it first.
func DecompressOpts(compressed, out []byte, opts DecompressOptions) (int, error) {
	t, err := decodeTrailer(compressed)
	if err != nil {
		return 0, err
	}

	if len(out) < t.rawLen {
		return 0, ErrDecompressionBufferTooSmall
	}
	if buffersOverlap(compressed, out) {
		return 0, ErrOverlappingBuffers
	}

	copy(out[:t.decLen], compressed[:t.decLen])

	packed := compressed[t.decLen : t.decLen+t.pakLen]
	reverseBytes(packed)

	outRegion := out[t.decLen:t.rawLen]
	rp, truncated := streamTokens(packed, outRegion)

	reverseBytes(outRegion)

	if truncated && opts.Strict {
		return 0, ErrInvalidBlz
	}

	return t.decLen + rp, nil
}

// streamTokens runs the NeedFlag -> DispatchBit -> EmitLiteral|EmitMatch
// state machine over packed, writing literals and back-reference copies
// into outRegion. It returns the number of bytes written and whether
// decoding stopped before outRegion was filled (TruncatedStop): either the
// packed region ran out, or a back-reference pointed before the start of
// outRegion.
func streamTokens(packed, outRegion []byte) (rp int, truncated bool) {
	var (
		mask  byte
		flags byte
		pp    int
	)

	// The loop condition guarantees rp == len(outRegion) on a normal exit
	// (the reference implementation asserts this with a debug_assert);
	// truncated exits are the only way out early.
	for rp < len(outRegion) {
		mask >>= blzShift
		if mask == 0 {
			if pp == len(packed) {
				return rp, true
			}
			flags = packed[pp]
			pp++
			mask = blzMask
		}

		if flags&mask == 0 {
			if pp == len(packed) {
				return rp, true
			}
			outRegion[rp] = packed[pp]
			rp++
			pp++
			continue
		}

		if pp+1 >= len(packed) {
			return rp, true
		}

		hi, lo := packed[pp], packed[pp+1]
		pp += 2

		raw := (int(hi) << 8) | int(lo)
		length := (raw >> 12) + blzThreshold + 1
		dist := (raw & 0xFFF) + 3

		if rp+length > len(outRegion) {
			length = len(outRegion) - rp
		}
		if dist > rp {
			// Malformed input pointing before the start of the
			// reconstructed output; stop rather than index negative.
			return rp, true
		}

		rp = copyBackRef(outRegion, rp, dist, length)
	}

	return rp, false
}
