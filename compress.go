// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package blz

import "encoding/binary"

// Compress packs raw into out using the reverse-order LZSS scheme, falling
// back to an uncompressed "stored" form when packing would not shrink the
// input. out must be at least WorstCaseCompressedSize(len(raw)) bytes.
// raw is reversed in place during encoding and restored to its original
// order before Compress returns. Compress returns the number of bytes
// written to out.
func Compress(raw, out []byte) (int, error) {
	if len(out) < WorstCaseCompressedSize(len(raw)) {
		return 0, ErrCompressionBufferTooSmall
	}
	if buffersOverlap(raw, out) {
		return 0, ErrOverlappingBuffers
	}

	reverseBytes(raw)

	n := len(raw)

	var (
		mask    byte
		cpos    int
		dpos    int
		flagPos int

		// bestCpos/bestDtail track the break-even point between "keep this
		// many raw bytes as an uncompressed prefix" and "pack the rest",
		// updated after every token below.
		bestCpos  = 0
		bestDtail = n
	)

	for dpos < n {
		mask >>= blzShift
		if mask == 0 {
			flagPos = cpos
			out[flagPos] = 0
			cpos++
			mask = blzMask
		}

		bestLen, bestPos := findMatch(raw, dpos)

		if bestLen > blzThreshold && dpos+bestLen < n {
			dpos += bestLen
			lenNext, _ := findMatch(raw, dpos)
			dpos -= bestLen - 1
			lenPost, _ := findMatch(raw, dpos)
			dpos--

			if lenNext <= blzThreshold {
				lenNext = 1
			}
			if lenPost <= blzThreshold {
				lenPost = 1
			}
			if bestLen+lenNext <= 1+lenPost {
				bestLen = 1
			}
		}

		out[flagPos] <<= 1
		if bestLen > blzThreshold {
			dpos += bestLen
			out[flagPos] |= 1
			out[cpos] = byte(((bestLen - (blzThreshold + 1)) << 4) | ((bestPos - 3) >> 8))
			out[cpos+1] = byte((bestPos - 3) & 0xFF)
			cpos += 2
		} else {
			out[cpos] = raw[dpos]
			cpos++
			dpos++
		}

		if cpos+(n-dpos) < bestCpos+bestDtail {
			bestCpos = cpos
			bestDtail = n - dpos
		}
	}

	for mask != 0 && mask != 1 {
		mask >>= blzShift
		out[flagPos] <<= 1
	}

	compressedSize := cpos
	reverseBytes(raw)
	reverseBytes(out[:compressedSize])

	// Packed form is kept only when its total size, align4(bestCpos+bestDtail)
	// plus the 12 trailer words, is below n: its final trailer word (n minus
	// that size) is then positive and cannot be taken for the stored-form zero.
	if bestCpos == 0 || n+4 < align4(bestCpos+bestDtail)+8 ||
		n <= align4(bestCpos+bestDtail)+trailerBaseSize {
		return writeStoredForm(raw, out), nil
	}

	return writePackedForm(raw, out, compressedSize, bestCpos, bestDtail), nil
}

// align4 rounds n up to the next multiple of 4.
func align4(n int) int {
	return (n + 3) &^ 3
}

// writeStoredForm copies raw verbatim into out, zero-pads to a 4-byte
// boundary, and appends the zero trailer word that marks stored form.
func writeStoredForm(raw, out []byte) int {
	n := copy(out, raw)
	for n&3 != 0 {
		out[n] = 0
		n++
	}
	binary.LittleEndian.PutUint32(out[n:], 0)
	return n + 4
}

// writePackedForm moves the final bestCpos bytes of the emitted token
// stream up to bestDtail (the watermark split computed during the main
// loop), copies the raw prefix ahead of them, pads to a 4-byte boundary
// with 0xFF, and appends the three-word packed trailer.
func writePackedForm(raw, out []byte, compressedSize, bestCpos, bestDtail int) int {
	for i := 0; i < bestCpos; i++ {
		out[bestDtail+i] = out[i+compressedSize-bestCpos]
	}
	copy(out[:bestDtail], raw[:bestDtail])

	cpos := bestDtail + bestCpos
	headerSize := trailerBaseSize
	incLen := len(raw) - bestCpos - bestDtail

	for cpos&3 != 0 {
		out[cpos] = trailerPadByte
		cpos++
		headerSize++
	}

	binary.LittleEndian.PutUint32(out[cpos:], uint32(bestCpos+headerSize))
	binary.LittleEndian.PutUint32(out[cpos+4:], uint32(headerSize))
	binary.LittleEndian.PutUint32(out[cpos+8:], uint32(incLen-headerSize))
	cpos += 12

	return cpos
}
