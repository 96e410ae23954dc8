// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package blz

import "errors"

// Sentinel errors for the codec's error taxonomy. All preconditions are
// checked before output buffers are written, so a failing call never
// produces a partially valid output (though it may still have reversed
// its input in place — see Compress and Decompress).
var (
	// ErrInvalidBlz is returned when a compressed buffer's trailer is
	// malformed or too short to parse, and by DecompressOpts in strict
	// mode when the token stream stops before the output is filled.
	ErrInvalidBlz = errors.New("blz: invalid trailer")
	// ErrCompressionBufferTooSmall is returned when the output buffer
	// passed to Compress is smaller than WorstCaseCompressedSize(len(raw)).
	ErrCompressionBufferTooSmall = errors.New("blz: compression buffer too small")
	// ErrDecompressionBufferTooSmall is returned when the output buffer
	// passed to Decompress is smaller than the trailer's declared size.
	ErrDecompressionBufferTooSmall = errors.New("blz: decompression buffer too small")
	// ErrOverlappingBuffers is returned when the input and output buffers
	// of a single call alias each other's memory.
	ErrOverlappingBuffers = errors.New("blz: input and output buffers overlap")
	// ErrUnknown is reserved for error conditions outside the taxonomy
	// above. The core codec never returns it today.
	ErrUnknown = errors.New("blz: unknown error")
)
