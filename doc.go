// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

/*
Package blz implements the back-to-front LZSS byte codec ("BLZ") used to
compress ARM overlay blobs so they can be expanded in place at the tail of
a memory image, without a separate decompression buffer.

The codec is a pair of one-shot, buffer-to-buffer transforms. Compress
reverses its input, runs a greedy match finder with a one-symbol lookahead
tie-breaker, and falls back to an uncompressed "stored" form when packing
would not shrink the data. Decompress parses the trailer the compressor
wrote, reverses the packed tail, and streams literals and back-references
until the original length is reconstructed.

# Compress

out must be at least WorstCaseCompressedSize(len(raw)) bytes. raw is
mutated transiently (reversed in place) but restored before Compress
returns:

	out := make([]byte, blz.WorstCaseCompressedSize(len(raw)))
	n, err := blz.Compress(raw, out)
	out = out[:n]

# Decompress

out must be at least DecompressedSize(compressed) bytes. compressed is
mutated transiently (its packed region is reversed in place); callers
that need the input preserved must clone it first:

	size, err := blz.DecompressedSize(compressed)
	out := make([]byte, size)
	n, err := blz.Decompress(compressed, out)
	out = out[:n]
*/
package blz
