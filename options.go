// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package blz

// DecompressOptions configures Decompress's handling of malformed input.
type DecompressOptions struct {
	// Strict, when true, turns a packed region that runs out before the
	// output is filled, or a back-reference pointing before the start of
	// the output, into ErrInvalidBlz. The default (false) matches the
	// reference decoder: stop and return the bytes reconstructed so far.
	// A back-reference longer than the remaining output is clamped in
	// both modes.
	Strict bool
}

// DefaultDecompressOptions returns the lenient, reference-compatible
// options (Strict: false).
func DefaultDecompressOptions() DecompressOptions {
	return DecompressOptions{}
}
