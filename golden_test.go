package blz

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestGolden_RoundTripDiff verifies round-trip fidelity for a fixed set of
// golden inputs, reporting a byte-level diff on mismatch rather than just a
// pass/fail boolean.
func TestGolden_RoundTripDiff(t *testing.T) {
	cases := map[string][]byte{
		"empty":              {},
		"single-byte":        {0x41},
		"four-distinct":      {0x01, 0x02, 0x03, 0x04},
		"repetitive-32xAA":   bytes.Repeat([]byte{0xAA}, 32),
		"mixed-ascii":        []byte("the quick brown fox jumps over the lazy dog"),
		"binary-ramp":        rampBytes(256),
		"overlapping-tokens": append(bytes.Repeat([]byte("token"), 40), rampBytes(64)...),
	}

	for name, want := range cases {
		t.Run(name, func(t *testing.T) {
			src := append([]byte(nil), want...)
			out := make([]byte, WorstCaseCompressedSize(len(src)))
			n, err := Compress(src, out)
			if err != nil {
				t.Fatalf("Compress failed: %v", err)
			}

			size, err := DecompressedSize(out[:n])
			if err != nil {
				t.Fatalf("DecompressedSize failed: %v", err)
			}

			decoded := make([]byte, size)
			dn, err := Decompress(out[:n], decoded)
			if err != nil {
				t.Fatalf("Decompress failed: %v", err)
			}

			if diff := cmp.Diff(want, decoded[:dn]); diff != "" {
				t.Fatalf("round-trip mismatch for %q (-want +got):\n%s", name, diff)
			}
		})
	}
}

func rampBytes(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}
