// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package blz

import (
	"bytes"
	"testing"
)

func benchmarkInputSets() map[string][]byte {
	return map[string][]byte{
		"small-text-4k":   bytes.Repeat([]byte("blz benchmark text payload "), 160),
		"pattern-128k":    bytes.Repeat([]byte("ABCDEF0123456789"), 8192),
		"byte-cycle-256k": bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 26214),
	}
}

func BenchmarkCompress(b *testing.B) {
	for inputName, inputData := range benchmarkInputSets() {
		b.Run(inputName, func(b *testing.B) {
			out := make([]byte, WorstCaseCompressedSize(len(inputData)))
			raw := make([]byte, len(inputData))
			b.ReportAllocs()
			b.SetBytes(int64(len(inputData)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				copy(raw, inputData)
				if _, err := Compress(raw, out); err != nil {
					b.Fatalf("Compress failed: %v", err)
				}
			}
		})
	}
}

func BenchmarkDecompress(b *testing.B) {
	for inputName, inputData := range benchmarkInputSets() {
		raw := append([]byte(nil), inputData...)
		out := make([]byte, WorstCaseCompressedSize(len(raw)))
		n, err := Compress(raw, out)
		if err != nil {
			b.Fatalf("setup Compress failed for %s: %v", inputName, err)
		}
		compressedData := append([]byte(nil), out[:n]...)

		b.Run(inputName, func(b *testing.B) {
			dst := make([]byte, len(inputData))
			scratch := make([]byte, len(compressedData))
			b.ReportAllocs()
			b.SetBytes(int64(len(inputData)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				copy(scratch, compressedData)
				if _, err := Decompress(scratch, dst); err != nil {
					b.Fatalf("Decompress failed: %v", err)
				}
			}
		})
	}
}

func BenchmarkRoundTrip(b *testing.B) {
	inputData := bytes.Repeat([]byte("RoundTripData"), 16384)
	raw := make([]byte, len(inputData))
	out := make([]byte, WorstCaseCompressedSize(len(inputData)))

	b.ReportAllocs()
	b.SetBytes(int64(len(inputData)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		copy(raw, inputData)
		n, err := Compress(raw, out)
		if err != nil {
			b.Fatalf("Compress failed: %v", err)
		}

		size, err := DecompressedSize(out[:n])
		if err != nil {
			b.Fatalf("DecompressedSize failed: %v", err)
		}
		dst := make([]byte, size)
		if _, err := Decompress(out[:n], dst); err != nil {
			b.Fatalf("Decompress failed: %v", err)
		}
	}
}
