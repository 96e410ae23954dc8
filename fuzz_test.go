package blz

import "testing"

// FuzzDecompressMalformed checks that Decompress never panics or reads out
// of bounds on arbitrary input, seeded with a handful of deliberately
// malformed trailers. A returned error is fine; a panic is not.
func FuzzDecompressMalformed(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x00, 0x00, 0x00})
	f.Add([]byte{0x7A, 0x00, 0x00, 0x00, 0x00})
	f.Add([]byte{0x80, 0xFF, 0xFF, 0xFF, 0x10, 0x00, 0x00, 0x00, 0x0F, 0x00, 0x00, 0x00, 0x04, 0x00, 0x00, 0x00})
	f.Add([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF})
	f.Add(make([]byte, 16))

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) > 1<<16 {
			data = data[:1<<16]
		}

		size, err := DecompressedSize(data)
		if err != nil {
			return
		}
		if size > 1<<24 {
			return
		}

		out := make([]byte, size)
		_, _ = Decompress(append([]byte(nil), data...), out)
	})
}
