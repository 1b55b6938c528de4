package huffman

import (
	"bytes"
	"testing"

	"github.com/chronos-tachyon/hufftree/bitstream"
)

func TestWriteCode(t *testing.T) {
	type testRow struct {
		hc     Code
		expect []byte
	}

	testData := [...]testRow{
		{hc: Code{}, expect: nil},
		{hc: MakeCode(3, 0x5), expect: []byte{0xa0}},
		{hc: MakeCode(32, 0xdeadbeef), expect: []byte{0xde, 0xad, 0xbe, 0xef}},
		{hc: MakeCode(33, 0x1deadbeef), expect: []byte{0xef, 0x56, 0xdf, 0x77, 0x80}},
		{hc: MakeCode(40, 0xabcdef0123), expect: []byte{0xab, 0xcd, 0xef, 0x01, 0x23}},
		{hc: MakeCode(64, 0x0123456789abcdef), expect: []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}},
	}
	for _, row := range testData {
		t.Run(row.hc.String(), func(t *testing.T) {
			var buf bytes.Buffer
			w := bitstream.NewWriter(&buf)
			if err := writeCode(w, row.hc); err != nil {
				t.Fatalf("writeCode failed: %v", err)
			}
			if n := w.BitsWritten(); n != uint64(row.hc.Size) {
				t.Errorf("expected %d bits written, got %d", row.hc.Size, n)
			}
			if err := w.Close(); err != nil {
				t.Fatalf("Close failed: %v", err)
			}
			if !bytes.Equal(row.expect, buf.Bytes()) {
				t.Errorf("wrong output:\n\texpect: %#v\n\tactual: %#v", row.expect, buf.Bytes())
			}

			if row.hc.Size <= BitsPerInt {
				return
			}

			// Read the two halves back: the high bits first, then the
			// low 32.
			r := bitstream.NewReader(bytes.NewReader(buf.Bytes()))
			hiSize := row.hc.Size - BitsPerInt
			hi, err := r.ReadBits(hiSize)
			if err != nil {
				t.Fatalf("ReadBits(%d) failed: %v", hiSize, err)
			}
			lo, err := r.ReadBits(BitsPerInt)
			if err != nil {
				t.Fatalf("ReadBits(32) failed: %v", err)
			}
			if expectHi := uint32(row.hc.Bits >> BitsPerInt); hi != expectHi {
				t.Errorf("high half: expected %#x, got %#x", expectHi, hi)
			}
			if expectLo := uint32(row.hc.Bits); lo != expectLo {
				t.Errorf("low half: expected %#x, got %#x", expectLo, lo)
			}
		})
	}
}
