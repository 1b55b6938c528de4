package huffman

import (
	"bytes"
	"math"
	"testing"

	"github.com/chronos-tachyon/hufftree/bitstream"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

func writeHeaderBytes(t *testing.T, tree *Tree) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := bitstream.NewWriter(&buf)
	if err := WriteHeader(w, tree); err != nil {
		t.Fatalf("WriteHeader failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	return buf.Bytes()
}

func TestWriteHeader(t *testing.T) {
	raw := writeHeaderBytes(t, BuildTree(freqOf([]byte("AAB"))))

	// 0 1:001000001 0 1:001000010 1:100000000
	expect := []byte{0x48, 0x29, 0x0b, 0x00}
	if !bytes.Equal(expect, raw) {
		t.Errorf("wrong header:\n\texpect: %#v\n\tactual: %#v", expect, raw)
	}
}

func TestReadHeader_RoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"a",
		"AAB",
		"abracadabra",
		"the quick brown fox jumps over the lazy dog",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			tree := BuildTree(freqOf([]byte(input)))
			expect := DeriveCodeTable(tree)

			raw := writeHeaderBytes(t, tree)
			r := bitstream.NewReader(bytes.NewReader(raw))
			decoded, err := ReadHeader(r)
			if err != nil {
				t.Fatalf("ReadHeader failed: %v", err)
			}

			actual := DeriveCodeTable(decoded)
			if !expect.Equal(&actual) {
				t.Errorf("code tables differ:\n%s", cmp.Diff(expect.SizeBySymbol(), actual.SizeBySymbol()))
			}
			if decoded.Len() != tree.Len() {
				t.Errorf("expected %d nodes, got %d", tree.Len(), decoded.Len())
			}
		})
	}
}

func TestReadHeader_Malformed(t *testing.T) {
	type testRow struct {
		name string
		bits string
	}

	testData := [...]testRow{
		{name: "empty", bits: ""},
		{name: "missing right subtree", bits: "0 1 001000001"},
		{name: "short symbol", bits: "1 1000"},
		{name: "symbol out of range", bits: "1 111111111"},
		{name: "duplicate symbol", bits: "0 1 001000001 1 001000001"},
		{name: "too deep", bits: "000000000000000000000000000000000000000000000000000000000000000000000000"},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			_, err := ReadHeader(bitsReader(row.bits))
			if !errors.Is(err, ErrMalformedHeader) {
				t.Errorf("expected ErrMalformedHeader, got %v", err)
			}
		})
	}
}

func TestCounts_RoundTrip(t *testing.T) {
	freq := freqOf([]byte("mississippi"))
	freq[0] = math.MaxUint32

	var buf bytes.Buffer
	w := bitstream.NewWriter(&buf)
	if err := WriteCounts(w, freq); err != nil {
		t.Fatalf("WriteCounts failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if n := buf.Len(); n != AlphabetSize*4 {
		t.Errorf("expected %d bytes, got %d", AlphabetSize*4, n)
	}

	actual, err := ReadCounts(bitstream.NewReader(bytes.NewReader(buf.Bytes())))
	if err != nil {
		t.Fatalf("ReadCounts failed: %v", err)
	}
	if actual != freq {
		t.Errorf("counts differ:\n%s", cmp.Diff(freq, actual))
	}

	_, err = ReadCounts(bitstream.NewReader(bytes.NewReader(buf.Bytes()[:100])))
	if !errors.Is(err, ErrMalformedHeader) {
		t.Errorf("expected ErrMalformedHeader, got %v", err)
	}
}

func TestWriteCounts_Overflow(t *testing.T) {
	var freq FrequencyTable
	freq['x'] = math.MaxUint32 + 1

	var buf bytes.Buffer
	err := WriteCounts(bitstream.NewWriter(&buf), freq)
	if !errors.Is(err, ErrCountOverflow) {
		t.Errorf("expected ErrCountOverflow, got %v", err)
	}
}
