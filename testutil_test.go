package huffman

import (
	"bytes"
	"strings"

	"github.com/chronos-tachyon/hufftree/bitstream"
)

// bitsReader returns a reader over the given string of '0' and '1'
// characters, zero-padded to a whole byte.  Spaces are ignored.
func bitsReader(s string) *bitstream.Reader {
	var buf bytes.Buffer
	w := bitstream.NewWriter(&buf)
	for _, ch := range strings.ReplaceAll(s, " ", "") {
		var bit uint32
		if ch == '1' {
			bit = 1
		}
		if err := w.WriteBits(1, bit); err != nil {
			panic(err)
		}
	}
	if err := w.Close(); err != nil {
		panic(err)
	}
	return bitstream.NewReader(bytes.NewReader(buf.Bytes()))
}

func freqOf(input []byte) FrequencyTable {
	var freq FrequencyTable
	for _, b := range input {
		freq[b]++
	}
	return freq
}
