package huffman

import (
	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// EncodePayload reads r to exhaustion, one BitsPerWord-bit value at a time,
// and writes the codeword for each value to w.  It finishes by writing the
// codeword for EOFSymbol.
//
// Every value read must have a codeword in table, which holds whenever table
// was derived from a tree built over the same input.
//
func EncodePayload(r BitReader, w BitWriter, table *CodeTable) error {
	for {
		value, err := r.ReadBits(BitsPerWord)
		if err != nil {
			if isExhausted(err) {
				break
			}
			return errors.Wrap(err, "Failed to read input while encoding")
		}

		hc, found := table.Encode(Symbol(value))
		assert.Assertf(found, "no codeword for symbol %d", value)
		if err := writeCode(w, hc); err != nil {
			return errors.Wrap(err, "Failed to write codeword")
		}
	}

	hc, found := table.Encode(EOFSymbol)
	assert.Assertf(found, "no codeword for %s", EOFSymbol)
	if err := writeCode(w, hc); err != nil {
		return errors.Wrap(err, "Failed to write end-of-stream codeword")
	}
	return nil
}

// DecodePayload walks t one bit of r at a time, starting from the root and
// moving left on 0 and right on 1.  Each literal leaf reached is written to w
// as a BitsPerWord-bit value and the walk restarts at the root.  Reaching the
// EOFSymbol leaf ends decoding without reading further.
//
// If r is exhausted first, the returned error wraps ErrTruncatedStream.
//
func DecodePayload(r BitReader, w BitWriter, t *Tree) error {
	root := t.Root()
	i := root
	for {
		if t.IsLeaf(i) {
			symbol := t.Symbol(i)
			if symbol == EOFSymbol {
				return nil
			}
			if i != root {
				if err := w.WriteBits(BitsPerWord, uint32(symbol)); err != nil {
					return errors.Wrap(err, "Failed to write decoded symbol")
				}
				i = root
				continue
			}
			// A lone literal leaf at the root consumes no bits and
			// can never reach the sentinel.
			return errors.Wrap(ErrTruncatedStream, "tree has no end-of-stream leaf")
		}

		bit, err := r.ReadBits(1)
		if err != nil {
			if isExhausted(err) {
				return errors.Wrap(ErrTruncatedStream, "input exhausted before end-of-stream codeword")
			}
			return errors.Wrap(err, "Failed to read payload")
		}

		left, right := t.Children(i)
		if bit == 0 {
			i = left
		} else {
			i = right
		}
	}
}
