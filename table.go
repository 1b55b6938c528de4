package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each Symbol in a Tree to its codeword.
type CodeTable struct {
	codes   [NumSymbols]Code
	present [NumSymbols]bool
	count   int
	minSize byte
	maxSize byte
}

// DeriveCodeTable assigns each leaf of t the path leading to it from the root,
// appending a 0 bit for every left edge and a 1 bit for every right edge.
//
// A tree whose root is itself a leaf gives that leaf the empty codeword.  This
// can only happen for a tree holding nothing but the sentinel, so the empty
// codeword never coexists with another codeword.
//
func DeriveCodeTable(t *Tree) CodeTable {
	var table CodeTable
	t.Walk(func(i int, path Code) {
		if !t.IsLeaf(i) {
			return
		}

		symbol := t.Symbol(i)
		assert.Assertf(!table.present[symbol], "symbol %s appears in more than one leaf", symbol)
		assert.Assertf(path.Size != 0 || i == t.Root(), "empty codeword for non-root leaf %s", symbol)

		table.codes[symbol] = path
		table.present[symbol] = true
		if table.count == 0 {
			table.minSize = path.Size
			table.maxSize = path.Size
		} else if table.minSize > path.Size {
			table.minSize = path.Size
		} else if table.maxSize < path.Size {
			table.maxSize = path.Size
		}
		table.count++
	})
	return table
}

// Encode returns the codeword for a Symbol.  The second result is false if
// the Symbol has no codeword.
func (table *CodeTable) Encode(symbol Symbol) (Code, bool) {
	if !symbol.IsValid() || !table.present[symbol] {
		return Code{}, false
	}
	return table.codes[symbol], true
}

// Len returns the number of symbols with a codeword.
func (table *CodeTable) Len() int {
	return table.count
}

// MinSize is the bit length of the shortest codeword.
func (table *CodeTable) MinSize() byte {
	return table.minSize
}

// MaxSize is the bit length of the longest codeword.
func (table *CodeTable) MaxSize() byte {
	return table.maxSize
}

// SizeBySymbol returns an array containing the bit length for each Symbol in
// the alphabet, sentinel included.  Symbols without a codeword report 0.
//
func (table *CodeTable) SizeBySymbol() []byte {
	out := make([]byte, NumSymbols)
	for symbol := Symbol(0); symbol < NumSymbols; symbol++ {
		out[symbol] = table.codes[symbol].Size
	}
	return out
}

// Equal returns true iff both tables assign the same codewords to the same
// symbols.
func (table *CodeTable) Equal(other *CodeTable) bool {
	return table.codes == other.codes && table.present == other.present
}

// Dump writes a programmer-readable debugging dump of the CodeTable's current
// state to the given writer.  Symbols without a codeword are omitted.
func (table *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", table.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", table.maxSize)
	for symbol := Symbol(0); symbol < NumSymbols; symbol++ {
		if table.present[symbol] {
			fmt.Fprintf(&buf, "\tEncode(%s) = %s\n", symbol, table.codes[symbol])
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
