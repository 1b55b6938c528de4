package huffman

import (
	"strconv"
)

// Symbol represents a symbol in the processor's alphabet: the 256 byte values
// plus the end-of-stream sentinel.  Negative symbols are not valid.
type Symbol int32

const (
	// BitsPerWord is the width of one literal symbol in the uncompressed
	// stream.
	BitsPerWord = 8

	// BitsPerInt is the width of the magic tag and of each entry in a count
	// header.
	BitsPerInt = 32

	// AlphabetSize is the number of literal symbols.
	AlphabetSize = 1 << BitsPerWord

	// NumSymbols is the number of symbols including the sentinel.
	NumSymbols = AlphabetSize + 1

	// SymbolWidth is the number of bits used to store a leaf's Symbol in a
	// tree header.  It is wide enough to hold EOFSymbol.
	SymbolWidth = BitsPerWord + 1
)

// EOFSymbol is the end-of-stream sentinel.  It never appears in the input; its
// codeword terminates every compressed payload.
const EOFSymbol = Symbol(AlphabetSize)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.  Internal tree nodes carry it as well.
const InvalidSymbol = Symbol(-1)

// IsLiteral returns true iff this Symbol stands for a byte value.
func (sym Symbol) IsLiteral() bool {
	return sym >= 0 && sym < EOFSymbol
}

// IsValid returns true iff this Symbol is a literal or the sentinel.
func (sym Symbol) IsValid() bool {
	return sym >= 0 && sym <= EOFSymbol
}

// String returns the string representation of this Symbol.
func (sym Symbol) String() string {
	switch {
	case sym == EOFSymbol:
		return "EOF"
	case sym.IsLiteral():
		return strconv.Itoa(int(sym))
	default:
		return "invalid"
	}
}
