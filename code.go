package huffman

import (
	"fmt"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// MaxCodeSize is the longest codeword this package will produce or accept.
const MaxCodeSize = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The most significant
	// valid bit of Bits is the first bit, so writing Size bits of Bits in
	// big-endian order reproduces the sequence.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// Append returns the Code extended by one trailing bit.
func (hc Code) Append(bit uint) Code {
	assert.Assertf(hc.Size < MaxCodeSize, "code %s cannot grow beyond %d bits", hc, MaxCodeSize)
	return Code{Size: hc.Size + 1, Bits: hc.Bits<<1 | uint64(bit&1)}
}

// Bit returns the i'th bit of the sequence, counting from the first.
func (hc Code) Bit(i byte) uint {
	assert.Assertf(i < hc.Size, "bit %d out of range for %d-bit code %s", i, hc.Size, hc)
	return uint(hc.Bits>>(hc.Size-1-i)) & 1
}

// IsPrefixOf returns true iff this Code is a prefix of other.  Every Code is a
// prefix of itself.
func (hc Code) IsPrefixOf(other Code) bool {
	if hc.Size > other.Size {
		return false
	}
	if hc.Size == 0 {
		return true
	}
	return other.Bits>>(other.Size-hc.Size) == hc.Bits
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

var _ fmt.Stringer = Code{}
