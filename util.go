package huffman

import (
	"io"
	mathbits "math/bits"

	"github.com/pkg/errors"
)

func log2uint32(x uint32) uint32 {
	if x == 0 {
		x = 1
	}
	return uint32(32 - mathbits.LeadingZeros32(x))
}

// isExhausted reports whether err is a bit source's end-of-stream signal.
func isExhausted(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}

// saturatingAdd returns a+b, clamped to math.MaxUint64.
func saturatingAdd(a, b uint64) uint64 {
	sum, carry := mathbits.Add64(a, b, 0)
	if carry != 0 {
		return ^uint64(0)
	}
	return sum
}
