package huffman

// BitReader is the bit-level input source consumed by this package.
type BitReader interface {
	// ReadBits reads width (1..32) bits and returns them as an unsigned
	// value, first bit most significant.  At end of stream it returns
	// io.EOF (or io.ErrUnexpectedEOF if the stream ends mid-value).
	ReadBits(width uint8) (uint32, error)

	// Reset rewinds the source to its first bit.
	Reset() error
}

// BitWriter is the bit-level output sink consumed by this package.
type BitWriter interface {
	// WriteBits writes the low width (1..32) bits of value, most
	// significant first.
	WriteBits(width uint8, value uint32) error
}

// writeCode writes hc to w, splitting codes wider than 32 bits.
func writeCode(w BitWriter, hc Code) error {
	size := hc.Size
	if size > BitsPerInt {
		hi := size - BitsPerInt
		if err := w.WriteBits(hi, uint32(hc.Bits>>BitsPerInt)); err != nil {
			return err
		}
		size = BitsPerInt
	}
	if size == 0 {
		return nil
	}
	return w.WriteBits(size, uint32(hc.Bits))
}
