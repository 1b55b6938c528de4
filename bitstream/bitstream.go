// Package bitstream adapts byte streams to the fixed-width, big-endian bit
// reads and writes used by the huffman package.
package bitstream

import (
	"io"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// MaxWidth is the widest value a single ReadBits or WriteBits call handles.
const MaxWidth = 32

var (
	// ErrInvalidWidth is returned for a width outside 1..MaxWidth.
	ErrInvalidWidth = errors.New("bit width must be between 1 and 32")

	// ErrNotSeekable is returned by Reader.Reset when the underlying
	// reader cannot seek.
	ErrNotSeekable = errors.New("underlying reader does not support seeking")
)

func checkWidth(width uint8) error {
	if width == 0 || width > MaxWidth {
		return errors.Wrapf(ErrInvalidWidth, "got %d", width)
	}
	return nil
}

// Reader reads bit fields from an io.Reader, most significant bit first.
type Reader struct {
	in       io.Reader
	br       *bitio.Reader
	bitsRead uint64
}

// NewReader returns a Reader positioned at the first bit of in.  Reset is
// only supported when in is also an io.Seeker.
func NewReader(in io.Reader) *Reader {
	return &Reader{in: in, br: bitio.NewReader(in)}
}

// ReadBits reads width bits.  It returns io.EOF, or io.ErrUnexpectedEOF if the
// stream ends partway through a byte already started, once fewer than width
// bits remain.
func (r *Reader) ReadBits(width uint8) (uint32, error) {
	if err := checkWidth(width); err != nil {
		return 0, err
	}
	value, err := r.br.ReadBits(width)
	if err != nil {
		if err == io.EOF && r.bitsRead%8 != 0 {
			err = io.ErrUnexpectedEOF
		}
		return 0, err
	}
	r.bitsRead += uint64(width)
	return uint32(value), nil
}

// Reset rewinds to the first bit of the stream, discarding any buffered bits.
func (r *Reader) Reset() error {
	seeker, ok := r.in.(io.Seeker)
	if !ok {
		return ErrNotSeekable
	}
	if _, err := seeker.Seek(0, io.SeekStart); err != nil {
		return errors.Wrap(err, "Failed to rewind input")
	}
	r.br = bitio.NewReader(r.in)
	r.bitsRead = 0
	return nil
}

// BitsRead returns the number of bits read since creation or the last Reset.
func (r *Reader) BitsRead() uint64 {
	return r.bitsRead
}

// Writer writes bit fields to an io.Writer, most significant bit first.
type Writer struct {
	bw          *bitio.Writer
	bitsWritten uint64
}

// NewWriter returns a Writer that emits whole bytes to out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{bw: bitio.NewWriter(out)}
}

// WriteBits writes the low width bits of value.
func (w *Writer) WriteBits(width uint8, value uint32) error {
	if err := checkWidth(width); err != nil {
		return err
	}
	masked := uint64(value) & (uint64(1)<<width - 1)
	if err := w.bw.WriteBits(masked, width); err != nil {
		return err
	}
	w.bitsWritten += uint64(width)
	return nil
}

// BitsWritten returns the number of bits written so far, excluding padding.
func (w *Writer) BitsWritten() uint64 {
	return w.bitsWritten
}

// Close pads the last partial byte with zero bits and flushes it.  The
// underlying io.Writer is not closed.
func (w *Writer) Close() error {
	return w.bw.Close()
}
