package huffman

import (
	"io"

	"github.com/chronos-tachyon/hufftree/bitstream"

	"github.com/nuclio/logger"
	"github.com/pkg/errors"
)

// Processor compresses and decompresses streams.  A Processor holds no state
// between calls; every call builds and discards its own tree.
type Processor struct {
	logger logger.Logger
	header HeaderMode
}

// NewProcessor returns a Processor whose Compress writes header as its header
// format and whose Decompress accepts only that format.
func NewProcessor(parentLogger logger.Logger, header HeaderMode) (*Processor, error) {
	if !header.IsValid() {
		return nil, errors.Wrapf(ErrUnknownHeaderMode, "mode %s", header)
	}
	return &Processor{
		logger: parentLogger.GetChild("huffman"),
		header: header,
	}, nil
}

// HeaderMode returns the header format written by Compress.
func (p *Processor) HeaderMode() HeaderMode {
	return p.header
}

// Compress reads r twice, first to count symbols and then, after a Reset, to
// encode them, and writes the compressed stream to w.
func (p *Processor) Compress(r BitReader, w BitWriter) error {
	freq, err := CountFrequencies(r)
	if err != nil {
		return err
	}

	tree := BuildTree(freq)
	table := DeriveCodeTable(tree)

	p.logger.DebugWith("Built Huffman code",
		"header", p.header.String(),
		"bytes", freq.Total(),
		"distinct", freq.Distinct(),
		"nodes", tree.Len(),
		"minSize", table.MinSize(),
		"maxSize", table.MaxSize())

	if err := w.WriteBits(BitsPerInt, p.header.Magic()); err != nil {
		return errors.Wrap(err, "Failed to write magic tag")
	}

	switch p.header {
	case TreeHeader:
		err = WriteHeader(w, tree)
	case CountHeader:
		err = WriteCounts(w, freq)
	}
	if err != nil {
		return err
	}

	if err := r.Reset(); err != nil {
		return errors.Wrap(err, "Failed to reset input for second pass")
	}

	return EncodePayload(r, w, &table)
}

// Decompress reads a stream written by Compress from r and writes the
// original bytes to w.  The stream must use this Processor's HeaderMode.
//
// The returned error wraps ErrFormatMismatch if the stream does not begin
// with the tag of that HeaderMode, ErrMalformedHeader if the header cannot be
// read, or ErrTruncatedStream if the payload ends early.  Output written
// before an error is not retracted.
//
func (p *Processor) Decompress(r BitReader, w BitWriter) error {
	tag, err := r.ReadBits(BitsPerInt)
	if err != nil {
		if isExhausted(err) {
			return errors.Wrap(ErrFormatMismatch, "input too short for magic tag")
		}
		return errors.Wrap(err, "Failed to read magic tag")
	}

	if expected := p.header.Magic(); tag != expected {
		return errors.Wrapf(ErrFormatMismatch, "unexpected magic tag %#08x (expected %#08x)", tag, expected)
	}

	var tree *Tree
	switch p.header {
	case TreeHeader:
		tree, err = ReadHeader(r)
		if err != nil {
			return err
		}

	case CountHeader:
		freq, err := ReadCounts(r)
		if err != nil {
			return err
		}
		tree = BuildTree(freq)
	}

	p.logger.DebugWith("Read Huffman header", "tag", tag, "nodes", tree.Len())

	return DecodePayload(r, w, tree)
}

// CompressStream compresses src into dst.  The final partial byte is padded
// with zero bits and flushed on every return path.
func (p *Processor) CompressStream(dst io.Writer, src io.ReadSeeker) (err error) {
	r := bitstream.NewReader(src)
	w := bitstream.NewWriter(dst)
	defer func() {
		if closeErr := w.Close(); closeErr != nil && err == nil {
			err = errors.Wrap(closeErr, "Failed to flush output")
		}
	}()

	if err = p.Compress(r, w); err != nil {
		return err
	}

	p.logger.DebugWith("Compressed stream", "inputBits", r.BitsRead(), "outputBits", w.BitsWritten())
	return nil
}

// DecompressStream decompresses src into dst.  Whatever was decoded before a
// failure is still flushed to dst.
func (p *Processor) DecompressStream(dst io.Writer, src io.Reader) (err error) {
	r := bitstream.NewReader(src)
	w := bitstream.NewWriter(dst)
	defer func() {
		if closeErr := w.Close(); closeErr != nil && err == nil {
			err = errors.Wrap(closeErr, "Failed to flush output")
		}
	}()

	if err = p.Decompress(r, w); err != nil {
		return err
	}

	p.logger.DebugWith("Decompressed stream", "inputBits", r.BitsRead(), "outputBits", w.BitsWritten())
	return nil
}
