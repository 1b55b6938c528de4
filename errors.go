package huffman

import (
	"github.com/pkg/errors"
)

var (
	// ErrFormatMismatch is returned by Decompress when the leading tag is
	// not one this package writes.
	ErrFormatMismatch = errors.New("not a recognized Huffman-compressed stream")

	// ErrMalformedHeader is returned when a tree or count header cannot be
	// reconstructed.
	ErrMalformedHeader = errors.New("malformed Huffman header")

	// ErrTruncatedStream is returned when the payload ends before the
	// end-of-stream sentinel is decoded.
	ErrTruncatedStream = errors.New("truncated Huffman stream: no end-of-stream sentinel")

	// ErrCountOverflow is returned when a symbol count does not fit in a
	// count header entry.
	ErrCountOverflow = errors.New("symbol count too large for count header")

	// ErrUnknownHeaderMode is returned for a HeaderMode this package does
	// not implement.
	ErrUnknownHeaderMode = errors.New("unknown header mode")
)
