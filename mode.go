package huffman

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Magic tags identifying a compressed stream's header format.
const (
	MagicNumber uint32 = 0xface8200
	TreeMagic          = MagicNumber | 1
	CountsMagic        = MagicNumber | 2
)

// HeaderMode selects how Compress describes the Huffman code to the decoder.
type HeaderMode uint8

const (
	// TreeHeader writes the tree itself in preorder.
	TreeHeader HeaderMode = iota

	// CountHeader writes the symbol counts the tree was built from; the
	// decoder rebuilds the same tree from them.
	CountHeader
)

var headerModeNames = [...]string{
	TreeHeader:  "tree",
	CountHeader: "counts",
}

// IsValid returns true iff mode is a HeaderMode this package implements.
func (mode HeaderMode) IsValid() bool {
	return int(mode) < len(headerModeNames)
}

// Magic returns the tag written at the start of a stream using this mode.
func (mode HeaderMode) Magic() uint32 {
	switch mode {
	case TreeHeader:
		return TreeMagic
	case CountHeader:
		return CountsMagic
	default:
		return 0
	}
}

// String returns the name of this HeaderMode.
func (mode HeaderMode) String() string {
	if mode.IsValid() {
		return headerModeNames[mode]
	}
	return "HeaderMode(" + strconv.Itoa(int(mode)) + ")"
}

// Set parses s into mode, so that a *HeaderMode can be used as a command line
// flag.
func (mode *HeaderMode) Set(s string) error {
	parsed, err := ParseHeaderMode(s)
	if err != nil {
		return err
	}
	*mode = parsed
	return nil
}

// Type names the flag type.
func (mode *HeaderMode) Type() string {
	return "headerMode"
}

// ParseHeaderMode returns the HeaderMode named s, ignoring case.
func ParseHeaderMode(s string) (HeaderMode, error) {
	for mode, name := range headerModeNames {
		if strings.EqualFold(s, name) {
			return HeaderMode(mode), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownHeaderMode, "%q (expected %q or %q)", s, headerModeNames[TreeHeader], headerModeNames[CountHeader])
}
