package huffman

import (
	"math"

	"github.com/pkg/errors"
)

// WriteHeader serializes t in preorder: a 0 bit for each internal node,
// followed by its left and right subtrees, or a 1 bit followed by the
// SymbolWidth-bit Symbol for each leaf.  The result is self-delimiting.
func WriteHeader(w BitWriter, t *Tree) error {
	return writeSubtree(w, t, t.Root())
}

func writeSubtree(w BitWriter, t *Tree, i int) error {
	if t.IsLeaf(i) {
		if err := w.WriteBits(1, 1); err != nil {
			return errors.Wrap(err, "Failed to write tree header")
		}
		if err := w.WriteBits(SymbolWidth, uint32(t.Symbol(i))); err != nil {
			return errors.Wrap(err, "Failed to write tree header")
		}
		return nil
	}

	if err := w.WriteBits(1, 0); err != nil {
		return errors.Wrap(err, "Failed to write tree header")
	}
	left, right := t.Children(i)
	if err := writeSubtree(w, t, left); err != nil {
		return err
	}
	return writeSubtree(w, t, right)
}

// ReadHeader reconstructs a tree written by WriteHeader.  The returned error
// wraps ErrMalformedHeader if r runs out mid-tree, if a leaf holds a Symbol
// outside the alphabet or repeats one, or if the tree is nested deeper than
// MaxCodeSize.
//
func ReadHeader(r BitReader) (*Tree, error) {
	hr := headerReader{r: r, tree: newTree(2*NumSymbols - 1)}
	root, err := hr.readSubtree(0)
	if err != nil {
		return nil, err
	}
	hr.tree.root = root
	return hr.tree, nil
}

type headerReader struct {
	r    BitReader
	tree *Tree
	seen [NumSymbols]bool
}

func (hr *headerReader) readSubtree(depth int) (int, error) {
	if depth > MaxCodeSize {
		return noNode, errors.Wrapf(ErrMalformedHeader, "tree nested deeper than %d levels", MaxCodeSize)
	}

	bit, err := hr.readBits(1)
	if err != nil {
		return noNode, err
	}

	if bit == 0 {
		left, err := hr.readSubtree(depth + 1)
		if err != nil {
			return noNode, err
		}
		right, err := hr.readSubtree(depth + 1)
		if err != nil {
			return noNode, err
		}
		return hr.tree.addInternal(left, right), nil
	}

	value, err := hr.readBits(SymbolWidth)
	if err != nil {
		return noNode, err
	}
	symbol := Symbol(value)
	if !symbol.IsValid() {
		return noNode, errors.Wrapf(ErrMalformedHeader, "leaf symbol %d out of range", value)
	}
	if hr.seen[symbol] {
		return noNode, errors.Wrapf(ErrMalformedHeader, "leaf symbol %s appears twice", symbol)
	}
	hr.seen[symbol] = true
	return hr.tree.addLeaf(symbol, 0), nil
}

func (hr *headerReader) readBits(width uint8) (uint32, error) {
	value, err := hr.r.ReadBits(width)
	if err != nil {
		if isExhausted(err) {
			return 0, errors.Wrap(ErrMalformedHeader, "input exhausted inside tree header")
		}
		return 0, errors.Wrap(err, "Failed to read tree header")
	}
	return value, nil
}

// WriteCounts serializes freq as AlphabetSize consecutive BitsPerInt-bit
// counts.
func WriteCounts(w BitWriter, freq FrequencyTable) error {
	for symbol, count := range freq {
		if count > math.MaxUint32 {
			return errors.Wrapf(ErrCountOverflow, "symbol %d occurs %d times", symbol, count)
		}
	}
	for _, count := range freq {
		if err := w.WriteBits(BitsPerInt, uint32(count)); err != nil {
			return errors.Wrap(err, "Failed to write count header")
		}
	}
	return nil
}

// ReadCounts reads a FrequencyTable written by WriteCounts.
func ReadCounts(r BitReader) (FrequencyTable, error) {
	var freq FrequencyTable
	for symbol := range freq {
		count, err := r.ReadBits(BitsPerInt)
		if err != nil {
			if isExhausted(err) {
				return freq, errors.Wrap(ErrMalformedHeader, "input exhausted inside count header")
			}
			return freq, errors.Wrap(err, "Failed to read count header")
		}
		freq[symbol] = uint64(count)
	}
	return freq, nil
}
