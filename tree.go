package huffman

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

const noNode = -1

// Tree is a strict binary Huffman tree.  Nodes live in a single slice and
// refer to their children by index; a Tree is never modified once built.
type Tree struct {
	nodes []treeNode
	root  int
}

type treeNode struct {
	symbol Symbol
	weight uint64
	left   int
	right  int
}

// BuildTree constructs the Huffman tree for freq.  Every literal with a
// non-zero count gets a leaf, as does EOFSymbol with a weight of 1.  The two
// lightest nodes are merged repeatedly, the first one removed becoming the
// left child.  Nodes of equal weight are removed in the order they were
// inserted: literals in ascending order, then the sentinel, then internal
// nodes as they are created.
//
func BuildTree(freq FrequencyTable) *Tree {
	t := newTree(2*NumSymbols - 1)

	// Step 1: seed the minheap with one leaf per symbol in use, plus the
	// sentinel.

	h := nodeHeap{tree: t}
	for symbol := Symbol(0); symbol < AlphabetSize; symbol++ {
		if count := freq[symbol]; count != 0 {
			h.push(t.addLeaf(symbol, count))
		}
	}
	h.push(t.addLeaf(EOFSymbol, 1))

	// Step 2: pop two nodes, join them under a new internal node, and push
	// that back until only the root remains.

	for h.Len() > 1 {
		left := h.pop()
		right := h.pop()
		h.push(t.addInternal(left, right))
	}

	t.root = h.pop()
	return t
}

func newTree(capacity int) *Tree {
	return &Tree{nodes: make([]treeNode, 0, capacity), root: noNode}
}

func (t *Tree) addLeaf(symbol Symbol, weight uint64) int {
	assert.Assertf(symbol.IsValid(), "leaf symbol %d out of range", int32(symbol))
	t.nodes = append(t.nodes, treeNode{symbol: symbol, weight: weight, left: noNode, right: noNode})
	return len(t.nodes) - 1
}

func (t *Tree) addInternal(left int, right int) int {
	weight := saturatingAdd(t.nodes[left].weight, t.nodes[right].weight)
	t.nodes = append(t.nodes, treeNode{symbol: InvalidSymbol, weight: weight, left: left, right: right})
	return len(t.nodes) - 1
}

// Root returns the index of the root node.
func (t *Tree) Root() int {
	return t.root
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// IsLeaf returns true iff node i has no children.
func (t *Tree) IsLeaf(i int) bool {
	return t.nodes[i].left == noNode
}

// Symbol returns the Symbol of leaf i, or InvalidSymbol for an internal node.
func (t *Tree) Symbol(i int) Symbol {
	return t.nodes[i].symbol
}

// Weight returns the weight of node i.  Trees read from a tree header carry
// no weights, so all their nodes weigh 0.
func (t *Tree) Weight(i int) uint64 {
	return t.nodes[i].weight
}

// Children returns the left and right children of internal node i.
func (t *Tree) Children(i int) (left int, right int) {
	n := &t.nodes[i]
	return n.left, n.right
}

// Walk visits every node in preorder, passing its index and its path from the
// root (0 for left, 1 for right).
func (t *Tree) Walk(fn func(i int, path Code)) {
	type stackItem struct {
		i    int
		path Code
	}

	stack := make([]stackItem, 0, 2*log2uint32(uint32(len(t.nodes))))
	stack = append(stack, stackItem{t.root, Code{}})
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		fn(top.i, top.path)

		if !t.IsLeaf(top.i) {
			left, right := t.Children(top.i)
			stack = append(stack, stackItem{right, top.path.Append(1)})
			stack = append(stack, stackItem{left, top.path.Append(0)})
		}
	}
}

// Dump writes a programmer-readable debugging dump of the tree, one node per
// line in preorder, to the given writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	t.Walk(func(i int, path Code) {
		if t.IsLeaf(i) {
			fmt.Fprintf(&buf, "\t%s = leaf %s, weight %d\n", path, t.Symbol(i), t.Weight(i))
		} else {
			fmt.Fprintf(&buf, "\t%s = node, weight %d\n", path, t.Weight(i))
		}
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type nodeAndSeq + type nodeHeap {{{

type nodeAndSeq struct {
	node   int
	weight uint64
	seq    uint32
}

type nodeHeap struct {
	tree    *Tree
	list    []nodeAndSeq
	nextSeq uint32
}

func (h *nodeHeap) push(node int) {
	heap.Push(h, nodeAndSeq{node, h.tree.nodes[node].weight, h.nextSeq})
	h.nextSeq++
}

func (h *nodeHeap) pop() int {
	return heap.Pop(h).(nodeAndSeq).node
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(nodeAndSeq))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
