// Package huffman implements a lossless byte-stream compressor built on
// Huffman codes with a self-describing tree header.
//
// A compressed stream consists of a 32-bit magic tag, the Huffman tree
// serialized in preorder (0 for an internal node, 1 followed by a 9-bit
// symbol for a leaf), the codeword of every input byte in order, and finally
// the codeword of the end-of-stream sentinel.  The stream carries no length
// field; the sentinel tells the decoder where to stop.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
