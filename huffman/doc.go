// Package huffman builds optimal prefix codes from symbol frequencies and uses
// them to encode symbol sequences into packed bitstreams.
//
// # Tree Construction
//
// BuildTree inserts one leaf per distinct symbol into a min-priority queue and
// repeatedly merges the two lowest-frequency nodes. Ties are broken by a
// sequence number: leaves are numbered in ascending symbol order and every
// merged node takes the next number, so equal inputs always produce equal
// trees. The first node popped becomes the left (0) child.
//
// A table with a single distinct symbol gets a synthetic frequency-0 leaf with
// no symbol as its right sibling, so the real symbol is coded as "0" rather
// than the empty code.
//
// # Codebook
//
// BuildCodebook walks the tree with an explicit stack, appending 0 for left
// and 1 for right. Codes are at most MaxCodeLen bits and are stored
// right-aligned in a uint64, most significant bit first on the wire.
//
// # Bitstream
//
// Encode concatenates the codes of every symbol in input order and packs them
// MSB-first. The resulting Bitstream carries the count of valid bits in its
// final byte; AppendTo serializes it as that count followed by the packed
// bytes.
//
// Decode rebuilds a binary trie from the codebook and walks it bit by bit,
// emitting a symbol at every leaf. A bit with no matching branch, or bits left
// over in the middle of a code when the stream ends, fail with
// errs.ErrCorruptBitstream.
package huffman
