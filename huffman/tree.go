package huffman

import (
	"container/heap"
	"slices"
)

// Symbol is the unit being coded: a byte, a code point or a flattened token field.
type Symbol = uint32

// FrequencyTable maps each symbol to its number of occurrences.
type FrequencyTable map[Symbol]uint64

// CountFrequencies builds the frequency table of symbols.
func CountFrequencies(symbols []Symbol) FrequencyTable {
	freq := make(FrequencyTable)
	for _, s := range symbols {
		freq[s]++
	}

	return freq
}

// Symbols returns the symbols of the table in ascending order.
func (f FrequencyTable) Symbols() []Symbol {
	syms := make([]Symbol, 0, len(f))
	for s := range f {
		syms = append(syms, s)
	}
	slices.Sort(syms)

	return syms
}

// Node is a node of a Huffman tree.
//
// A leaf holds a symbol and its frequency. An internal node holds two
// children and the sum of their frequencies. The synthetic sibling added for
// single-symbol tables is a leaf without a symbol.
type Node struct {
	Symbol Symbol
	Freq   uint64
	Left   *Node
	Right  *Node

	hasSymbol bool
	seq       int
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// HasSymbol reports whether n is a leaf carrying a real symbol.
func (n *Node) HasSymbol() bool {
	return n.hasSymbol
}

// Tree is an immutable Huffman tree.
type Tree struct {
	Root *Node
	// Leaves is the number of real symbols in the tree.
	Leaves int
}

// BuildTree builds the Huffman tree of a frequency table.
//
// An empty table yields a tree with a nil root. Symbols with a zero count are
// ignored.
func BuildTree(freq FrequencyTable) *Tree {
	syms := freq.Symbols()
	q := make(nodeQueue, 0, len(syms))
	for _, s := range syms {
		if freq[s] == 0 {
			continue
		}
		q = append(q, &Node{Symbol: s, Freq: freq[s], hasSymbol: true, seq: len(q)})
	}

	switch len(q) {
	case 0:
		return &Tree{}
	case 1:
		leaf := q[0]
		dummy := &Node{seq: 1}

		return &Tree{
			Root:   &Node{Freq: leaf.Freq, Left: leaf, Right: dummy, seq: 2},
			Leaves: 1,
		}
	}

	leaves := len(q)
	seq := len(q)
	heap.Init(&q)
	for q.Len() > 1 {
		left, _ := heap.Pop(&q).(*Node)
		right, _ := heap.Pop(&q).(*Node)
		heap.Push(&q, &Node{Freq: left.Freq + right.Freq, Left: left, Right: right, seq: seq})
		seq++
	}
	root, _ := heap.Pop(&q).(*Node)

	return &Tree{Root: root, Leaves: leaves}
}

// nodeQueue is a min-heap ordered by frequency, then by sequence number.
type nodeQueue []*Node

func (q nodeQueue) Len() int { return len(q) }

func (q nodeQueue) Less(i, j int) bool {
	if q[i].Freq != q[j].Freq {
		return q[i].Freq < q[j].Freq
	}

	return q[i].seq < q[j].seq
}

func (q nodeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *nodeQueue) Push(x any) {
	n, _ := x.(*Node)
	*q = append(*q, n)
}

func (q *nodeQueue) Pop() any {
	old := *q
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*q = old[:len(old)-1]

	return n
}
