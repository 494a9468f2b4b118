package huffman

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/arloliu/owo/errs"
)

// MaxCodeLen is the longest code a codebook may hold.
const MaxCodeLen = 64

// Code is a prefix code of Len bits, right-aligned in Bits.
type Code struct {
	Bits uint64
	Len  uint8
}

// Bit returns the i-th digit of the code, counting from the most significant.
func (c Code) Bit(i int) uint8 {
	return uint8(c.Bits>>(int(c.Len)-1-i)) & 1 //nolint:gosec
}

// String renders the code as a string of '0' and '1'.
func (c Code) String() string {
	var sb strings.Builder
	sb.Grow(int(c.Len))
	for i := 0; i < int(c.Len); i++ {
		sb.WriteByte('0' + c.Bit(i))
	}

	return sb.String()
}

// ParseCode parses a string of '0' and '1' digits.
func ParseCode(s string) (Code, error) {
	if len(s) == 0 || len(s) > MaxCodeLen {
		return Code{}, fmt.Errorf("%w: code length %d", errs.ErrMalformedCodebook, len(s))
	}

	var c Code
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			c.Bits <<= 1
		case '1':
			c.Bits = c.Bits<<1 | 1
		default:
			return Code{}, fmt.Errorf("%w: invalid digit %q", errs.ErrMalformedCodebook, s[i])
		}
	}
	c.Len = uint8(len(s)) //nolint:gosec

	return c, nil
}

// isPrefixOf reports whether c is a prefix of other.
func (c Code) isPrefixOf(other Code) bool {
	if c.Len > other.Len {
		return false
	}

	return other.Bits>>(other.Len-c.Len) == c.Bits
}

// Codebook maps symbols to prefix codes. It is immutable once built.
type Codebook struct {
	codes   map[Symbol]Code
	symbols []Symbol
}

// BuildCodebook derives the codebook of a tree.
//
// The root-as-leaf case cannot occur because BuildTree always gives a lone
// symbol a sibling, but a bare leaf root is still assigned the code "0".
func BuildCodebook(t *Tree) (*Codebook, error) {
	cb := &Codebook{codes: make(map[Symbol]Code, t.Leaves)}
	if t.Root == nil {
		return cb, nil
	}

	type frame struct {
		node *Node
		code Code
	}
	stack := []frame{{node: t.Root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.node.IsLeaf() {
			if !f.node.HasSymbol() {
				continue
			}
			code := f.code
			if code.Len == 0 {
				code = Code{Bits: 0, Len: 1}
			}
			cb.codes[f.node.Symbol] = code
			cb.symbols = append(cb.symbols, f.node.Symbol)

			continue
		}

		if f.code.Len == MaxCodeLen {
			return nil, fmt.Errorf("%w: tree deeper than %d bits", errs.ErrMalformedCodebook, MaxCodeLen)
		}
		// Right is pushed first so the left subtree is visited first.
		if f.node.Right != nil {
			stack = append(stack, frame{node: f.node.Right, code: Code{Bits: f.code.Bits<<1 | 1, Len: f.code.Len + 1}})
		}
		if f.node.Left != nil {
			stack = append(stack, frame{node: f.node.Left, code: Code{Bits: f.code.Bits << 1, Len: f.code.Len + 1}})
		}
	}
	slices.Sort(cb.symbols)

	return cb, nil
}

// NewCodebook creates a codebook from explicit entries, as read from a container.
//
// Returns ErrMalformedCodebook if a code is empty, longer than MaxCodeLen, or
// a prefix of another code.
func NewCodebook(entries map[Symbol]Code) (*Codebook, error) {
	cb := &Codebook{
		codes:   make(map[Symbol]Code, len(entries)),
		symbols: make([]Symbol, 0, len(entries)),
	}
	for s, c := range entries {
		if c.Len == 0 || c.Len > MaxCodeLen {
			return nil, fmt.Errorf("%w: symbol %d has code length %d", errs.ErrMalformedCodebook, s, c.Len)
		}
		if c.Len < 64 && c.Bits>>c.Len != 0 {
			return nil, fmt.Errorf("%w: symbol %d has bits beyond its length", errs.ErrMalformedCodebook, s)
		}
		cb.codes[s] = c
		cb.symbols = append(cb.symbols, s)
	}
	slices.Sort(cb.symbols)

	// The trie insertion rejects any code that is a prefix of another.
	if _, err := newTrie(cb); err != nil {
		return nil, err
	}

	return cb, nil
}

// Len returns the number of symbols in the codebook.
func (cb *Codebook) Len() int {
	return len(cb.symbols)
}

// Code returns the code of s.
func (cb *Codebook) Code(s Symbol) (Code, bool) {
	c, ok := cb.codes[s]
	return c, ok
}

// Symbols returns the symbols in ascending order. The slice must not be modified.
func (cb *Codebook) Symbols() []Symbol {
	return cb.symbols
}

// All iterates over the entries in ascending symbol order.
func (cb *Codebook) All() iter.Seq2[Symbol, Code] {
	return func(yield func(Symbol, Code) bool) {
		for _, s := range cb.symbols {
			if !yield(s, cb.codes[s]) {
				return
			}
		}
	}
}

// IsPrefixFree reports whether no code is a prefix of another code.
func (cb *Codebook) IsPrefixFree() bool {
	codes := make([]Code, 0, len(cb.symbols))
	for _, s := range cb.symbols {
		codes = append(codes, cb.codes[s])
	}
	for i := range codes {
		for j := range codes {
			if i != j && codes[i].isPrefixOf(codes[j]) {
				return false
			}
		}
	}

	return true
}

// EncodedBitLen returns the number of bits needed to encode a sequence with the given frequencies.
func (cb *Codebook) EncodedBitLen(freq FrequencyTable) uint64 {
	var total uint64
	for s, n := range freq {
		total += n * uint64(cb.codes[s].Len)
	}

	return total
}
