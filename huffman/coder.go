package huffman

import (
	"fmt"

	"github.com/arloliu/owo/errs"
	"github.com/arloliu/owo/internal/bitpack"
)

// Bitstream is a packed sequence of codes plus the count of valid bits in its final byte.
type Bitstream struct {
	Packed   []byte
	Trailing uint8
}

// BitLen returns the number of valid bits in the stream.
func (b Bitstream) BitLen() uint64 {
	return bitpack.BitLen(len(b.Packed), b.Trailing)
}

// Size returns the serialized size of the stream: the prefix byte plus the packed bytes.
func (b Bitstream) Size() int {
	return 1 + len(b.Packed)
}

// AppendTo appends the serialized stream to dst.
func (b Bitstream) AppendTo(dst []byte) []byte {
	return bitpack.AppendStream(dst, b.Packed, b.Trailing)
}

// ParseBitstream parses a stream produced by AppendTo. The packed bytes alias data.
func ParseBitstream(data []byte) (Bitstream, error) {
	packed, trailing, err := bitpack.SplitStream(data)
	if err != nil {
		return Bitstream{}, err
	}

	return Bitstream{Packed: packed, Trailing: trailing}, nil
}

// Encode builds a codebook from the frequencies of symbols and encodes them with it.
func Encode(symbols []Symbol) (Bitstream, *Codebook, error) {
	cb, err := BuildCodebook(BuildTree(CountFrequencies(symbols)))
	if err != nil {
		return Bitstream{}, nil, err
	}

	bs, err := cb.Encode(symbols)
	if err != nil {
		return Bitstream{}, nil, err
	}

	return bs, cb, nil
}

// Encode concatenates the codes of symbols in order and packs them.
//
// Returns ErrUnknownSymbol if a symbol has no code.
func (cb *Codebook) Encode(symbols []Symbol) (Bitstream, error) {
	w := bitpack.NewWriter()
	for i, s := range symbols {
		c, ok := cb.codes[s]
		if !ok {
			return Bitstream{}, fmt.Errorf("%w: symbol %d at index %d", errs.ErrUnknownSymbol, s, i)
		}
		w.WriteCode(c.Bits, c.Len)
	}

	packed, trailing, err := w.Finish()
	if err != nil {
		return Bitstream{}, err
	}

	return Bitstream{Packed: packed, Trailing: trailing}, nil
}

// Decode decodes a bitstream with the given codebook.
func Decode(bs Bitstream, cb *Codebook) ([]Symbol, error) {
	return cb.Decode(bs)
}

// Decode walks the bitstream and emits a symbol each time a complete code is read.
//
// Returns ErrCorruptBitstream if a bit sequence matches no code or the
// stream ends in the middle of a code.
func (cb *Codebook) Decode(bs Bitstream) ([]Symbol, error) {
	r, err := bitpack.NewReader(bs.Packed, bs.Trailing)
	if err != nil {
		return nil, err
	}
	if r.Remaining() == 0 {
		return []Symbol{}, nil
	}

	t, err := newTrie(cb)
	if err != nil {
		return nil, err
	}

	out := make([]Symbol, 0, r.Remaining()/uint64(max(1, cb.minLen())))
	node := int32(0)
	for r.Remaining() > 0 {
		bit, err := r.ReadBit()
		if err != nil {
			return nil, err
		}
		next := t.nodes[node].child[bit]
		if next == 0 {
			return nil, fmt.Errorf("%w: no code matches at bit %d", errs.ErrCorruptBitstream, bs.BitLen()-r.Remaining()-1)
		}
		if t.nodes[next].leaf {
			out = append(out, t.nodes[next].symbol)
			node = 0

			continue
		}
		node = next
	}
	if node != 0 {
		return nil, fmt.Errorf("%w: stream ends inside a code", errs.ErrCorruptBitstream)
	}

	return out, nil
}

func (cb *Codebook) minLen() int {
	m := MaxCodeLen
	for _, c := range cb.codes {
		m = min(m, int(c.Len))
	}

	return m
}

// trie is the decoding tree rebuilt from a codebook. Node 0 is the root; a
// zero child index means the branch is absent.
type trie struct {
	nodes []trieNode
}

type trieNode struct {
	child  [2]int32
	symbol Symbol
	leaf   bool
}

func newTrie(cb *Codebook) (*trie, error) {
	t := &trie{nodes: make([]trieNode, 1, 2*len(cb.symbols)+1)}
	for _, s := range cb.symbols {
		if err := t.insert(s, cb.codes[s]); err != nil {
			return nil, err
		}
	}

	return t, nil
}

func (t *trie) insert(s Symbol, c Code) error {
	node := int32(0)
	for i := 0; i < int(c.Len); i++ {
		if t.nodes[node].leaf {
			return fmt.Errorf("%w: code of symbol %d extends code of symbol %d", errs.ErrMalformedCodebook, s, t.nodes[node].symbol)
		}
		bit := c.Bit(i)
		next := t.nodes[node].child[bit]
		if next == 0 {
			t.nodes = append(t.nodes, trieNode{})
			next = int32(len(t.nodes) - 1) //nolint:gosec
			t.nodes[node].child[bit] = next
		}
		node = next
	}

	n := &t.nodes[node]
	if n.leaf || n.child[0] != 0 || n.child[1] != 0 {
		return fmt.Errorf("%w: code of symbol %d is a prefix of another code", errs.ErrMalformedCodebook, s)
	}
	n.leaf = true
	n.symbol = s

	return nil
}
