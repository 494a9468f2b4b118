package huffman

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/owo/errs"
)

func symbolsOf(s string) []Symbol {
	out := make([]Symbol, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = Symbol(s[i])
	}

	return out
}

func codeStrings(t *testing.T, cb *Codebook) map[Symbol]string {
	t.Helper()
	out := make(map[Symbol]string, cb.Len())
	for s, c := range cb.All() {
		out[s] = c.String()
	}

	return out
}

// optimalCost returns the weighted path length of an optimal prefix code,
// computed as the sum of all merge weights.
func optimalCost(freq FrequencyTable) uint64 {
	weights := make([]uint64, 0, len(freq))
	for _, n := range freq {
		weights = append(weights, n)
	}
	if len(weights) == 1 {
		return weights[0]
	}

	var cost uint64
	for len(weights) > 1 {
		slices.Sort(weights)
		merged := weights[0] + weights[1]
		cost += merged
		weights = append(weights[2:], merged)
	}

	return cost
}

func TestBuildCodebook_ClassicExample(t *testing.T) {
	freq := FrequencyTable{'a': 5, 'b': 9, 'c': 12, 'd': 13, 'e': 16, 'f': 45}

	cb, err := BuildCodebook(BuildTree(freq))
	require.NoError(t, err)
	require.Equal(t, map[Symbol]string{
		'a': "1100",
		'b': "1101",
		'c': "100",
		'd': "101",
		'e': "111",
		'f': "0",
	}, codeStrings(t, cb))
	require.Equal(t, []Symbol{'a', 'b', 'c', 'd', 'e', 'f'}, cb.Symbols())
	require.Equal(t, optimalCost(freq), cb.EncodedBitLen(freq))
}

func TestBuildTree_Empty(t *testing.T) {
	tree := BuildTree(FrequencyTable{})
	require.Nil(t, tree.Root)
	require.Equal(t, 0, tree.Leaves)

	cb, err := BuildCodebook(tree)
	require.NoError(t, err)
	require.Equal(t, 0, cb.Len())
}

func TestBuildTree_SingleSymbol(t *testing.T) {
	tree := BuildTree(FrequencyTable{'x': 300})
	require.NotNil(t, tree.Root)
	require.Equal(t, 1, tree.Leaves)
	require.Equal(t, uint64(300), tree.Root.Freq)
	require.True(t, tree.Root.Left.HasSymbol())
	require.False(t, tree.Root.Right.HasSymbol())
	require.True(t, tree.Root.Right.IsLeaf())
	require.Equal(t, uint64(0), tree.Root.Right.Freq)

	cb, err := BuildCodebook(tree)
	require.NoError(t, err)
	require.Equal(t, map[Symbol]string{'x': "0"}, codeStrings(t, cb))
}

func TestBuildCodebook_LeafRoot(t *testing.T) {
	tree := &Tree{Root: &Node{Symbol: 7, Freq: 1, hasSymbol: true}, Leaves: 1}
	cb, err := BuildCodebook(tree)
	require.NoError(t, err)
	require.Equal(t, map[Symbol]string{7: "0"}, codeStrings(t, cb))
}

func TestBuildTree_ZeroCountsIgnored(t *testing.T) {
	tree := BuildTree(FrequencyTable{1: 0, 2: 4})
	require.Equal(t, 1, tree.Leaves)
	require.Equal(t, Symbol(2), tree.Root.Left.Symbol)
}

func TestBuildTree_Deterministic(t *testing.T) {
	// Many equal frequencies exercise the tie-break.
	freq := FrequencyTable{}
	for s := Symbol(0); s < 40; s++ {
		freq[s*7919%1000] = uint64(s%4 + 1)
	}

	first, err := BuildCodebook(BuildTree(freq))
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := BuildCodebook(BuildTree(freq))
		require.NoError(t, err)
		require.Equal(t, codeStrings(t, first), codeStrings(t, again))
	}
}

func TestBuildCodebook_PrefixFreeAndOptimal(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for round := 0; round < 200; round++ {
		freq := FrequencyTable{}
		n := rng.Intn(300) + 1
		for i := 0; i < n; i++ {
			freq[Symbol(rng.Intn(1<<22))] = uint64(rng.Intn(1000) + 1)
		}

		cb, err := BuildCodebook(BuildTree(freq))
		require.NoError(t, err)
		require.Equal(t, len(freq), cb.Len())
		require.True(t, cb.IsPrefixFree())
		require.Equal(t, optimalCost(freq), cb.EncodedBitLen(freq))
	}
}

func TestBuildCodebook_SkewedFrequencies(t *testing.T) {
	// Fibonacci weights produce the deepest possible tree for the alphabet size.
	freq := FrequencyTable{}
	a, b := uint64(1), uint64(1)
	for s := Symbol(0); s < 40; s++ {
		freq[s] = a
		a, b = b, a+b
	}

	cb, err := BuildCodebook(BuildTree(freq))
	require.NoError(t, err)
	require.True(t, cb.IsPrefixFree())

	longest := uint8(0)
	for _, c := range cb.All() {
		longest = max(longest, c.Len)
	}
	require.Equal(t, uint8(39), longest)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input []Symbol
	}{
		{"empty", []Symbol{}},
		{"single", symbolsOf("a")},
		{"single repeated", symbolsOf("xxxxxxxxxxxxxxxxxxxxxxx")},
		{"text", symbolsOf("this is an example of a huffman tree")},
		{"wide symbols", []Symbol{0, 1 << 21, 0xFFFFFFFF, 1 << 21, 0, 0, 42}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bs, cb, err := Encode(tt.input)
			require.NoError(t, err)

			got, err := Decode(bs, cb)
			require.NoError(t, err)
			require.Equal(t, tt.input, got)

			parsed, err := ParseBitstream(bs.AppendTo(nil))
			require.NoError(t, err)
			got, err = cb.Decode(parsed)
			require.NoError(t, err)
			require.Equal(t, tt.input, got)
		})
	}
}

func TestEncode_SingleSymbolBits(t *testing.T) {
	input := make([]Symbol, 300)
	for i := range input {
		input[i] = 'x'
	}

	bs, cb, err := Encode(input)
	require.NoError(t, err)
	require.Equal(t, 1, cb.Len())
	require.Equal(t, uint64(300), bs.BitLen())
	require.Len(t, bs.Packed, 38)
	require.Equal(t, uint8(300%8), bs.Trailing)
	require.Equal(t, 39, bs.Size())
}

func TestEncode_UnknownSymbol(t *testing.T) {
	_, cb, err := Encode(symbolsOf("abc"))
	require.NoError(t, err)

	_, err = cb.Encode(symbolsOf("abd"))
	require.ErrorIs(t, err, errs.ErrUnknownSymbol)
}

func TestDecode_Corrupt(t *testing.T) {
	cb, err := NewCodebook(map[Symbol]Code{
		'a': {Bits: 0b0, Len: 1},
		'b': {Bits: 0b10, Len: 2},
	})
	require.NoError(t, err)

	t.Run("ends inside a code", func(t *testing.T) {
		// 0 1 -> "a" then a dangling "1"
		_, err := cb.Decode(Bitstream{Packed: []byte{0b01000000}, Trailing: 2})
		require.ErrorIs(t, err, errs.ErrCorruptBitstream)
	})

	t.Run("no matching branch", func(t *testing.T) {
		// 11 has no code
		_, err := cb.Decode(Bitstream{Packed: []byte{0b11000000}, Trailing: 2})
		require.ErrorIs(t, err, errs.ErrCorruptBitstream)
	})

	t.Run("bad trailing count", func(t *testing.T) {
		_, err := cb.Decode(Bitstream{Packed: []byte{0x00}, Trailing: 9})
		require.ErrorIs(t, err, errs.ErrCorruptBitstream)
	})

	t.Run("bits with empty codebook", func(t *testing.T) {
		empty, err := NewCodebook(nil)
		require.NoError(t, err)
		_, err = empty.Decode(Bitstream{Packed: []byte{0x00}})
		require.ErrorIs(t, err, errs.ErrCorruptBitstream)
	})

	t.Run("valid", func(t *testing.T) {
		// 0 10 0 -> a b a
		got, err := cb.Decode(Bitstream{Packed: []byte{0b01000000}, Trailing: 4})
		require.NoError(t, err)
		require.Equal(t, symbolsOf("aba"), got)
	})
}

func TestNewCodebook_Validation(t *testing.T) {
	tests := []struct {
		name    string
		entries map[Symbol]Code
	}{
		{"prefix", map[Symbol]Code{1: {Bits: 0b1, Len: 1}, 2: {Bits: 0b10, Len: 2}}},
		{"duplicate", map[Symbol]Code{1: {Bits: 0b01, Len: 2}, 2: {Bits: 0b01, Len: 2}}},
		{"zero length", map[Symbol]Code{1: {Bits: 0, Len: 0}}},
		{"too long", map[Symbol]Code{1: {Bits: 0, Len: 65}}},
		{"stray bits", map[Symbol]Code{1: {Bits: 0b100, Len: 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCodebook(tt.entries)
			require.ErrorIs(t, err, errs.ErrMalformedCodebook)
		})
	}
}

func TestCode_StringAndParse(t *testing.T) {
	for _, s := range []string{"0", "1", "0110", "1111111100000000"} {
		c, err := ParseCode(s)
		require.NoError(t, err)
		require.Equal(t, s, c.String())
	}

	_, err := ParseCode("")
	require.ErrorIs(t, err, errs.ErrMalformedCodebook)
	_, err = ParseCode("012")
	require.ErrorIs(t, err, errs.ErrMalformedCodebook)
}

func FuzzDecode(f *testing.F) {
	f.Add([]byte{0x00, 0xAA})
	f.Add([]byte{0x03, 0xFF, 0x00})
	cb, err := NewCodebook(map[Symbol]Code{
		'a': {Bits: 0b0, Len: 1},
		'b': {Bits: 0b10, Len: 2},
		'c': {Bits: 0b110, Len: 3},
	})
	if err != nil {
		f.Fatal(err)
	}
	f.Fuzz(func(t *testing.T, data []byte) {
		bs, err := ParseBitstream(data)
		if err != nil {
			return
		}
		out, err := cb.Decode(bs)
		if err != nil {
			return
		}
		again, err := cb.Encode(out)
		require.NoError(t, err)
		require.Equal(t, bs.BitLen(), again.BitLen())
	})
}

func BenchmarkEncode(b *testing.B) {
	input := make([]Symbol, 64*1024)
	rng := rand.New(rand.NewSource(1))
	for i := range input {
		input[i] = Symbol(rng.ExpFloat64() * 20)
	}
	b.ResetTimer()
	for b.Loop() {
		_, _, _ = Encode(input)
	}
}
