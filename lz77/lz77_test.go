package lz77

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/owo/errs"
	"github.com/arloliu/owo/format"
)

func symbols(s string) []Symbol {
	out := make([]Symbol, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = Symbol(s[i])
	}

	return out
}

func finders(cfg Config) map[string]MatchFinder {
	return map[string]MatchFinder{
		"exhaustive": NewExhaustiveFinder(cfg),
		"hash chain": NewHashChainFinder(cfg),
	}
}

func TestCompress_Tokens(t *testing.T) {
	overlap := DefaultConfig()
	overlap.AllowOverlap = true

	tests := []struct {
		name  string
		cfg   Config
		input string
		want  []Token
	}{
		{
			name:  "empty",
			cfg:   DefaultConfig(),
			input: "",
			want:  []Token{},
		},
		{
			name:  "short literals",
			cfg:   DefaultConfig(),
			input: "ab",
			want:  []Token{Literal('a'), Literal('b')},
		},
		{
			name:  "repeated without overlap",
			cfg:   DefaultConfig(),
			input: "aaaaaaaaaa",
			want: []Token{
				Literal('a'), Literal('a'), Literal('a'),
				{Offset: 3, Length: 3, Next: 'a'},
				{Offset: 3, Length: 3, Next: NoSymbol},
			},
		},
		{
			name:  "repeated with overlap",
			cfg:   overlap,
			input: "aaaaaaaaaa",
			want: []Token{
				Literal('a'),
				{Offset: 1, Length: 9, Next: NoSymbol},
			},
		},
		{
			name:  "smallest offset wins ties",
			cfg:   DefaultConfig(),
			input: "abcXabcYabcZ",
			want: []Token{
				Literal('a'), Literal('b'), Literal('c'), Literal('X'),
				{Offset: 4, Length: 3, Next: 'Y'},
				{Offset: 4, Length: 3, Next: 'Z'},
			},
		},
		{
			name:  "window excludes distant match",
			cfg:   Config{WindowSize: 4, MaxMatchLength: 8, MinMatchLength: 3},
			input: "abcdefgabc",
			want: []Token{
				Literal('a'), Literal('b'), Literal('c'), Literal('d'), Literal('e'),
				Literal('f'), Literal('g'), Literal('a'), Literal('b'), Literal('c'),
			},
		},
		{
			name:  "max match length caps the copy",
			cfg:   Config{WindowSize: 64, MaxMatchLength: 4, MinMatchLength: 3},
			input: "abcdefabcdef",
			want: []Token{
				Literal('a'), Literal('b'), Literal('c'), Literal('d'), Literal('e'), Literal('f'),
				{Offset: 6, Length: 4, Next: 'e'},
				Literal('f'),
			},
		},
	}
	for _, tt := range tests {
		for name, finder := range finders(tt.cfg) {
			t.Run(tt.name+"/"+name, func(t *testing.T) {
				tokens := Compress(symbols(tt.input), finder)
				require.Equal(t, tt.want, tokens)

				out, err := Decompress(tokens)
				require.NoError(t, err)
				require.Equal(t, symbols(tt.input), out)
			})
		}
	}
}

func TestFinders_Agree(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	configs := []Config{
		DefaultConfig(),
		{WindowSize: 16, MaxMatchLength: 8, MinMatchLength: 3},
		{WindowSize: 16, MaxMatchLength: 8, MinMatchLength: 3, AllowOverlap: true},
		{WindowSize: 5, MaxMatchLength: 300, MinMatchLength: 1},
		{WindowSize: 100, MaxMatchLength: 10, MinMatchLength: 4, AllowOverlap: true},
	}

	for _, cfg := range configs {
		exhaustive := NewExhaustiveFinder(cfg)
		chain := NewHashChainFinder(cfg)
		for round := 0; round < 50; round++ {
			input := make([]Symbol, rng.Intn(2000))
			alphabet := rng.Intn(6) + 1
			for i := range input {
				input[i] = Symbol(rng.Intn(alphabet))
			}

			want := Compress(input, exhaustive)
			got := Compress(input, chain)
			require.Equal(t, want, got, "config %+v", cfg)

			out, err := Decompress(got)
			require.NoError(t, err)
			require.Equal(t, input, out)
		}
	}
}

func TestCompress_RoundTripText(t *testing.T) {
	text := "it was the best of times, it was the worst of times, it was the age of wisdom, " +
		"it was the age of foolishness, it was the epoch of belief, it was the epoch of incredulity"
	for name, finder := range finders(DefaultConfig()) {
		t.Run(name, func(t *testing.T) {
			tokens := Compress(symbols(text), finder)
			require.Less(t, len(tokens), len(text))

			out, err := Decompress(tokens)
			require.NoError(t, err)
			require.Equal(t, symbols(text), out)
		})
	}
}

func TestCompress_WideSymbols(t *testing.T) {
	input := []Symbol{1 << 20, 0, 1 << 31, 1 << 20, 0, 1 << 31, 1 << 20, 0, 1 << 31, 5}
	tokens := Compress(input, NewHashChainFinder(DefaultConfig()))
	out, err := Decompress(tokens)
	require.NoError(t, err)
	require.Equal(t, input, out)
}

func TestDecompress_Errors(t *testing.T) {
	tests := []struct {
		name   string
		tokens []Token
	}{
		{"offset beyond output", []Token{Literal('a'), {Offset: 2, Length: 1, Next: 'b'}}},
		{"reference into empty output", []Token{{Offset: 1, Length: 3, Next: NoSymbol}}},
		{"zero offset with length", []Token{Literal('a'), {Offset: 0, Length: 1, Next: 'b'}}},
		{"length over limit", []Token{Literal('a'), {Offset: 1, Length: MaxMatchLength + 1, Next: 'b'}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decompress(tt.tokens)
			require.ErrorIs(t, err, errs.ErrInvalidBackReference)
		})
	}
}

func TestDecompress_SentinelSkipped(t *testing.T) {
	out, err := Decompress([]Token{Literal('a'), Literal(NoSymbol), {Offset: 1, Length: 2, Next: NoSymbol}})
	require.NoError(t, err)
	require.Equal(t, symbols("aaa"), out)

	out, err = Decompress(nil)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestFlatten(t *testing.T) {
	tokens := []Token{Literal('a'), {Offset: 300, Length: 4, Next: NoSymbol}}
	flat := Flatten(tokens)
	require.Equal(t, []Symbol{0, 0, 'a', 300, 4, NoSymbol}, flat)

	back, err := Unflatten(flat)
	require.NoError(t, err)
	require.Equal(t, tokens, back)

	_, err = Unflatten(flat[:5])
	require.ErrorIs(t, err, errs.ErrCorruptBitstream)
}

func TestToken_String(t *testing.T) {
	require.Equal(t, "(0,0,97)", Literal('a').String())
	require.Equal(t, "(3,4,none)", Token{Offset: 3, Length: 4, Next: NoSymbol}.String())
	require.True(t, Literal(0).IsLiteral())
	require.False(t, Token{Offset: 1}.IsLiteral())
}

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero window", Config{WindowSize: 0, MaxMatchLength: 8, MinMatchLength: 3}},
		{"huge window", Config{WindowSize: MaxWindowSize + 1, MaxMatchLength: 8, MinMatchLength: 3}},
		{"zero min match", Config{WindowSize: 8, MaxMatchLength: 8, MinMatchLength: 0}},
		{"max below min", Config{WindowSize: 8, MaxMatchLength: 2, MinMatchLength: 3}},
		{"huge max match", Config{WindowSize: 8, MaxMatchLength: MaxMatchLength + 1, MinMatchLength: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.cfg.Validate(), errs.ErrInvalidConfig)
		})
	}
}

func TestNewMatchFinder(t *testing.T) {
	f, err := NewMatchFinder(format.MatchFinderHashChain, DefaultConfig())
	require.NoError(t, err)
	require.IsType(t, &HashChainFinder{}, f)
	require.Equal(t, DefaultConfig(), f.Config())

	f, err = NewMatchFinder(format.MatchFinderExhaustive, DefaultConfig())
	require.NoError(t, err)
	require.IsType(t, &ExhaustiveFinder{}, f)

	_, err = NewMatchFinder(format.MatchFinderType(0), DefaultConfig())
	require.ErrorIs(t, err, errs.ErrInvalidConfig)

	_, err = NewMatchFinder(format.MatchFinderHashChain, Config{})
	require.ErrorIs(t, err, errs.ErrInvalidConfig)
}

func FuzzDecompress(f *testing.F) {
	f.Add([]byte{0, 0, 'a', 1, 3, 'b'})
	f.Add([]byte{2, 1, 0})
	f.Fuzz(func(t *testing.T, data []byte) {
		syms := make([]Symbol, len(data)/3*3)
		for i := range syms {
			syms[i] = Symbol(data[i])
		}
		tokens, err := Unflatten(syms)
		require.NoError(t, err)
		_, _ = Decompress(tokens)
	})
}

func benchmarkInput() []Symbol {
	rng := rand.New(rand.NewSource(3))
	words := []string{"alpha ", "beta ", "gamma ", "delta ", "epsilon "}
	var input []Symbol
	for len(input) < 32*1024 {
		input = append(input, symbols(words[rng.Intn(len(words))])...)
	}

	return input
}

func BenchmarkCompress(b *testing.B) {
	input := benchmarkInput()
	for name, finder := range finders(DefaultConfig()) {
		b.Run(name, func(b *testing.B) {
			for b.Loop() {
				_ = Compress(input, finder)
			}
		})
	}
}
