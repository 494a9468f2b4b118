// Package lz77 implements the greedy sliding-window matcher that turns a
// symbol sequence into (offset, length, next) tokens, and the reconstructor
// that replays them.
package lz77

import (
	"fmt"

	"github.com/arloliu/owo/errs"
)

// Compress scans input left to right and emits one token per step.
//
// At each position the finder's longest match becomes a back-reference
// followed by the next input symbol, or NoSymbol when the match reaches the
// end. Without a match of at least MinMatchLength symbols a literal is emitted.
func Compress(input []Symbol, finder MatchFinder) []Token {
	if len(input) == 0 {
		return []Token{}
	}

	finder.Reset(input)
	defer finder.Reset(nil)

	tokens := make([]Token, 0, len(input)/2+1)
	for pos := 0; pos < len(input); {
		m := finder.Find(pos)
		if m.Length == 0 {
			tokens = append(tokens, Literal(input[pos]))
			pos++

			continue
		}

		next := NoSymbol
		if end := pos + m.Length; end < len(input) {
			next = input[end]
		}
		tokens = append(tokens, Token{
			Offset: uint32(m.Offset), //nolint:gosec
			Length: uint32(m.Length), //nolint:gosec
			Next:   next,
		})
		pos += m.Length + 1
	}

	return tokens
}

// Decompress replays tokens into the symbol sequence they describe.
//
// Returns ErrInvalidBackReference if a token reaches before the start of the
// output, has a zero offset with a non-zero length, or exceeds the format
// limits on offset and length.
func Decompress(tokens []Token) ([]Symbol, error) {
	out := make([]Symbol, 0, len(tokens))
	for i, t := range tokens {
		if t.IsLiteral() {
			if t.Next != NoSymbol {
				out = append(out, t.Next)
			}

			continue
		}

		switch {
		case t.Offset == 0:
			return nil, fmt.Errorf("%w: token %d has length %d at offset 0", errs.ErrInvalidBackReference, i, t.Length)
		case uint64(t.Offset) > uint64(len(out)) || t.Offset > MaxWindowSize:
			return nil, fmt.Errorf("%w: token %d offset %d exceeds output length %d",
				errs.ErrInvalidBackReference, i, t.Offset, len(out))
		case t.Length > MaxMatchLength:
			return nil, fmt.Errorf("%w: token %d length %d exceeds %d", errs.ErrInvalidBackReference, i, t.Length, MaxMatchLength)
		}

		// Copy one symbol at a time so overlapping references see their own output.
		start := len(out) - int(t.Offset)
		for j := 0; j < int(t.Length); j++ {
			out = append(out, out[start+j])
		}
		if t.Next != NoSymbol {
			out = append(out, t.Next)
		}
	}

	return out, nil
}
