package lz77

import (
	"fmt"
	"math"

	"github.com/arloliu/owo/errs"
)

// Symbol is the unit the matcher works on.
type Symbol = uint32

// NoSymbol marks a token whose match reaches the end of the input, so no
// symbol follows it. Inputs must not contain NoSymbol.
const NoSymbol Symbol = math.MaxUint32

// Token is one matcher output unit: copy Length symbols from Offset symbols
// back, then append Next. A literal has a zero offset and length.
type Token struct {
	Offset uint32
	Length uint32
	Next   Symbol
}

// Literal returns the literal token of s.
func Literal(s Symbol) Token {
	return Token{Next: s}
}

// IsLiteral reports whether t carries a single symbol and no back-reference.
func (t Token) IsLiteral() bool {
	return t.Offset == 0 && t.Length == 0
}

// String implements fmt.Stringer.
func (t Token) String() string {
	next := "none"
	if t.Next != NoSymbol {
		next = fmt.Sprintf("%d", t.Next)
	}

	return fmt.Sprintf("(%d,%d,%s)", t.Offset, t.Length, next)
}

// TokenSymbols is the number of symbols a flattened token occupies.
const TokenSymbols = 3

// Flatten lays tokens out as consecutive (offset, length, next) symbol triples.
func Flatten(tokens []Token) []Symbol {
	return AppendFlat(make([]Symbol, 0, len(tokens)*TokenSymbols), tokens)
}

// AppendFlat appends the flattened form of tokens to dst.
func AppendFlat(dst []Symbol, tokens []Token) []Symbol {
	for _, t := range tokens {
		dst = append(dst, t.Offset, t.Length, t.Next)
	}

	return dst
}

// Unflatten is the inverse of Flatten.
//
// Returns ErrCorruptBitstream if the symbol count is not a multiple of three.
func Unflatten(symbols []Symbol) ([]Token, error) {
	if len(symbols)%TokenSymbols != 0 {
		return nil, fmt.Errorf("%w: %d token symbols is not a multiple of %d",
			errs.ErrCorruptBitstream, len(symbols), TokenSymbols)
	}

	tokens := make([]Token, len(symbols)/TokenSymbols)
	for i := range tokens {
		tokens[i] = Token{
			Offset: symbols[i*TokenSymbols],
			Length: symbols[i*TokenSymbols+1],
			Next:   symbols[i*TokenSymbols+2],
		}
	}

	return tokens, nil
}
