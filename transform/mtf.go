package transform

import (
	"fmt"

	"github.com/arloliu/owo/errs"
	"github.com/arloliu/owo/format"
)

// InitialAlphabet is the number of symbols, 0 through 255, the move-to-front
// list starts with.
const InitialAlphabet = 256

// MoveToFront replaces each symbol with its index in a recency list and then
// moves it to the front, so recently repeated symbols become small numbers.
//
// A symbol not yet in the list is written as the escape index, the current
// list length, followed by the symbol itself. The list then grows by one.
type MoveToFront struct{}

var _ Transform = MoveToFront{}

func (MoveToFront) Type() format.TransformType {
	return format.TransformMoveToFront
}

func (MoveToFront) Forward(src []Symbol) []Symbol {
	list := initialList()
	out := make([]Symbol, 0, len(src))
	for _, s := range src {
		idx := indexOf(list, s)
		if idx < 0 {
			out = append(out, Symbol(len(list)), s) //nolint:gosec
			list = append(list, s)
			idx = len(list) - 1
		} else {
			out = append(out, Symbol(idx)) //nolint:gosec
		}
		moveToFront(list, idx)
	}

	return out
}

func (MoveToFront) Inverse(src []Symbol) ([]Symbol, error) {
	list := initialList()
	out := make([]Symbol, 0, len(src))
	for i := 0; i < len(src); i++ {
		idx := int(src[i])
		switch {
		case idx < len(list):
		case idx == len(list):
			i++
			if i == len(src) {
				return nil, fmt.Errorf("%w: move-to-front escape at end of input", errs.ErrCorruptBitstream)
			}
			s := src[i]
			if indexOf(list, s) >= 0 {
				return nil, fmt.Errorf("%w: move-to-front escape for known symbol %d", errs.ErrCorruptBitstream, s)
			}
			list = append(list, s)
		default:
			return nil, fmt.Errorf("%w: move-to-front index %d beyond list of %d", errs.ErrCorruptBitstream, idx, len(list))
		}
		out = append(out, list[idx])
		moveToFront(list, idx)
	}

	return out, nil
}

func initialList() []Symbol {
	list := make([]Symbol, InitialAlphabet)
	for i := range list {
		list[i] = Symbol(i) //nolint:gosec
	}

	return list
}

func indexOf(list []Symbol, s Symbol) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}

	return -1
}

func moveToFront(list []Symbol, idx int) {
	s := list[idx]
	copy(list[1:idx+1], list[:idx])
	list[0] = s
}
