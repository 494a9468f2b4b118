// Package transform provides reversible integer-sequence transforms that can
// run ahead of the entropy coder.
package transform

import (
	"fmt"

	"github.com/arloliu/owo/errs"
	"github.com/arloliu/owo/format"
)

// Symbol is the unit a transform maps.
type Symbol = uint32

// Transform is a reversible mapping of symbol sequences.
//
// Forward never fails. Inverse returns ErrCorruptBitstream when its input
// could not have been produced by Forward.
type Transform interface {
	Type() format.TransformType
	Forward(src []Symbol) []Symbol
	Inverse(src []Symbol) ([]Symbol, error)
}

// New creates the transform of type t.
func New(t format.TransformType) (Transform, error) {
	switch t {
	case format.TransformMoveToFront:
		return MoveToFront{}, nil
	case format.TransformRunLength:
		return RunLength{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnknownTransform, t)
	}
}

// Chain applies transforms in order on Forward and in reverse order on Inverse.
type Chain []Transform

var _ Transform = Chain(nil)

// NewChain creates a chain from stored stage types.
func NewChain(types ...format.TransformType) (Chain, error) {
	c := make(Chain, 0, len(types))
	for _, t := range types {
		tr, err := New(t)
		if err != nil {
			return nil, err
		}
		c = append(c, tr)
	}

	return c, nil
}

// Type returns TransformChain.
func (c Chain) Type() format.TransformType {
	return format.TransformChain
}

// Types returns the stage types in application order.
func (c Chain) Types() []format.TransformType {
	types := make([]format.TransformType, len(c))
	for i, t := range c {
		types[i] = t.Type()
	}

	return types
}

func (c Chain) Forward(src []Symbol) []Symbol {
	out := src
	for _, t := range c {
		out = t.Forward(out)
	}

	return out
}

func (c Chain) Inverse(src []Symbol) ([]Symbol, error) {
	out := src
	for i := len(c) - 1; i >= 0; i-- {
		var err error
		if out, err = c[i].Inverse(out); err != nil {
			return nil, fmt.Errorf("stage %d (%s): %w", i, c[i].Type(), err)
		}
	}

	return out, nil
}
