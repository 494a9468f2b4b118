package transform

import (
	"fmt"

	"github.com/arloliu/owo/errs"
	"github.com/arloliu/owo/format"
)

// MaxRun is the longest run a single pair may describe.
const MaxRun = 255

// RunLength replaces runs of equal symbols with (symbol, run) pairs.
// Runs longer than MaxRun are split across pairs.
type RunLength struct{}

var _ Transform = RunLength{}

func (RunLength) Type() format.TransformType {
	return format.TransformRunLength
}

func (RunLength) Forward(src []Symbol) []Symbol {
	out := make([]Symbol, 0, len(src))
	for i := 0; i < len(src); {
		run := 1
		for i+run < len(src) && src[i+run] == src[i] && run < MaxRun {
			run++
		}
		out = append(out, src[i], Symbol(run)) //nolint:gosec
		i += run
	}

	return out
}

func (RunLength) Inverse(src []Symbol) ([]Symbol, error) {
	if len(src)%2 != 0 {
		return nil, fmt.Errorf("%w: run-length input has odd length %d", errs.ErrCorruptBitstream, len(src))
	}

	out := make([]Symbol, 0, len(src))
	for i := 0; i < len(src); i += 2 {
		s, run := src[i], src[i+1]
		if run == 0 || run > MaxRun {
			return nil, fmt.Errorf("%w: run length %d out of range", errs.ErrCorruptBitstream, run)
		}
		for range run {
			out = append(out, s)
		}
	}

	return out, nil
}
