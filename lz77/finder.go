package lz77

import (
	"fmt"

	"github.com/arloliu/owo/errs"
	"github.com/arloliu/owo/format"
)

// Match is a back-reference candidate. A zero Length means no match.
type Match struct {
	Offset int
	Length int
}

// MatchFinder searches the window behind a position for the longest match.
//
// Implementations must agree exactly: the longest match of at least
// MinMatchLength symbols wins, and among equal lengths the smallest offset.
type MatchFinder interface {
	// Reset prepares the finder for a new input.
	Reset(input []Symbol)
	// Find returns the best match starting at pos. Positions passed to Find
	// after a Reset must be increasing.
	Find(pos int) Match
	// Config returns the configuration the finder was built with.
	Config() Config
}

// NewMatchFinder creates the match finder of type t.
func NewMatchFinder(t format.MatchFinderType, cfg Config) (MatchFinder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch t {
	case format.MatchFinderHashChain:
		return NewHashChainFinder(cfg), nil
	case format.MatchFinderExhaustive:
		return NewExhaustiveFinder(cfg), nil
	default:
		return nil, fmt.Errorf("%w: match finder %s", errs.ErrInvalidConfig, t)
	}
}

// ExhaustiveFinder compares every window position against the lookahead.
// It costs O(W*L) per position and serves as the reference for faster finders.
type ExhaustiveFinder struct {
	cfg   Config
	input []Symbol
}

var _ MatchFinder = (*ExhaustiveFinder)(nil)

// NewExhaustiveFinder creates an ExhaustiveFinder. cfg must be valid.
func NewExhaustiveFinder(cfg Config) *ExhaustiveFinder {
	return &ExhaustiveFinder{cfg: cfg}
}

func (f *ExhaustiveFinder) Reset(input []Symbol) {
	f.input = input
}

func (f *ExhaustiveFinder) Config() Config {
	return f.cfg
}

func (f *ExhaustiveFinder) Find(pos int) Match {
	maxLen := min(f.cfg.MaxMatchLength, len(f.input)-pos)
	if maxLen < f.cfg.MinMatchLength {
		return Match{}
	}

	var best Match
	start := max(0, pos-f.cfg.WindowSize)
	// Walking from the nearest candidate outward keeps the smallest offset on ties.
	for i := pos - 1; i >= start; i-- {
		limit := matchLimit(f.cfg, i, pos, maxLen)
		if limit <= best.Length {
			continue
		}
		if n := matchLen(f.input, i, pos, limit); n > best.Length {
			best = Match{Offset: pos - i, Length: n}
			if n == maxLen {
				break
			}
		}
	}
	if best.Length < f.cfg.MinMatchLength {
		return Match{}
	}

	return best
}

// matchLimit returns the longest match allowed from candidate i at pos.
func matchLimit(cfg Config, i, pos, maxLen int) int {
	if cfg.AllowOverlap {
		return maxLen
	}

	return min(maxLen, pos-i)
}

// matchLen returns the number of equal symbols at i and j, up to limit.
func matchLen(input []Symbol, i, j, limit int) int {
	n := 0
	for n < limit && input[i+n] == input[j+n] {
		n++
	}

	return n
}
