package lz77

import "github.com/arloliu/owo/internal/hash"

// HashChainFinder indexes every position by the hash of its first
// MinMatchLength symbols and only compares positions sharing that hash.
//
// Chains are walked newest first, so it returns exactly the match the
// ExhaustiveFinder would.
type HashChainFinder struct {
	cfg    Config
	input  []Symbol
	hasher hash.SymbolHasher

	head map[uint64]int
	// prev[i] is the previous position with the same prefix hash as i, or -1.
	prev []int
	// next is the first position not yet indexed.
	next int
}

var _ MatchFinder = (*HashChainFinder)(nil)

// NewHashChainFinder creates a HashChainFinder. cfg must be valid.
func NewHashChainFinder(cfg Config) *HashChainFinder {
	return &HashChainFinder{cfg: cfg, head: make(map[uint64]int)}
}

func (f *HashChainFinder) Reset(input []Symbol) {
	f.input = input
	clear(f.head)
	if cap(f.prev) < len(input) {
		f.prev = make([]int, len(input))
	}
	f.prev = f.prev[:len(input)]
	f.next = 0
}

func (f *HashChainFinder) Config() Config {
	return f.cfg
}

func (f *HashChainFinder) Find(pos int) Match {
	f.indexUpTo(pos)

	minLen := f.cfg.MinMatchLength
	maxLen := min(f.cfg.MaxMatchLength, len(f.input)-pos)
	if maxLen < minLen {
		return Match{}
	}

	candidate, ok := f.head[f.hasher.Sum(f.input[pos:pos+minLen])]
	if !ok {
		return Match{}
	}

	var best Match
	start := max(0, pos-f.cfg.WindowSize)
	for i := candidate; i >= start; i = f.prev[i] {
		limit := matchLimit(f.cfg, i, pos, maxLen)
		if limit < minLen || limit <= best.Length {
			continue
		}
		if n := matchLen(f.input, i, pos, limit); n > best.Length {
			best = Match{Offset: pos - i, Length: n}
			if n == maxLen {
				break
			}
		}
	}
	if best.Length < minLen {
		return Match{}
	}

	return best
}

// indexUpTo links every position before pos whose prefix fits in the input.
func (f *HashChainFinder) indexUpTo(pos int) {
	minLen := f.cfg.MinMatchLength
	for ; f.next < pos; f.next++ {
		i := f.next
		if i+minLen > len(f.input) {
			f.prev[i] = -1
			continue
		}

		h := f.hasher.Sum(f.input[i : i+minLen])
		if p, ok := f.head[h]; ok {
			f.prev[i] = p
		} else {
			f.prev[i] = -1
		}
		f.head[h] = i
	}
}
