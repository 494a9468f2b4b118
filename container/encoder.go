package container

import (
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/owo/errs"
	"github.com/arloliu/owo/format"
	"github.com/arloliu/owo/huffman"
	"github.com/arloliu/owo/internal/options"
	"github.com/arloliu/owo/internal/pool"
	"github.com/arloliu/owo/lz77"
	"github.com/arloliu/owo/section"
	"github.com/arloliu/owo/transform"
)

// Encoder compresses byte slices into containers.
//
// Note: The Encoder is NOT thread-safe. Use one Encoder per goroutine.
type Encoder struct {
	cfg    Config
	finder lz77.MatchFinder
	chain  transform.Chain
}

// NewEncoder creates an Encoder from the default configuration and opts.
//
// Returns:
//   - *Encoder: Encoder ready for use
//   - error: ErrInvalidConfig if the resulting configuration is invalid
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	cfg := DefaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	finder, err := lz77.NewMatchFinder(cfg.MatchFinder, cfg.MatcherConfig())
	if err != nil {
		return nil, err
	}

	chain, err := transform.NewChain(cfg.Transforms...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidConfig, err)
	}

	return &Encoder{cfg: cfg, finder: finder, chain: chain}, nil
}

// Config returns a copy of the encoder configuration.
func (e *Encoder) Config() Config {
	cfg := e.cfg
	cfg.Transforms = slices.Clone(e.cfg.Transforms)

	return cfg
}

// Encode compresses data into a new container.
func (e *Encoder) Encode(data []byte) ([]byte, error) {
	out, _, err := e.EncodeWithStats(data)
	return out, err
}

// candidate is a fully serialized container held in a pooled buffer.
type candidate struct {
	mode format.Mode
	buf  *pool.ByteBuffer
}

// EncodeWithStats compresses data and reports how the container was chosen.
func (e *Encoder) EncodeWithStats(data []byte) ([]byte, Stats, error) {
	if uint64(len(data)) > math.MaxUint32 {
		return nil, Stats{}, fmt.Errorf("%w: %d bytes", errs.ErrInputTooLarge, len(data))
	}

	stats := Stats{
		Version:   e.cfg.Version,
		InputSize: len(data),
		RawSize:   section.RawOverhead + len(data),
	}
	if e.cfg.Version == format.VersionV2 && len(data) < e.cfg.MinInputSize {
		return e.encodeRaw(data, &stats), stats, nil
	}

	syms, release := pool.GetSymbolSlice(len(data))
	defer release()
	for i, b := range data {
		syms[i] = huffman.Symbol(b)
	}

	candidates := make([]candidate, 0, 3)
	defer func() {
		for _, c := range candidates {
			pool.PutContainerBuffer(c.buf)
		}
	}()

	add := func(mode format.Mode, stages []format.TransformType, symbols []huffman.Symbol) error {
		buf := pool.GetContainerBuffer()
		candidates = append(candidates, candidate{mode: mode, buf: buf})
		if err := e.appendEntropy(buf, mode, stages, symbols); err != nil {
			return fmt.Errorf("%s candidate: %w", mode, err)
		}
		stats.setCandidateSize(mode, buf.Len())

		return nil
	}

	if err := add(format.ModeEntropyOnly, nil, syms); err != nil {
		return nil, stats, err
	}

	tokens := lz77.Compress(syms, e.finder)
	stats.Tokens = len(tokens)
	if err := add(format.ModeDictionaryEntropy, nil, lz77.Flatten(tokens)); err != nil {
		return nil, stats, err
	}

	if len(e.chain) > 0 {
		if err := add(format.ModeTransformEntropy, e.cfg.Transforms, e.chain.Forward(syms)); err != nil {
			return nil, stats, err
		}
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.buf.Len() < best.buf.Len() {
			best = c
		}
	}

	if !e.worthKeeping(best.buf.Len(), &stats) {
		return e.encodeRaw(data, &stats), stats, nil
	}

	out := best.buf.Clone()
	stats.Mode = best.mode
	stats.OutputSize = len(out)

	return out, stats, nil
}

// worthKeeping reports whether a candidate of size bytes beats RAW.
func (e *Encoder) worthKeeping(size int, stats *Stats) bool {
	if e.cfg.Version == format.VersionV1 {
		return size < stats.RawSize
	}

	return float64(size) <= e.cfg.MaxRatio*float64(stats.InputSize)
}

func (e *Encoder) encodeRaw(data []byte, stats *Stats) []byte {
	out := make([]byte, 0, section.RawOverhead+len(data))
	out = section.NewHeader(e.cfg.Version, format.ModeRaw).AppendTo(out)
	out = section.AppendRaw(out, data)

	stats.Mode = format.ModeRaw
	stats.OutputSize = len(out)

	return out
}

// appendEntropy Huffman-codes symbols and appends a complete container of the given mode to buf.
func (e *Encoder) appendEntropy(buf *pool.ByteBuffer, mode format.Mode, stages []format.TransformType, symbols []huffman.Symbol) error {
	bs, cb, err := huffman.Encode(symbols)
	if err != nil {
		return err
	}

	h := section.NewHeader(e.cfg.Version, mode)
	ints := h.Integers()

	buf.B = h.AppendTo(buf.B)
	if mode == format.ModeTransformEntropy {
		buf.B = section.AppendTransforms(buf.B, stages, ints)
	}
	buf.Grow(section.EntropySize(bs, cb, ints))
	buf.B = section.AppendEntropy(buf.B, bs, cb, ints)

	return nil
}
