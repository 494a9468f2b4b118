package container

import (
	"bytes"
	"fmt"

	"github.com/arloliu/owo/errs"
	"github.com/arloliu/owo/format"
	"github.com/arloliu/owo/huffman"
	"github.com/arloliu/owo/lz77"
	"github.com/arloliu/owo/section"
	"github.com/arloliu/owo/transform"
)

// Decode reconstructs the bytes a container was built from.
//
// Returns:
//   - []byte: The original input; never nil on success
//   - error: ErrMalformedHeader, ErrUnknownFormatMode, ErrTruncatedPayload,
//     ErrMalformedVarInt, ErrMalformedCodebook, ErrCorruptBitstream,
//     ErrUnknownTransform or ErrInvalidBackReference
func Decode(data []byte) ([]byte, error) {
	h, err := section.ParseHeader(data)
	if err != nil {
		return nil, err
	}

	ints := h.Integers()
	cursor := section.HeaderSize

	switch h.Mode {
	case format.ModeRaw:
		raw, err := section.ReadRaw(data, cursor)
		if err != nil {
			return nil, err
		}

		return bytes.Clone(raw), nil

	case format.ModeEntropyOnly:
		syms, err := decodeEntropy(data, cursor, ints)
		if err != nil {
			return nil, err
		}

		return symbolsToBytes(syms)

	case format.ModeDictionaryEntropy:
		flat, err := decodeEntropy(data, cursor, ints)
		if err != nil {
			return nil, err
		}
		tokens, err := lz77.Unflatten(flat)
		if err != nil {
			return nil, err
		}
		syms, err := lz77.Decompress(tokens)
		if err != nil {
			return nil, err
		}

		return symbolsToBytes(syms)

	case format.ModeTransformEntropy:
		stages, cursor, err := section.ReadTransforms(data, cursor, ints)
		if err != nil {
			return nil, err
		}
		chain, err := transform.NewChain(stages...)
		if err != nil {
			return nil, err
		}
		transformed, err := decodeEntropy(data, cursor, ints)
		if err != nil {
			return nil, err
		}
		syms, err := chain.Inverse(transformed)
		if err != nil {
			return nil, err
		}

		return symbolsToBytes(syms)

	default:
		return nil, fmt.Errorf("%w: %d", errs.ErrUnknownFormatMode, h.Mode)
	}
}

func decodeEntropy(data []byte, cursor int, ints section.IntegerCodec) ([]huffman.Symbol, error) {
	bs, cb, _, err := section.ReadEntropy(data, cursor, ints)
	if err != nil {
		return nil, err
	}

	return cb.Decode(bs)
}

func symbolsToBytes(syms []huffman.Symbol) ([]byte, error) {
	out := make([]byte, len(syms))
	for i, s := range syms {
		if s > 0xFF {
			return nil, fmt.Errorf("%w: decoded symbol %d at %d is not a byte", errs.ErrCorruptBitstream, s, i)
		}
		out[i] = byte(s)
	}

	return out, nil
}

// Info describes a container without decoding its bitstream.
type Info struct {
	Version format.Version
	Mode    format.Mode
	// Size is the container length in bytes.
	Size int
	// RawLength is the stored input length of a RAW container.
	RawLength int
	// CodebookEntries is the number of distinct coded symbols.
	CodebookEntries int
	// BitLength is the number of valid bits in the coded stream.
	BitLength uint64
	// Transforms lists the stages of a TRANSFORM_ENTROPY container.
	Transforms []format.TransformType
}

// Inspect parses the header and payload framing of a container.
func Inspect(data []byte) (Info, error) {
	h, err := section.ParseHeader(data)
	if err != nil {
		return Info{}, err
	}

	info := Info{Version: h.Version, Mode: h.Mode, Size: len(data)}
	ints := h.Integers()
	cursor := section.HeaderSize

	if h.Mode == format.ModeRaw {
		raw, err := section.ReadRaw(data, cursor)
		if err != nil {
			return Info{}, err
		}
		info.RawLength = len(raw)

		return info, nil
	}

	if h.Mode == format.ModeTransformEntropy {
		if info.Transforms, cursor, err = section.ReadTransforms(data, cursor, ints); err != nil {
			return Info{}, err
		}
	}

	bs, cb, _, err := section.ReadEntropy(data, cursor, ints)
	if err != nil {
		return Info{}, err
	}
	info.CodebookEntries = cb.Len()
	info.BitLength = bs.BitLen()

	return info, nil
}
