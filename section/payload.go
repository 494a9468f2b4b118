package section

import (
	"fmt"

	"github.com/arloliu/owo/endian"
	"github.com/arloliu/owo/errs"
	"github.com/arloliu/owo/format"
	"github.com/arloliu/owo/huffman"
)

// AppendRaw appends a RAW payload holding data to dst.
// data must be shorter than 4 GiB.
func AppendRaw(dst, data []byte) []byte {
	dst = endian.GetBigEndianEngine().AppendUint32(dst, uint32(len(data))) //nolint:gosec
	return append(dst, data...)
}

// ReadRaw reads a RAW payload starting at data[cursor]. The returned slice aliases data.
func ReadRaw(data []byte, cursor int) ([]byte, error) {
	if len(data)-cursor < RawLengthSize {
		return nil, fmt.Errorf("%w: RAW length prefix", errs.ErrTruncatedPayload)
	}

	n := uint64(endian.GetBigEndianEngine().Uint32(data[cursor:]))
	cursor += RawLengthSize
	if uint64(len(data)-cursor) < n {
		return nil, fmt.Errorf("%w: RAW payload declares %d bytes, %d remain", errs.ErrTruncatedPayload, n, len(data)-cursor)
	}

	return data[cursor : cursor+int(n)], nil
}

// AppendCodebook appends the stored form of cb to dst.
func AppendCodebook(dst []byte, cb *huffman.Codebook, ints IntegerCodec) []byte {
	dst = ints.Append(dst, uint32(cb.Len())) //nolint:gosec
	for s, c := range cb.All() {
		dst = ints.Append(dst, s)
		dst = ints.Append(dst, uint32(c.Len))
		dst = appendCodeBits(dst, c)
	}

	return dst
}

// ReadCodebook reads a stored codebook starting at data[cursor] and returns
// the cursor past it.
//
// Returns:
//   - error: ErrMalformedVarInt or ErrTruncatedPayload when data ends early,
//     ErrMalformedCodebook when the entries do not form a prefix code
func ReadCodebook(data []byte, cursor int, ints IntegerCodec) (*huffman.Codebook, int, error) {
	count, cursor, err := ints.Read(data, cursor)
	if err != nil {
		return nil, cursor, fmt.Errorf("codebook size: %w", err)
	}
	// Each entry needs at least a symbol, a length and one code byte.
	if uint64(count)*3 > uint64(len(data)-cursor) {
		return nil, cursor, fmt.Errorf("%w: codebook declares %d entries, %d bytes remain",
			errs.ErrTruncatedPayload, count, len(data)-cursor)
	}

	entries := make(map[huffman.Symbol]huffman.Code, count)
	for i := uint32(0); i < count; i++ {
		var sym, bitLen uint32
		if sym, cursor, err = ints.Read(data, cursor); err != nil {
			return nil, cursor, fmt.Errorf("codebook entry %d symbol: %w", i, err)
		}
		if bitLen, cursor, err = ints.Read(data, cursor); err != nil {
			return nil, cursor, fmt.Errorf("codebook entry %d length: %w", i, err)
		}
		if bitLen == 0 || bitLen > huffman.MaxCodeLen {
			return nil, cursor, fmt.Errorf("%w: symbol %d has code length %d", errs.ErrMalformedCodebook, sym, bitLen)
		}
		if _, dup := entries[sym]; dup {
			return nil, cursor, fmt.Errorf("%w: symbol %d listed twice", errs.ErrMalformedCodebook, sym)
		}

		var code huffman.Code
		if code, cursor, err = readCodeBits(data, cursor, uint8(bitLen)); err != nil { //nolint:gosec
			return nil, cursor, err
		}
		entries[sym] = code
	}

	cb, err := huffman.NewCodebook(entries)
	if err != nil {
		return nil, cursor, err
	}

	return cb, cursor, nil
}

// appendCodeBits appends the code left-aligned in ceil(Len/8) bytes.
func appendCodeBits(dst []byte, c huffman.Code) []byte {
	n := codeBytes(c.Len)
	v := c.Bits << (n*8 - int(c.Len))
	for i := n - 1; i >= 0; i-- {
		dst = append(dst, byte(v>>(8*i)))
	}

	return dst
}

func readCodeBits(data []byte, cursor int, bitLen uint8) (huffman.Code, int, error) {
	n := codeBytes(bitLen)
	if len(data)-cursor < n {
		return huffman.Code{}, cursor, fmt.Errorf("%w: code of %d bits", errs.ErrTruncatedPayload, bitLen)
	}

	var v uint64
	for _, b := range data[cursor : cursor+n] {
		v = v<<8 | uint64(b)
	}
	pad := n*8 - int(bitLen)
	if v&(1<<pad-1) != 0 {
		return huffman.Code{}, cursor, fmt.Errorf("%w: non-zero code padding", errs.ErrMalformedCodebook)
	}

	return huffman.Code{Bits: v >> pad, Len: bitLen}, cursor + n, nil
}

func codeBytes(bitLen uint8) int {
	return (int(bitLen) + 7) / 8
}

// AppendEntropy appends an ENTROPY payload: the codebook, then the
// length-prefixed bitstream.
func AppendEntropy(dst []byte, bs huffman.Bitstream, cb *huffman.Codebook, ints IntegerCodec) []byte {
	dst = AppendCodebook(dst, cb, ints)
	dst = ints.Append(dst, uint32(bs.Size())) //nolint:gosec

	return bs.AppendTo(dst)
}

// EntropySize returns the number of bytes AppendEntropy would append.
func EntropySize(bs huffman.Bitstream, cb *huffman.Codebook, ints IntegerCodec) int {
	size := ints.Size(uint32(cb.Len())) //nolint:gosec
	for s, c := range cb.All() {
		size += ints.Size(s) + ints.Size(uint32(c.Len)) + codeBytes(c.Len)
	}

	return size + ints.Size(uint32(bs.Size())) + bs.Size() //nolint:gosec
}

// ReadEntropy reads an ENTROPY payload starting at data[cursor] and returns
// the cursor past it. The bitstream aliases data.
func ReadEntropy(data []byte, cursor int, ints IntegerCodec) (huffman.Bitstream, *huffman.Codebook, int, error) {
	cb, cursor, err := ReadCodebook(data, cursor, ints)
	if err != nil {
		return huffman.Bitstream{}, nil, cursor, err
	}

	n, cursor, err := ints.Read(data, cursor)
	if err != nil {
		return huffman.Bitstream{}, nil, cursor, fmt.Errorf("bitstream length: %w", err)
	}
	if uint64(len(data)-cursor) < uint64(n) {
		return huffman.Bitstream{}, nil, cursor, fmt.Errorf("%w: bitstream declares %d bytes, %d remain",
			errs.ErrTruncatedPayload, n, len(data)-cursor)
	}

	bs, err := huffman.ParseBitstream(data[cursor : cursor+int(n)])
	if err != nil {
		return huffman.Bitstream{}, nil, cursor, err
	}

	return bs, cb, cursor + int(n), nil
}

// AppendTransforms appends the stage list of a TRANSFORM_ENTROPY payload.
func AppendTransforms(dst []byte, types []format.TransformType, ints IntegerCodec) []byte {
	dst = ints.Append(dst, uint32(len(types))) //nolint:gosec
	for _, t := range types {
		dst = append(dst, byte(t))
	}

	return dst
}

// ReadTransforms reads the stage list of a TRANSFORM_ENTROPY payload.
// Stage types are not validated here.
func ReadTransforms(data []byte, cursor int, ints IntegerCodec) ([]format.TransformType, int, error) {
	count, cursor, err := ints.Read(data, cursor)
	if err != nil {
		return nil, cursor, fmt.Errorf("transform count: %w", err)
	}
	if uint64(count) > uint64(len(data)-cursor) {
		return nil, cursor, fmt.Errorf("%w: %d transform stages", errs.ErrTruncatedPayload, count)
	}

	types := make([]format.TransformType, count)
	for i := range types {
		types[i] = format.TransformType(data[cursor+i])
	}

	return types, cursor + int(count), nil
}
