// Package bitpack converts between sequences of binary digits and packed bytes.
//
// Bits are written MSB-first into successive bytes and the unused low-order
// bits of the final byte are zero. The number of valid bits in the final byte
// cannot be recovered from the bytes themselves, so every packed sequence
// travels with a trailing-bit count equal to totalBits mod 8, where 0 means
// the final byte is full (or there are no bytes at all).
//
// A self-describing stream prepends that count as a single prefix byte:
//
//	+-----------------+---------------------------+
//	| trailing (1 B)  | packed bits (N bytes)     |
//	+-----------------+---------------------------+
//
// Zero input bits pack to the header-only stream {0x00}.
package bitpack

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"

	"github.com/arloliu/owo/errs"
)

// Pack packs a sequence of binary digits (each 0 or 1) into bytes.
//
// Returns the packed bytes and the count of valid bits in the final byte.
// Any non-zero digit is treated as 1.
func Pack(bits []uint8) ([]byte, uint8) {
	w := NewWriter()
	for _, b := range bits {
		w.WriteBit(b)
	}
	packed, trailing, _ := w.Finish()

	return packed, trailing
}

// Unpack expands packed bytes back into binary digits.
//
// Returns ErrCorruptBitstream if trailing is not a valid count for data.
func Unpack(data []byte, trailing uint8) ([]uint8, error) {
	r, err := NewReader(data, trailing)
	if err != nil {
		return nil, err
	}

	bits := make([]uint8, 0, r.Remaining())
	for r.Remaining() > 0 {
		b, err := r.ReadBit()
		if err != nil {
			return nil, err
		}
		bits = append(bits, b)
	}

	return bits, nil
}

// BitLen returns the number of valid bits held by n packed bytes with the given trailing count.
func BitLen(n int, trailing uint8) uint64 {
	total := uint64(n) * 8 //nolint:gosec
	if trailing != 0 && n > 0 {
		total -= uint64(8 - trailing)
	}

	return total
}

// ByteLen returns the number of bytes needed to hold nbits bits.
func ByteLen(nbits uint64) int {
	return int((nbits + 7) / 8) //nolint:gosec
}

// AppendStream appends the trailing-count prefix byte followed by packed to dst.
func AppendStream(dst []byte, packed []byte, trailing uint8) []byte {
	dst = append(dst, trailing)
	return append(dst, packed...)
}

// SplitStream separates a self-describing stream into its packed bytes and trailing count.
func SplitStream(stream []byte) ([]byte, uint8, error) {
	if len(stream) == 0 {
		return nil, 0, fmt.Errorf("%w: missing trailing-bit prefix", errs.ErrCorruptBitstream)
	}
	trailing := stream[0]
	packed := stream[1:]
	if err := validate(len(packed), trailing); err != nil {
		return nil, 0, err
	}

	return packed, trailing, nil
}

func validate(n int, trailing uint8) error {
	if trailing > 7 {
		return fmt.Errorf("%w: trailing bit count %d out of range", errs.ErrCorruptBitstream, trailing)
	}
	if n == 0 && trailing != 0 {
		return fmt.Errorf("%w: trailing bit count %d without data", errs.ErrCorruptBitstream, trailing)
	}

	return nil
}

// Writer accumulates bits MSB-first.
type Writer struct {
	buf   bytes.Buffer
	w     *bitio.Writer
	nbits uint64
}

// NewWriter creates an empty bit writer.
func NewWriter() *Writer {
	bw := &Writer{}
	bw.w = bitio.NewWriter(&bw.buf)

	return bw
}

// WriteBit appends a single binary digit. Any non-zero value is written as 1.
func (w *Writer) WriteBit(b uint8) {
	// bytes.Buffer writes cannot fail.
	_ = w.w.WriteBool(b != 0)
	w.nbits++
}

// WriteCode appends the n lowest bits of code, most significant first.
func (w *Writer) WriteCode(code uint64, n uint8) {
	if n == 0 {
		return
	}
	_ = w.w.WriteBits(code, n)
	w.nbits += uint64(n)
}

// BitLen returns the number of bits written so far.
func (w *Writer) BitLen() uint64 {
	return w.nbits
}

// Finish flushes the pending bits, zero-padding the final byte.
//
// Returns the packed bytes and the count of valid bits in the final byte.
// The writer must not be used afterwards.
func (w *Writer) Finish() ([]byte, uint8, error) {
	if err := w.w.Close(); err != nil {
		return nil, 0, err
	}

	return w.buf.Bytes(), uint8(w.nbits % 8), nil //nolint:gosec
}

// Reader reads a bounded number of bits MSB-first.
type Reader struct {
	r         *bitio.Reader
	remaining uint64
}

// NewReader creates a reader over packed bytes holding BitLen(len(data), trailing) valid bits.
func NewReader(data []byte, trailing uint8) (*Reader, error) {
	if err := validate(len(data), trailing); err != nil {
		return nil, err
	}

	return &Reader{
		r:         bitio.NewReader(bytes.NewReader(data)),
		remaining: BitLen(len(data), trailing),
	}, nil
}

// Remaining returns the number of valid bits not yet read.
func (r *Reader) Remaining() uint64 {
	return r.remaining
}

// ReadBit reads the next binary digit. Returns io.EOF once every valid bit has been read.
func (r *Reader) ReadBit() (uint8, error) {
	if r.remaining == 0 {
		return 0, io.EOF
	}
	b, err := r.r.ReadBool()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("%w: bitstream shorter than declared", errs.ErrCorruptBitstream)
		}

		return 0, err
	}
	r.remaining--
	if b {
		return 1, nil
	}

	return 0, nil
}

// ReadCode reads n bits and returns them right-aligned.
func (r *Reader) ReadCode(n uint8) (uint64, error) {
	if uint64(n) > r.remaining {
		return 0, fmt.Errorf("%w: need %d bits, %d remain", errs.ErrCorruptBitstream, n, r.remaining)
	}
	if n == 0 {
		return 0, nil
	}
	v, err := r.r.ReadBits(n)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errs.ErrCorruptBitstream, err)
	}
	r.remaining -= uint64(n)

	return v, nil
}
