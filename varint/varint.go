// Package varint implements the three-tier variable-length integer codec used by
// the owo container.
//
// Each tier is identified by its lead byte:
//
//	v < 128            1 byte   0vvvvvvv
//	128 <= v < 16384   2 bytes  10hhhhhh llllllll   (h = v>>8, l = v&0xFF)
//	v >= 16384         5 bytes  0xFF + 4-byte big-endian v
//
// A two-byte lead never reaches 0xFF because v>>8 is below 64, so the
// escape marker is unambiguous.
package varint

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/owo/errs"
)

const (
	oneByteLimit = 1 << 7
	twoByteLimit = 1 << 14

	twoByteFlag  = 0x80
	escapeMarker = 0xFF

	// MaxLen is the longest encoding of a value.
	MaxLen = 5
)

// Size returns the encoded length of v in bytes.
func Size(v uint32) int {
	switch {
	case v < oneByteLimit:
		return 1
	case v < twoByteLimit:
		return 2
	default:
		return MaxLen
	}
}

// Append appends the encoding of v to dst and returns the extended slice.
func Append(dst []byte, v uint32) []byte {
	switch {
	case v < oneByteLimit:
		return append(dst, byte(v))
	case v < twoByteLimit:
		return append(dst, byte(v>>8)|twoByteFlag, byte(v))
	default:
		dst = append(dst, escapeMarker)
		return binary.BigEndian.AppendUint32(dst, v)
	}
}

// Write returns the encoding of v.
func Write(v uint32) []byte {
	return Append(make([]byte, 0, Size(v)), v)
}

// Read decodes the value starting at data[cursor].
//
// Returns the value and the cursor just past it, or ErrMalformedVarInt when
// data ends before the value is complete.
func Read(data []byte, cursor int) (uint32, int, error) {
	if cursor < 0 || cursor >= len(data) {
		return 0, cursor, fmt.Errorf("%w: no lead byte at offset %d", errs.ErrMalformedVarInt, cursor)
	}

	lead := data[cursor]
	switch {
	case lead < twoByteFlag:
		return uint32(lead), cursor + 1, nil
	case lead == escapeMarker:
		if len(data)-cursor < MaxLen {
			return 0, cursor, fmt.Errorf("%w: escape tier needs 4 bytes at offset %d", errs.ErrMalformedVarInt, cursor)
		}

		return binary.BigEndian.Uint32(data[cursor+1:]), cursor + MaxLen, nil
	default:
		if len(data)-cursor < 2 {
			return 0, cursor, fmt.Errorf("%w: two-byte tier truncated at offset %d", errs.ErrMalformedVarInt, cursor)
		}

		return uint32(lead&0x7F)<<8 | uint32(data[cursor+1]), cursor + 2, nil
	}
}
