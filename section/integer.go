package section

import (
	"fmt"

	"github.com/arloliu/owo/endian"
	"github.com/arloliu/owo/errs"
	"github.com/arloliu/owo/format"
	"github.com/arloliu/owo/varint"
)

// IntegerCodec writes and reads the unsigned integers of a container payload.
type IntegerCodec interface {
	// Size returns the encoded length of v.
	Size(v uint32) int
	// Append appends the encoding of v to dst.
	Append(dst []byte, v uint32) []byte
	// Read decodes the value at data[cursor] and returns the cursor past it.
	Read(data []byte, cursor int) (uint32, int, error)
}

// IntegerCodecFor returns the integer codec of a container version.
// Unknown versions use the varint codec.
func IntegerCodecFor(v format.Version) IntegerCodec {
	if v == format.VersionV1 {
		return FixedIntCodec{engine: endian.GetBigEndianEngine()}
	}

	return VarIntCodec{}
}

// VarIntCodec stores integers in the three-tier varint form.
type VarIntCodec struct{}

func (VarIntCodec) Size(v uint32) int {
	return varint.Size(v)
}

func (VarIntCodec) Append(dst []byte, v uint32) []byte {
	return varint.Append(dst, v)
}

func (VarIntCodec) Read(data []byte, cursor int) (uint32, int, error) {
	return varint.Read(data, cursor)
}

// FixedIntCodec stores every integer as 4 bytes.
type FixedIntCodec struct {
	engine endian.EndianEngine
}

func (FixedIntCodec) Size(uint32) int {
	return 4
}

func (c FixedIntCodec) Append(dst []byte, v uint32) []byte {
	return c.engine.AppendUint32(dst, v)
}

func (c FixedIntCodec) Read(data []byte, cursor int) (uint32, int, error) {
	if cursor < 0 || len(data)-cursor < 4 {
		return 0, cursor, fmt.Errorf("%w: need 4 bytes at offset %d", errs.ErrTruncatedPayload, cursor)
	}

	return c.engine.Uint32(data[cursor:]), cursor + 4, nil
}
