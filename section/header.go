package section

import (
	"bytes"
	"fmt"

	"github.com/arloliu/owo/errs"
	"github.com/arloliu/owo/format"
)

// Header is the fixed-size prefix of every container.
type Header struct {
	Version format.Version
	Mode    format.Mode
}

// NewHeader creates a header for the given version and mode.
func NewHeader(v format.Version, m format.Mode) Header {
	return Header{Version: v, Mode: m}
}

// Bytes serializes the header.
func (h Header) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// AppendTo appends the serialized header to dst.
func (h Header) AppendTo(dst []byte) []byte {
	dst = append(dst, h.Version.Magic()...)
	return append(dst, byte(h.Mode))
}

// Integers returns the integer codec of the header's version.
func (h Header) Integers() IntegerCodec {
	return IntegerCodecFor(h.Version)
}

// Parse parses the header from the start of data.
//
// Returns:
//   - error: ErrMalformedHeader if the magic tag is missing or unknown,
//     ErrUnknownFormatMode if the mode marker is not valid for the version
func (h *Header) Parse(data []byte) error {
	if len(data) < MagicSize {
		return fmt.Errorf("%w: %d bytes is too short for a magic tag", errs.ErrMalformedHeader, len(data))
	}

	switch magic := data[:MagicSize]; {
	case bytes.Equal(magic, format.VersionV2.Magic()):
		h.Version = format.VersionV2
	case bytes.Equal(magic, format.VersionV1.Magic()):
		h.Version = format.VersionV1
	default:
		return fmt.Errorf("%w: unknown magic %q", errs.ErrMalformedHeader, magic)
	}

	if len(data) < HeaderSize {
		return fmt.Errorf("%w: missing mode marker", errs.ErrMalformedHeader)
	}

	h.Mode = format.Mode(data[MagicSize])
	if !h.Mode.IsValid() || (h.Version == format.VersionV1 && h.Mode == format.ModeTransformEntropy) {
		return fmt.Errorf("%w: marker %d in %s container", errs.ErrUnknownFormatMode, data[MagicSize], h.Version)
	}

	return nil
}

// ParseHeader parses a Header from the start of data.
func ParseHeader(data []byte) (Header, error) {
	var h Header
	if err := h.Parse(data); err != nil {
		return Header{}, err
	}

	return h, nil
}
