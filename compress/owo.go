package compress

import (
	"slices"
	"sync"

	"github.com/arloliu/owo/container"
)

// OWOCompressor wraps the owo container as a Codec.
//
// Encoders carry match finder state, so each Compress call borrows one from
// a pool built from the compressor's options.
type OWOCompressor struct {
	opts     []container.EncoderOption
	encoders sync.Pool
}

var _ Codec = (*OWOCompressor)(nil)

// NewOWOCompressor creates an owo codec.
//
// Parameters:
//   - opts: Encoder options applied to every pooled encoder
//
// Returns:
//   - *OWOCompressor: New owo codec
//   - error: ErrInvalidConfig if the options do not form a valid encoder configuration
func NewOWOCompressor(opts ...container.EncoderOption) (*OWOCompressor, error) {
	enc, err := container.NewEncoder(opts...)
	if err != nil {
		return nil, err
	}

	c := &OWOCompressor{opts: slices.Clone(opts)}
	c.encoders.New = func() any {
		// Options were validated above.
		e, _ := container.NewEncoder(c.opts...)
		return e
	}
	c.encoders.Put(enc)

	return c, nil
}

func newDefaultOWOCompressor() *OWOCompressor {
	c, err := NewOWOCompressor()
	if err != nil {
		panic(err)
	}

	return c
}

// Compress encodes data into an owo container.
func (c *OWOCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	enc, _ := c.encoders.Get().(*container.Encoder)
	defer c.encoders.Put(enc)

	return enc.Encode(data)
}

// Decompress decodes an owo container of either format version.
func (c *OWOCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return container.Decode(data)
}
