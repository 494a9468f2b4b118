package compress

import "github.com/klauspost/compress/s2"

// S2Compressor compresses with the S2 block format.
type S2Compressor struct {
	better bool
}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates an S2 compressor using the default encoder.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// NewS2BetterCompressor creates an S2 compressor that trades speed for ratio.
// Its blocks decode with any S2Compressor.
func NewS2BetterCompressor() S2Compressor {
	return S2Compressor{better: true}
}

func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if c.better {
		return s2.EncodeBetter(nil, data), nil
	}

	return s2.Encode(nil, data), nil
}

func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
