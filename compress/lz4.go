package compress

import (
	"fmt"
	"math"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/owo/errs"
	"github.com/arloliu/owo/varint"
)

var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor compresses with the LZ4 block format.
//
// A bare LZ4 block does not record its decoded size, so each block is
// prefixed with the input length as an owo varint.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses the input data into a length-prefixed LZ4 block.
//
// Returns:
//   - []byte: Compressed data (nil if input is empty)
//   - error: ErrInputTooLarge past 4 GiB, or an LZ4 error
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if uint64(len(data)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d bytes", errs.ErrInputTooLarge, len(data))
	}

	n := uint32(len(data)) //nolint:gosec
	prefix := varint.Size(n)
	dst := make([]byte, prefix+lz4.CompressBlockBound(len(data)))
	varint.Append(dst[:0], n)

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	written, err := lc.CompressBlock(data, dst[prefix:])
	if err != nil {
		return nil, err
	}

	return dst[:prefix+written], nil
}

// Decompress decodes a length-prefixed LZ4 block.
//
// The output buffer is sized from the prefix, so a block must decode to
// exactly that many bytes.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	n, cursor, err := varint.Read(data, 0)
	if err != nil {
		return nil, err
	}
	// LZ4 expands at most 255x, which bounds the allocation for hostile prefixes.
	if uint64(n) > uint64(len(data)-cursor)*255 {
		return nil, fmt.Errorf("lz4: declared size %d exceeds block bound", n)
	}

	buf := make([]byte, n)
	written, err := lz4.UncompressBlock(data[cursor:], buf)
	if err != nil {
		return nil, err
	}
	if written != int(n) {
		return nil, fmt.Errorf("lz4: decoded %d bytes, expected %d", written, n)
	}

	return buf, nil
}
