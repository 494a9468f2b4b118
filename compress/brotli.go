package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
)

// BrotliCompressor compresses with the Brotli stream format.
type BrotliCompressor struct {
	level int
}

var _ Codec = (*BrotliCompressor)(nil)

// NewBrotliCompressor creates a Brotli compressor at the default quality.
func NewBrotliCompressor() BrotliCompressor {
	return BrotliCompressor{level: brotli.DefaultCompression}
}

// NewBrotliCompressorLevel creates a Brotli compressor at the given quality,
// from brotli.BestSpeed to brotli.BestCompression.
func NewBrotliCompressorLevel(level int) BrotliCompressor {
	return BrotliCompressor{level: min(max(level, brotli.BestSpeed), brotli.BestCompression)}
}

// Compress compresses the input data into a single Brotli stream.
func (c BrotliCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	w := brotli.NewWriterLevel(&buf, c.level)
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("brotli compression failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("brotli compression failed: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress decompresses a Brotli stream.
func (c BrotliCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, err := io.ReadAll(brotli.NewReader(bytes.NewReader(data)))
	if err != nil {
		return nil, fmt.Errorf("brotli decompression failed: %w", err)
	}

	return out, nil
}
