package compress

import (
	"bytes"
	"fmt"
	"time"

	"github.com/arloliu/owo/errs"
	"github.com/arloliu/owo/format"
)

// Compressor compresses a complete payload.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor.
//
// Thread Safety: Decompressor implementations must be safe for concurrent use.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original result.
	//
	// Returns an error if the data is corrupted or was produced by a
	// different algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats describes one round trip of a payload through a codec.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm format.CompressionType

	// OriginalSize is the size of input data before compression
	OriginalSize int64

	// CompressedSize is the size of data after compression
	CompressedSize int64

	// CompressionTimeNs is the time taken to compress the data
	CompressionTimeNs int64

	// DecompressionTimeNs is the time taken to decompress the data
	DecompressionTimeNs int64
}

// CompressionRatio returns the compression ratio (compressed size / original size).
//
// Returns:
//   - float64: Compression ratio (0.0 if original size is zero)
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage.
// It is negative when the codec expanded the data.
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// Measure compresses data with codec, decompresses the result and checks
// that it matches data.
//
// Returns:
//   - CompressionStats: Sizes and timings of the round trip
//   - error: The codec's error, or ErrChecksumMismatch if the round trip lost data
func Measure(algorithm format.CompressionType, codec Codec, data []byte) (CompressionStats, error) {
	stats := CompressionStats{Algorithm: algorithm, OriginalSize: int64(len(data))}

	start := time.Now()
	compressed, err := codec.Compress(data)
	if err != nil {
		return stats, fmt.Errorf("%s compress: %w", algorithm, err)
	}
	stats.CompressionTimeNs = time.Since(start).Nanoseconds()
	stats.CompressedSize = int64(len(compressed))

	start = time.Now()
	decompressed, err := codec.Decompress(compressed)
	if err != nil {
		return stats, fmt.Errorf("%s decompress: %w", algorithm, err)
	}
	stats.DecompressionTimeNs = time.Since(start).Nanoseconds()

	if !bytes.Equal(decompressed, data) {
		return stats, fmt.Errorf("%w: %s round trip", errs.ErrChecksumMismatch, algorithm)
	}

	return stats, nil
}

// CreateCodec is a factory function that creates a Codec based on the specified compression type.
//
// Parameters:
//   - compressionType: Type of compression
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: Invalid compression type error
func CreateCodec(compressionType format.CompressionType) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionOWO:
		return NewOWOCompressor()
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	case format.CompressionBrotli:
		return NewBrotliCompressor(), nil
	case format.CompressionSnappy:
		return NewSnappyCompressor(), nil
	default:
		return nil, fmt.Errorf("%w: compression %s", errs.ErrInvalidConfig, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone:   NewNoOpCompressor(),
	format.CompressionOWO:    newDefaultOWOCompressor(),
	format.CompressionZstd:   NewZstdCompressor(),
	format.CompressionS2:     NewS2Compressor(),
	format.CompressionLZ4:    NewLZ4Compressor(),
	format.CompressionBrotli: NewBrotliCompressor(),
	format.CompressionSnappy: NewSnappyCompressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: unsupported compression type %s", errs.ErrInvalidConfig, compressionType)
}

// Supported returns every compression type with a built-in codec, in
// ascending order.
func Supported() []format.CompressionType {
	return []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
		format.CompressionOWO,
		format.CompressionBrotli,
		format.CompressionSnappy,
	}
}
