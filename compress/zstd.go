package compress

// ZstdCompressor provides Zstandard compression.
//
// The default build uses the pure Go klauspost/compress implementation with
// pooled encoders and decoders. Building with the "gozstd" tag switches to
// the cgo valyala/gozstd binding.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(data)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
