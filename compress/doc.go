// Package compress provides the codecs owo compares itself against, behind
// one Codec interface.
//
// The owo container is a Codec like any other, so tooling can run the same
// payload through every algorithm and compare ratios and timings:
//
//	for _, t := range compress.Supported() {
//	    codec, _ := compress.GetCodec(t)
//	    stats, err := compress.Measure(t, codec, data)
//	    ...
//	}
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): returns its input unchanged
//   - OWO (format.CompressionOWO): the adaptive owo container
//   - Zstd (format.CompressionZstd): klauspost/compress, or cgo gozstd with the "gozstd" build tag
//   - S2 (format.CompressionS2): klauspost/compress/s2 block format
//   - LZ4 (format.CompressionLZ4): pierrec/lz4 block format
//   - Brotli (format.CompressionBrotli): andybalholm/brotli stream format
//   - Snappy (format.CompressionSnappy): golang/snappy block format
//
// # Empty Input
//
// Every codec except None compresses an empty input to nil and decompresses
// an empty input to nil.
//
// # Thread Safety
//
// All codecs are safe for concurrent use. Stateful encoders are pooled.
package compress
