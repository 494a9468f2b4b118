// Package owo is a lossless compressor for small to medium payloads.
//
// Every call picks the smallest of several encodings of its input and stores
// it in a self-describing container:
//
//   - RAW: the input itself, for tiny or incompressible data
//   - ENTROPY_ONLY: a Huffman code over the input bytes
//   - DICTIONARY_ENTROPY: LZ77 tokens, flattened and Huffman coded
//   - TRANSFORM_ENTROPY: opt-in transform stages before the Huffman code
//
// # Basic Usage
//
//	compressed, err := owo.Compress(data)
//	if err != nil {
//	    return err
//	}
//
//	original, err := owo.Decompress(compressed)
//
// Decompress reads both the current "OWO2" layout and the legacy "OWO1" one.
//
// # Custom Encoders
//
// Encoder options tune the match window and the selection thresholds:
//
//	enc, err := owo.NewEncoder(
//	    container.WithWindowSize(32*1024),
//	    container.WithMinInputSize(64),
//	)
//	compressed, stats, err := enc.EncodeWithStats(data)
//
// An Encoder is not safe for concurrent use. Compress is, and so is
// Decompress.
//
// # Package Structure
//
// This package wraps the container package for the common cases. The
// building blocks live in their own packages: varint, huffman, lz77,
// transform, section and container. The archive package bundles many
// payloads, and compress puts owo next to other codecs for comparison.
package owo

import (
	"fmt"
	"os"
	"sync"

	"github.com/arloliu/owo/container"
)

var defaultEncoders = sync.Pool{
	New: func() any {
		enc, err := container.NewEncoder()
		if err != nil {
			panic(fmt.Sprintf("owo: default encoder: %v", err))
		}

		return enc
	},
}

// NewEncoder creates a reusable encoder.
//
// Parameters:
//   - opts: Encoder options from the container package
//
// Returns:
//   - *container.Encoder: Encoder for repeated calls
//   - error: ErrInvalidConfig if an option is out of range
func NewEncoder(opts ...container.EncoderOption) (*container.Encoder, error) {
	return container.NewEncoder(opts...)
}

// Compress encodes data into an owo container.
//
// Without options a pooled default encoder is used. With options a new
// encoder is built for the call.
//
// Returns:
//   - []byte: The container, owned by the caller
//   - error: ErrInvalidConfig for a bad option, ErrInputTooLarge for inputs past 4 GiB
func Compress(data []byte, opts ...container.EncoderOption) ([]byte, error) {
	if len(opts) > 0 {
		enc, err := container.NewEncoder(opts...)
		if err != nil {
			return nil, err
		}

		return enc.Encode(data)
	}

	enc, _ := defaultEncoders.Get().(*container.Encoder)
	defer defaultEncoders.Put(enc)

	return enc.Encode(data)
}

// Decompress decodes a container produced by Compress.
func Decompress(data []byte) ([]byte, error) {
	return container.Decode(data)
}

// Inspect describes a container without decoding its bitstream.
func Inspect(data []byte) (container.Info, error) {
	return container.Inspect(data)
}

// CompressFile reads the file at src, compresses it and writes the
// container to dst with mode 0644.
func CompressFile(src, dst string, opts ...container.EncoderOption) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	out, err := Compress(data, opts...)
	if err != nil {
		return fmt.Errorf("compress %s: %w", src, err)
	}

	return os.WriteFile(dst, out, 0o644) //nolint:gosec
}

// DecompressFile reads the container at src and writes the decoded bytes to dst.
func DecompressFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	out, err := Decompress(data)
	if err != nil {
		return fmt.Errorf("decompress %s: %w", src, err)
	}

	return os.WriteFile(dst, out, 0o644) //nolint:gosec
}
