// Package container implements the adaptive owo container: the encoder that
// builds entropy-coded candidates and keeps the smallest, and the decoder
// that dispatches on the stored header.
//
// # Encoding
//
// For each input the Encoder builds:
//
//   - ENTROPY_ONLY: the input bytes Huffman-coded directly.
//   - DICTIONARY_ENTROPY: the input run through the LZ77 matcher, the tokens
//     flattened to (offset, length, next) symbol triples and Huffman-coded.
//   - TRANSFORM_ENTROPY: only when transforms are configured; the input run
//     through the transform chain and Huffman-coded.
//
// The smallest candidate wins, the earlier one on ties. An "OWO2" encoder
// stores RAW instead when the input is shorter than MinInputSize or the
// winner exceeds MaxRatio of the input length. An "OWO1" encoder stores RAW
// only when no candidate is smaller than the RAW container.
//
// # Decoding
//
// Decode reads the magic tag and mode marker and replays the matching path.
// Both versions are always accepted. A corrupt container fails the whole
// call; no partial output is returned.
//
// # Thread Safety
//
// An Encoder reuses its match finder between calls and must not be shared
// between goroutines. Decode and Inspect are safe for concurrent use.
package container
