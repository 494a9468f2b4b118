// Package errs defines the sentinel errors returned by owo.
//
// Every failure surfaced by compress or decompress wraps exactly one of these
// values, so callers can classify it with errors.Is.
package errs

import "errors"

// Container errors.
var (
	// ErrMalformedHeader is returned when the magic tag is missing or unknown.
	ErrMalformedHeader = errors.New("owo: malformed container header")
	// ErrUnknownFormatMode is returned when the mode marker byte is not a known mode.
	ErrUnknownFormatMode = errors.New("owo: unknown format mode")
	// ErrTruncatedPayload is returned when a declared length runs past the end of the buffer.
	ErrTruncatedPayload = errors.New("owo: truncated payload")
	// ErrInvalidConfig is returned when an option carries an out-of-range value.
	ErrInvalidConfig = errors.New("owo: invalid configuration")
	// ErrInputTooLarge is returned when an input does not fit the 4-byte RAW length.
	ErrInputTooLarge = errors.New("owo: input too large")
)

// Codec errors.
var (
	// ErrMalformedVarInt is returned when the buffer ends in the middle of a varint.
	ErrMalformedVarInt = errors.New("owo: malformed varint")
	// ErrCorruptBitstream is returned when packed bits do not decode to known codes.
	ErrCorruptBitstream = errors.New("owo: corrupt bitstream")
	// ErrMalformedCodebook is returned when a stored codebook is not a valid prefix code.
	ErrMalformedCodebook = errors.New("owo: malformed codebook")
	// ErrUnknownSymbol is returned when encoding a symbol the codebook does not cover.
	ErrUnknownSymbol = errors.New("owo: unknown symbol")
	// ErrInvalidBackReference is returned when a token points outside the reconstructed output.
	ErrInvalidBackReference = errors.New("owo: invalid back-reference")
	// ErrUnknownTransform is returned when a stored transform stage is not recognized.
	ErrUnknownTransform = errors.New("owo: unknown transform")
)

// Archive errors.
var (
	// ErrEntryNotFound is returned when an archive has no entry with the requested name.
	ErrEntryNotFound = errors.New("owo: archive entry not found")
	// ErrInvalidEntryName is returned when an archive entry has an empty name.
	ErrInvalidEntryName = errors.New("owo: invalid archive entry name")
	// ErrDuplicateEntry is returned when two archive entries share a name or a name ID.
	ErrDuplicateEntry = errors.New("owo: duplicate archive entry")
	// ErrChecksumMismatch is returned when a decompressed entry does not match its stored checksum.
	ErrChecksumMismatch = errors.New("owo: checksum mismatch")
)
