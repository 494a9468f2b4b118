// Package section defines the binary layout of an owo container and the
// helpers that read and write each of its parts.
//
// # Container Layout
//
// Every container starts with a fixed 5-byte header:
//
//	Bytes | Field | Description
//	------|-------|--------------------------------------------
//	0-3   | Magic | "OWO2" (varint integers) or "OWO1" (fixed 4-byte integers)
//	4     | Mode  | 0 RAW, 1 DICTIONARY_ENTROPY, 2 ENTROPY_ONLY, 3 TRANSFORM_ENTROPY
//
// The magic tag selects the integer codec used for every count and length
// that follows; see IntegerCodecFor.
//
// # Payloads
//
// RAW:
//
//	4-byte big-endian length N, then N raw bytes
//
// ENTROPY (shared by DICTIONARY_ENTROPY and ENTROPY_ONLY):
//
//	int: codebook entry count K
//	K times:
//	    int: symbol
//	    int: code bit length
//	    ceil(bitlength/8) bytes: code bits, MSB-first, zero padded
//	int: bitstream byte length
//	bitstream: 1 byte count of valid bits in the final byte (0 = full), packed bits
//
// TRANSFORM_ENTROPY:
//
//	int: stage count S
//	S bytes: stage types in application order
//	ENTROPY payload of the transformed symbols
//
// Where "int" is a varint for "OWO2" and a 4-byte big-endian value for "OWO1".
package section
