// Package hash wraps xxHash64 for the places owo needs a fast non-cryptographic hash:
// archive entry IDs, content checksums and match-finder prefix keys.
package hash

import (
	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/owo/endian"
)

// ID computes the xxHash64 of an archive entry name.
func ID(name string) uint64 {
	return xxhash.Sum64String(name)
}

// Checksum computes the xxHash64 of a byte payload.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// SymbolHasher hashes short runs of 32-bit symbols.
//
// It owns a scratch buffer, so a SymbolHasher must not be shared between goroutines.
type SymbolHasher struct {
	scratch []byte
}

// Sum returns the xxHash64 of the little-endian encoding of syms.
func (h *SymbolHasher) Sum(syms []uint32) uint64 {
	need := len(syms) * 4
	if cap(h.scratch) < need {
		h.scratch = make([]byte, need)
	}
	buf := h.scratch[:need]
	engine := endian.GetLittleEndianEngine()
	for i, s := range syms {
		engine.PutUint32(buf[i*4:], s)
	}

	return xxhash.Sum64(buf)
}
