// Package endian provides the byte order engines owo serializes with.
//
// Container lengths and the fixed-width "OWO1" integers are big-endian.
// Symbol runs hashed by the match finder are laid out little-endian.
//
//	engine := endian.GetBigEndianEngine()
//	buf = engine.AppendUint32(buf, uint32(len(data)))
//
// The returned engines are immutable and safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
