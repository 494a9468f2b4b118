// Package archive bundles many named payloads into one buffer, each stored as
// an independent owo container.
//
// Entries are compressed in parallel when the archive is built. Reading one
// entry decompresses only that entry.
//
// # Layout
//
//	magic "OWOA"
//	varint entry count
//	per entry:
//	    8 bytes  xxHash64 of the name (little-endian)
//	    varint   name length, then the name bytes
//	    8 bytes  xxHash64 of the uncompressed content (little-endian)
//	    varint   container length, then the owo container
//
// Entries keep the order they were given to Build.
package archive
