package archive

import (
	"bytes"
	"fmt"
	"iter"
	"slices"

	"github.com/arloliu/owo/container"
	"github.com/arloliu/owo/endian"
	"github.com/arloliu/owo/errs"
	"github.com/arloliu/owo/internal/collision"
	"github.com/arloliu/owo/internal/hash"
	"github.com/arloliu/owo/varint"
)

type entryRef struct {
	name      string
	checksum  uint64
	container []byte
}

// Reader gives access to the entries of a parsed archive.
//
// A Reader references the buffer passed to Open and is safe for concurrent use.
type Reader struct {
	entries []entryRef
	names   *collision.Tracker
}

// Open parses the archive index. Containers are not decompressed until read.
//
// Returns:
//   - *Reader: The parsed archive
//   - error: ErrMalformedHeader, ErrTruncatedPayload, ErrMalformedVarInt or
//     ErrDuplicateEntry when data is not a well-formed archive
func Open(data []byte) (*Reader, error) {
	if len(data) < len(Magic) || !bytes.Equal(data[:len(Magic)], Magic) {
		return nil, fmt.Errorf("%w: not an archive", errs.ErrMalformedHeader)
	}

	cursor := len(Magic)
	count, cursor, err := varint.Read(data, cursor)
	if err != nil {
		return nil, err
	}
	// Every entry takes at least two checksums and two varints.
	if uint64(count)*(2*checksumSize+2) > uint64(len(data)-cursor) {
		return nil, fmt.Errorf("%w: %d entries declared", errs.ErrTruncatedPayload, count)
	}

	engine := endian.GetLittleEndianEngine()
	r := &Reader{
		entries: make([]entryRef, 0, count),
		names:   collision.NewTracker(int(count)),
	}
	for range count {
		if len(data)-cursor < checksumSize {
			return nil, fmt.Errorf("%w: entry id", errs.ErrTruncatedPayload)
		}
		id := engine.Uint64(data[cursor:])
		cursor += checksumSize

		var name []byte
		if name, cursor, err = readChunk(data, cursor); err != nil {
			return nil, err
		}
		if hash.ID(string(name)) != id {
			return nil, fmt.Errorf("%w: entry id does not match name %q", errs.ErrChecksumMismatch, name)
		}

		if len(data)-cursor < checksumSize {
			return nil, fmt.Errorf("%w: entry checksum", errs.ErrTruncatedPayload)
		}
		checksum := engine.Uint64(data[cursor:])
		cursor += checksumSize

		var payload []byte
		if payload, cursor, err = readChunk(data, cursor); err != nil {
			return nil, err
		}

		if _, err := r.names.Track(string(name), id); err != nil {
			return nil, err
		}
		r.entries = append(r.entries, entryRef{name: string(name), checksum: checksum, container: payload})
	}

	return r, nil
}

// readChunk reads a varint length followed by that many bytes.
func readChunk(data []byte, cursor int) ([]byte, int, error) {
	n, cursor, err := varint.Read(data, cursor)
	if err != nil {
		return nil, cursor, err
	}
	if uint64(n) > uint64(len(data)-cursor) {
		return nil, cursor, fmt.Errorf("%w: chunk of %d bytes", errs.ErrTruncatedPayload, n)
	}
	end := cursor + int(n)

	return data[cursor:end:end], end, nil
}

// Len returns the number of entries.
func (r *Reader) Len() int {
	return len(r.entries)
}

// Names returns the entry names in archive order.
func (r *Reader) Names() []string {
	return slices.Clone(r.names.Names())
}

// Info describes the stored container of the named entry without decompressing it.
func (r *Reader) Info(name string) (container.Info, error) {
	e, err := r.lookup(name)
	if err != nil {
		return container.Info{}, err
	}

	return container.Inspect(e.container)
}

// Get decompresses the named entry and verifies its checksum.
//
// Returns:
//   - []byte: The entry content, owned by the caller
//   - error: ErrEntryNotFound, ErrChecksumMismatch, or a container decode error
func (r *Reader) Get(name string) ([]byte, error) {
	e, err := r.lookup(name)
	if err != nil {
		return nil, err
	}

	return e.decode()
}

// All iterates the entries in archive order, decompressing each one.
// A failing entry is yielded with its error and ends the iteration.
func (r *Reader) All() iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		for i := range r.entries {
			e := &r.entries[i]
			data, err := e.decode()
			if err != nil {
				yield(Entry{Name: e.name}, err)
				return
			}
			if !yield(Entry{Name: e.name, Data: data}, nil) {
				return
			}
		}
	}
}

func (r *Reader) lookup(name string) (*entryRef, error) {
	i, ok := r.names.Lookup(name, hash.ID(name))
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrEntryNotFound, name)
	}

	return &r.entries[i], nil
}

func (e *entryRef) decode() ([]byte, error) {
	data, err := container.Decode(e.container)
	if err != nil {
		return nil, fmt.Errorf("entry %q: %w", e.name, err)
	}
	if hash.Checksum(data) != e.checksum {
		return nil, fmt.Errorf("%w: entry %q", errs.ErrChecksumMismatch, e.name)
	}

	return data, nil
}
