package archive

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/arloliu/owo/container"
	"github.com/arloliu/owo/endian"
	"github.com/arloliu/owo/internal/collision"
	"github.com/arloliu/owo/internal/hash"
	"github.com/arloliu/owo/internal/pool"
	"github.com/arloliu/owo/varint"
)

// Magic identifies an owo archive.
var Magic = []byte("OWOA")

const checksumSize = 8

// Entry is a named payload.
type Entry struct {
	Name string
	Data []byte
}

type builtEntry struct {
	id        uint64
	name      string
	checksum  uint64
	container []byte
}

// Build compresses every entry and serializes the archive.
//
// Entries are compressed concurrently by at most GOMAXPROCS workers, each
// with its own encoder built from opts. The first failure cancels the
// remaining work.
//
// Parameters:
//   - ctx: Cancels the build between entries
//   - entries: Payloads to store; names must be unique
//   - opts: Encoder options applied to every entry
//
// Returns:
//   - []byte: The serialized archive
//   - error: ErrInvalidEntryName, ErrDuplicateEntry, ErrInvalidConfig, or the first
//     encoder or context error
func Build(ctx context.Context, entries []Entry, opts ...container.EncoderOption) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	names := collision.NewTracker(len(entries))
	for _, e := range entries {
		if _, err := names.Track(e.Name, hash.ID(e.Name)); err != nil {
			return nil, err
		}
	}

	// Validate options once so a bad option is reported before any work starts.
	if _, err := container.NewEncoder(opts...); err != nil {
		return nil, err
	}

	built := make([]builtEntry, len(entries))
	jobs := make(chan int)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(jobs)
		for i := range entries {
			select {
			case jobs <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}

		return nil
	})

	workers := min(runtime.GOMAXPROCS(0), max(len(entries), 1))
	for range workers {
		g.Go(func() error {
			enc, err := container.NewEncoder(opts...)
			if err != nil {
				return err
			}
			for i := range jobs {
				e := entries[i]
				out, err := enc.Encode(e.Data)
				if err != nil {
					return fmt.Errorf("entry %q: %w", e.Name, err)
				}
				built[i] = builtEntry{
					id:        hash.ID(e.Name),
					name:      e.Name,
					checksum:  hash.Checksum(e.Data),
					container: out,
				}
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return marshal(built), nil
}

func marshal(built []builtEntry) []byte {
	buf := pool.GetContainerBuffer()
	defer pool.PutContainerBuffer(buf)

	engine := endian.GetLittleEndianEngine()
	b := buf.Bytes()
	b = append(b, Magic...)
	b = varint.Append(b, uint32(len(built))) //nolint:gosec
	for _, e := range built {
		b = engine.AppendUint64(b, e.id)
		b = varint.Append(b, uint32(len(e.name))) //nolint:gosec
		b = append(b, e.name...)
		b = engine.AppendUint64(b, e.checksum)
		b = varint.Append(b, uint32(len(e.container))) //nolint:gosec
		b = append(b, e.container...)
	}

	buf.B = b

	return buf.Clone()
}
