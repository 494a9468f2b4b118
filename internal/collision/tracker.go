// Package collision tracks archive entry names by their 64-bit ID.
package collision

import (
	"fmt"

	"github.com/arloliu/owo/errs"
)

// Tracker maps entry IDs to names and keeps names in insertion order.
//
// Archives look entries up by ID alone, so two names sharing an ID cannot
// both be stored and are rejected like a repeated name.
type Tracker struct {
	ids   map[uint64]int // ID → position in names
	names []string
}

// NewTracker creates a new collision tracker.
func NewTracker(capacity int) *Tracker {
	return &Tracker{
		ids:   make(map[uint64]int, capacity),
		names: make([]string, 0, capacity),
	}
}

// Track records name under id and returns its position.
//
// Returns error if:
//   - The name is empty (ErrInvalidEntryName)
//   - The name or its ID was already tracked (ErrDuplicateEntry)
func (t *Tracker) Track(name string, id uint64) (int, error) {
	if name == "" {
		return 0, errs.ErrInvalidEntryName
	}

	if i, exists := t.ids[id]; exists {
		if t.names[i] == name {
			return 0, fmt.Errorf("%w: %q", errs.ErrDuplicateEntry, name)
		}

		return 0, fmt.Errorf("%w: %q and %q share ID %#016x", errs.ErrDuplicateEntry, t.names[i], name, id)
	}

	t.ids[id] = len(t.names)
	t.names = append(t.names, name)

	return len(t.names) - 1, nil
}

// Lookup returns the position of name, verifying the name behind id matches.
func (t *Tracker) Lookup(name string, id uint64) (int, bool) {
	i, ok := t.ids[id]
	if !ok || t.names[i] != name {
		return 0, false
	}

	return i, true
}

// Names returns the tracked names in insertion order. The slice is shared.
func (t *Tracker) Names() []string {
	return t.names
}

// Count returns the number of tracked names.
func (t *Tracker) Count() int {
	return len(t.names)
}

// Reset clears all tracked names, keeping allocated capacity.
func (t *Tracker) Reset() {
	clear(t.ids)
	t.names = t.names[:0]
}
