package dynamiccodec

import (
	"fmt"

	"github.com/fcp-project/fcp-codec/endian"
	"github.com/fcp-project/fcp-codec/errs"
	"github.com/fcp-project/fcp-codec/internal/collision"
	"github.com/fcp-project/fcp-codec/internal/hash"
)

// encodeNameTable serializes names into the blob's name section: a
// uint16 count followed by, for each name, a uint16 length prefix and its
// UTF-8 bytes. Descriptor/enum/implementation tables reference names by
// their position in this table.
//
// Grounded on the length-prefixed name-table encoding used throughout the
// teacher's internal/encoding package.
func encodeNameTable(names []string) ([]byte, error) {
	if len(names) > 65535 {
		return nil, fmt.Errorf("%w: name count %d exceeds maximum 65535", errs.ErrNameTableOverflow, len(names))
	}

	engine := endian.GetLittleEndianEngine()

	totalSize := 2
	for _, name := range names {
		if len(name) > 65535 {
			return nil, fmt.Errorf("%w: name %q exceeds maximum length 65535 bytes", errs.ErrNameTooLong, name)
		}

		totalSize += 2 + len(name)
	}

	buf := make([]byte, totalSize)
	offset := 0

	engine.PutUint16(buf[offset:], uint16(len(names))) //nolint:gosec
	offset += 2

	for _, name := range names {
		nameLen := len(name)
		engine.PutUint16(buf[offset:], uint16(nameLen)) //nolint:gosec
		offset += 2
		copy(buf[offset:], name)
		offset += nameLen
	}

	return buf, nil
}

// decodeNameTable is the inverse of encodeNameTable; it returns the decoded
// names and the number of bytes consumed from data.
func decodeNameTable(data []byte) ([]string, int, error) {
	if len(data) < 2 {
		return nil, 0, errs.ErrTruncated
	}

	engine := endian.GetLittleEndianEngine()

	count := engine.Uint16(data)
	offset := 2

	names := make([]string, count)
	for i := range names {
		if len(data) < offset+2 {
			return nil, 0, errs.ErrTruncated
		}

		nameLen := int(engine.Uint16(data[offset:]))
		offset += 2

		if len(data) < offset+nameLen {
			return nil, 0, errs.ErrTruncated
		}

		names[i] = string(data[offset : offset+nameLen])
		offset += nameLen
	}

	return names, offset, nil
}

// nameIndex provides O(1) name→value lookup keyed by xxHash64, with a
// collision-tracking fallback to an exact-name map when two distinct names
// share a hash, grounded on internal/collision.Tracker.
type nameIndex[T any] struct {
	byHash   map[uint64]T
	byName   map[string]T
	tracker  *collision.Tracker
	useExact bool
}

func newNameIndex[T any]() *nameIndex[T] {
	return &nameIndex[T]{
		byHash:  make(map[uint64]T),
		byName:  make(map[string]T),
		tracker: collision.NewTracker(),
	}
}

// put registers name→value. Once the tracker reports a collision, the
// index switches permanently to exact-name lookups for correctness.
func (idx *nameIndex[T]) put(name string, value T) {
	h := hash.ID(name)
	_ = idx.tracker.TrackName(name, h) // duplicate-name re-registration is allowed here; only the collision flag matters

	if idx.tracker.HasCollision() {
		idx.useExact = true
	}

	idx.byHash[h] = value
	idx.byName[name] = value
}

// get resolves name to its registered value.
func (idx *nameIndex[T]) get(name string) (T, bool) {
	if idx.useExact || idx.tracker.HasCollision() {
		v, ok := idx.byName[name]

		return v, ok
	}

	v, ok := idx.byHash[hash.ID(name)]

	return v, ok
}
