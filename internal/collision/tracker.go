package collision

import (
	"github.com/fcp-project/fcp-codec/errs"
)

// Tracker tracks registered names and detects hash collisions during
// interning. It maintains a map of hash-to-name mappings and an ordered
// list of the names tracked so far.
type Tracker struct {
	names        map[uint64]string // Hash → name mapping for collision detection
	namesList    []string          // Ordered list of tracked names, returned by Names
	hasCollision bool              // Whether a collision has been detected
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		names:        make(map[uint64]string),
		namesList:    make([]string, 0),
		hasCollision: false,
	}
}

// TrackID tracks a hash directly and checks for collisions. This is used
// when the caller provides a hash without a name to check it against.
// Returns an error if the hash was already used — this indicates a
// collision that cannot be handled automatically since no name is known.
func (t *Tracker) TrackID(hash uint64) error {
	if _, exists := t.names[hash]; exists {
		return errs.ErrHashCollision
	}

	t.names[hash] = ""

	return nil
}

// TrackName tracks a name with its hash.
//
// Returns an error if:
//   - the name is empty (errs.ErrEmptyName)
//   - the same name is tracked twice (errs.ErrDuplicateName)
//
// Note: hash collisions (different names, same hash) are NOT errors here.
// Instead, the collision flag is set and the index switches to exact-name
// lookups.
func (t *Tracker) TrackName(name string, hash uint64) error {
	if name == "" {
		return errs.ErrEmptyName
	}

	if existingName, exists := t.names[hash]; exists {
		if existingName != name {
			t.hasCollision = true
		} else {
			return errs.ErrDuplicateName
		}
	}

	t.names[hash] = name
	t.namesList = append(t.namesList, name)

	return nil
}

// HasCollision returns true if a collision has been detected.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Names returns the ordered list of tracked names.
// The order matches the order in which TrackName was called.
func (t *Tracker) Names() []string {
	return t.namesList
}

// Count returns the number of tracked names.
func (t *Tracker) Count() int {
	return len(t.namesList)
}

// Reset clears all tracked names and collision state, allowing the tracker
// to be reused for a new registry build.
func (t *Tracker) Reset() {
	for k := range t.names {
		delete(t.names, k)
	}
	t.namesList = t.namesList[:0]
	t.hasCollision = false
}
