// Package location keeps the last reported coordinate per caller behind an
// explicit handle lifecycle: Acquire, Update/Last through the handle, Release.
// There is no package-level shared state.
package location

import (
	"errors"
	"sync"

	"agrispray/internal/domain/geo"

	"github.com/google/uuid"
)

var ErrReleased = errors.New("location handle already released")

type Tracker struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*entry
}

type entry struct {
	last    *geo.Coordinate
	handles int
}

// Handle is a scoped view onto one caller's tracked location. Callers must
// Release it on every exit path.
type Handle struct {
	tracker  *Tracker
	owner    uuid.UUID
	released bool
	mu       sync.Mutex
}

func NewTracker() *Tracker {
	return &Tracker{entries: make(map[uuid.UUID]*entry)}
}

func (t *Tracker) Acquire(owner uuid.UUID) *Handle {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.entries[owner]
	if !ok {
		e = &entry{}
		t.entries[owner] = e
	}
	e.handles++

	return &Handle{tracker: t, owner: owner}
}

func (h *Handle) Update(coord geo.Coordinate) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.released {
		return ErrReleased
	}

	h.tracker.mu.Lock()
	defer h.tracker.mu.Unlock()
	h.tracker.entries[h.owner].last = &coord
	return nil
}

// Last returns the owner's last reported coordinate, or false when none has
// been reported yet.
func (h *Handle) Last() (geo.Coordinate, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.released {
		return geo.Coordinate{}, false
	}

	h.tracker.mu.Lock()
	defer h.tracker.mu.Unlock()
	last := h.tracker.entries[h.owner].last
	if last == nil {
		return geo.Coordinate{}, false
	}
	return *last, true
}

// Release is idempotent. The tracked coordinate is dropped once the final
// handle for an owner is released.
func (h *Handle) Release() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.released {
		return
	}
	h.released = true

	h.tracker.mu.Lock()
	defer h.tracker.mu.Unlock()
	e, ok := h.tracker.entries[h.owner]
	if !ok {
		return
	}
	e.handles--
	if e.handles <= 0 {
		delete(h.tracker.entries, h.owner)
	}
}
