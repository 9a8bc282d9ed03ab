package commands

import (
	"context"
	"sync"

	"agrispray/internal/domain/geo"
	"agrispray/internal/pkg/errs"
	"agrispray/internal/pkg/location"

	"github.com/google/uuid"
)

type LocationCommands interface {
	Report(ctx context.Context, userID uuid.UUID, latitude, longitude float64) error
	LastKnown(owner uuid.UUID) (geo.Coordinate, bool)
	Close()
}

// locationCommandsImpl holds one tracker handle per reporting user for the
// lifetime of the service, so a user's last position survives between
// requests. Close releases every handle on shutdown.
type locationCommandsImpl struct {
	tracker *location.Tracker

	mu      sync.Mutex
	handles map[uuid.UUID]*location.Handle
}

func NewLocationCommands(tracker *location.Tracker) LocationCommands {
	return &locationCommandsImpl{
		tracker: tracker,
		handles: make(map[uuid.UUID]*location.Handle),
	}
}

func (c *locationCommandsImpl) Report(_ context.Context, userID uuid.UUID, latitude, longitude float64) error {
	coord, err := geo.NewCoordinate(latitude, longitude)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	c.mu.Lock()
	h, ok := c.handles[userID]
	if !ok {
		h = c.tracker.Acquire(userID)
		c.handles[userID] = h
	}
	c.mu.Unlock()

	return h.Update(coord)
}

func (c *locationCommandsImpl) LastKnown(owner uuid.UUID) (geo.Coordinate, bool) {
	c.mu.Lock()
	h, ok := c.handles[owner]
	c.mu.Unlock()
	if !ok {
		return geo.Coordinate{}, false
	}
	return h.Last()
}

func (c *locationCommandsImpl) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for owner, h := range c.handles {
		h.Release()
		delete(c.handles, owner)
	}
}
