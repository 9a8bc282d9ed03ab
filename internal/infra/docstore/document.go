// Package docstore is the boundary to the remote document database. It
// exposes the collection/document contract the rest of the module programs
// against: create assigns ids, update merges partial fields, and subscribers
// receive post-update documents until they release their subscription.
package docstore

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Document is one raw record from a collection. Fields carries the loosely
// typed document body; callers validate it into domain shapes and must not
// trust it downstream.
type Document struct {
	Collection string
	ID         uuid.UUID
	Fields     map[string]any
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Unsubscribe releases a live-update subscription. Calling it more than once
// is safe.
type Unsubscribe func()

type Store interface {
	// Create inserts a new document and returns its assigned id. Existing
	// ids are never overwritten.
	Create(ctx context.Context, collection string, fields map[string]any) (uuid.UUID, error)

	// Put writes a document under a caller-chosen id, replacing any
	// existing body.
	Put(ctx context.Context, collection string, id uuid.UUID, fields map[string]any) error

	Get(ctx context.Context, collection string, id uuid.UUID) (Document, error)

	// List returns every document in the collection with no ordering
	// guarantee.
	List(ctx context.Context, collection string) ([]Document, error)

	// Patch merges partial fields into an existing document and returns
	// the post-merge document. A missing id is a NOT_FOUND repository
	// error.
	Patch(ctx context.Context, collection string, id uuid.UUID, partial map[string]any) (Document, error)

	// Subscribe registers a live-update listener for one document. Every
	// successful Put/Patch is delivered to onChange. The listener stays
	// registered until the returned Unsubscribe runs.
	Subscribe(collection string, id uuid.UUID, onChange func(Document), onError func(error)) Unsubscribe
}
