//go:build unit

package docstore_test

import (
	"errors"
	"testing"

	"agrispray/internal/infra/docstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubSubscribe(t *testing.T) {
	hub := docstore.NewHub()
	id := uuid.New()

	t.Run("delivers updates to the matching subscriber only", func(t *testing.T) {
		var got []docstore.Document
		unsub := hub.Subscribe("sprayRequests", id, func(d docstore.Document) {
			got = append(got, d)
		}, nil)
		defer unsub()

		other := uuid.New()
		unsubOther := hub.Subscribe("sprayRequests", other, func(docstore.Document) {
			t.Fatal("subscriber for a different id must not fire")
		}, nil)
		defer unsubOther()

		hub.Publish(docstore.Document{Collection: "sprayRequests", ID: id, Fields: map[string]any{"status": "Accepted"}})

		require.Len(t, got, 1)
		assert.Equal(t, "Accepted", got[0].Fields["status"])
	})

	t.Run("double subscribe then one unsubscribe leaves one listener", func(t *testing.T) {
		id := uuid.New()
		first := hub.Subscribe("sprayRequests", id, func(docstore.Document) {}, nil)
		second := hub.Subscribe("sprayRequests", id, func(docstore.Document) {}, nil)

		require.Equal(t, 2, hub.ActiveListeners("sprayRequests", id))

		first()
		assert.Equal(t, 1, hub.ActiveListeners("sprayRequests", id))

		second()
		assert.Equal(t, 0, hub.ActiveListeners("sprayRequests", id))
	})

	t.Run("unsubscribe is idempotent", func(t *testing.T) {
		id := uuid.New()
		first := hub.Subscribe("sprayRequests", id, func(docstore.Document) {}, nil)
		second := hub.Subscribe("sprayRequests", id, func(docstore.Document) {}, nil)

		first()
		first()
		first()

		assert.Equal(t, 1, hub.ActiveListeners("sprayRequests", id))
		second()
	})

	t.Run("errors reach onError handlers", func(t *testing.T) {
		id := uuid.New()
		var gotErr error
		unsub := hub.Subscribe("sprayRequests", id, func(docstore.Document) {}, func(err error) {
			gotErr = err
		})
		defer unsub()

		boom := errors.New("connection reset")
		hub.Fail("sprayRequests", id, boom)
		assert.Equal(t, boom, gotErr)
	})
}
