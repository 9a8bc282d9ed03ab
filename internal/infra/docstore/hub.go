package docstore

import (
	"sync"

	"github.com/google/uuid"
)

type subKey struct {
	collection string
	id         uuid.UUID
}

type subscriber struct {
	onChange func(Document)
	onError  func(error)
}

// Hub fans document updates out to in-process subscribers. Publishing happens
// on the writer's goroutine; callbacks must not block.
type Hub struct {
	mu     sync.Mutex
	nextID uint64
	subs   map[subKey]map[uint64]subscriber
}

func NewHub() *Hub {
	return &Hub{subs: make(map[subKey]map[uint64]subscriber)}
}

func (h *Hub) Subscribe(collection string, id uuid.UUID, onChange func(Document), onError func(error)) Unsubscribe {
	key := subKey{collection: collection, id: id}

	h.mu.Lock()
	h.nextID++
	token := h.nextID
	if h.subs[key] == nil {
		h.subs[key] = make(map[uint64]subscriber)
	}
	h.subs[key][token] = subscriber{onChange: onChange, onError: onError}
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subs[key], token)
			if len(h.subs[key]) == 0 {
				delete(h.subs, key)
			}
		})
	}
}

func (h *Hub) Publish(doc Document) {
	for _, s := range h.snapshot(subKey{collection: doc.Collection, id: doc.ID}) {
		s.onChange(doc)
	}
}

func (h *Hub) Fail(collection string, id uuid.UUID, err error) {
	for _, s := range h.snapshot(subKey{collection: collection, id: id}) {
		if s.onError != nil {
			s.onError(err)
		}
	}
}

// ActiveListeners reports how many subscriptions are live for one document.
func (h *Hub) ActiveListeners(collection string, id uuid.UUID) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[subKey{collection: collection, id: id}])
}

func (h *Hub) snapshot(key subKey) []subscriber {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]subscriber, 0, len(h.subs[key]))
	for _, s := range h.subs[key] {
		out = append(out, s)
	}
	return out
}
