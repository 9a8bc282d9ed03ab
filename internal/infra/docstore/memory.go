package docstore

import (
	"context"
	"sync"
	"time"

	"agrispray/internal/infra"

	"github.com/google/uuid"
)

// MemoryStore is an in-process Store used by tests and local development. It
// mirrors the Postgres implementation's semantics, including shallow field
// merge on Patch and hub publication on every write.
type MemoryStore struct {
	mu   sync.Mutex
	docs map[string]map[uuid.UUID]Document
	hub  *Hub
}

func NewMemoryStore(hub *Hub) *MemoryStore {
	return &MemoryStore{
		docs: make(map[string]map[uuid.UUID]Document),
		hub:  hub,
	}
}

func (s *MemoryStore) Create(_ context.Context, collection string, fields map[string]any) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New()
	s.insertLocked(collection, id, fields)
	return id, nil
}

func (s *MemoryStore) Put(_ context.Context, collection string, id uuid.UUID, fields map[string]any) error {
	s.mu.Lock()
	doc := s.insertLocked(collection, id, fields)
	s.mu.Unlock()

	s.hub.Publish(doc)
	return nil
}

func (s *MemoryStore) Get(_ context.Context, collection string, id uuid.UUID) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[collection][id]
	if !ok {
		return Document{}, infra.WrapRepoErr("document not found", nil, infra.KindNotFound)
	}
	return cloneDocument(doc), nil
}

func (s *MemoryStore) List(_ context.Context, collection string) ([]Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := make([]Document, 0, len(s.docs[collection]))
	for _, doc := range s.docs[collection] {
		docs = append(docs, cloneDocument(doc))
	}
	return docs, nil
}

func (s *MemoryStore) Patch(_ context.Context, collection string, id uuid.UUID, partial map[string]any) (Document, error) {
	s.mu.Lock()
	doc, ok := s.docs[collection][id]
	if !ok {
		s.mu.Unlock()
		return Document{}, infra.WrapRepoErr("document not found", nil, infra.KindNotFound)
	}

	for k, v := range partial {
		doc.Fields[k] = v
	}
	doc.UpdatedAt = time.Now()
	s.docs[collection][id] = doc
	out := cloneDocument(doc)
	s.mu.Unlock()

	s.hub.Publish(out)
	return out, nil
}

func (s *MemoryStore) Subscribe(collection string, id uuid.UUID, onChange func(Document), onError func(error)) Unsubscribe {
	return s.hub.Subscribe(collection, id, onChange, onError)
}

func (s *MemoryStore) insertLocked(collection string, id uuid.UUID, fields map[string]any) Document {
	if s.docs[collection] == nil {
		s.docs[collection] = make(map[uuid.UUID]Document)
	}

	now := time.Now()
	doc := Document{
		Collection: collection,
		ID:         id,
		Fields:     cloneFields(fields),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if existing, ok := s.docs[collection][id]; ok {
		doc.CreatedAt = existing.CreatedAt
	}
	s.docs[collection][id] = doc
	return cloneDocument(doc)
}

func cloneDocument(doc Document) Document {
	out := doc
	out.Fields = cloneFields(doc.Fields)
	return out
}

func cloneFields(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	return out
}
