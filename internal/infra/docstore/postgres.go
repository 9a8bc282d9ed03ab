package docstore

import (
	"context"
	"encoding/json"
	"errors"

	"agrispray/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	collection text NOT NULL,
	id         uuid NOT NULL,
	data       jsonb NOT NULL,
	created_at timestamptz NOT NULL DEFAULT now(),
	updated_at timestamptz NOT NULL DEFAULT now(),
	PRIMARY KEY (collection, id)
);
CREATE INDEX IF NOT EXISTS documents_collection_idx ON documents (collection);
`

// PostgresStore keeps each document as a jsonb row. Partial updates use the
// jsonb shallow-merge operator, which matches the external store's
// last-write-wins field merge.
type PostgresStore struct {
	pool *pgxpool.Pool
	hub  *Hub
}

func NewPostgresStore(pool *pgxpool.Pool, hub *Hub) *PostgresStore {
	return &PostgresStore{pool: pool, hub: hub}
}

// EnsureSchema creates the backing table. Safe to run on every start.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return infra.WrapRepoErr("failed to ensure document schema", err)
	}
	return nil
}

func (s *PostgresStore) Create(ctx context.Context, collection string, fields map[string]any) (uuid.UUID, error) {
	data, err := json.Marshal(fields)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode document", err, infra.KindValidation)
	}

	id := uuid.New()
	_, err = s.pool.Exec(ctx,
		`INSERT INTO documents (collection, id, data) VALUES ($1, $2, $3)`,
		collection, id, data,
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create document", err)
	}
	return id, nil
}

func (s *PostgresStore) Put(ctx context.Context, collection string, id uuid.UUID, fields map[string]any) error {
	data, err := json.Marshal(fields)
	if err != nil {
		return infra.WrapRepoErr("failed to encode document", err, infra.KindValidation)
	}

	row := s.pool.QueryRow(ctx,
		`INSERT INTO documents (collection, id, data) VALUES ($1, $2, $3)
		 ON CONFLICT (collection, id)
		 DO UPDATE SET data = EXCLUDED.data, updated_at = now()
		 RETURNING data, created_at, updated_at`,
		collection, id, data,
	)

	doc, err := s.scanDocument(row, collection, id)
	if err != nil {
		return err
	}

	s.hub.Publish(doc)
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, collection string, id uuid.UUID) (Document, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT data, created_at, updated_at FROM documents WHERE collection = $1 AND id = $2`,
		collection, id,
	)

	doc, err := s.scanDocument(row, collection, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Document{}, infra.WrapRepoErr("document not found", pgx.ErrNoRows, infra.KindNotFound)
		}
		return Document{}, err
	}
	return doc, nil
}

func (s *PostgresStore) List(ctx context.Context, collection string) ([]Document, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, data, created_at, updated_at FROM documents WHERE collection = $1`,
		collection,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list documents", err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var (
			id   uuid.UUID
			data []byte
			doc  Document
		)
		if err := rows.Scan(&id, &data, &doc.CreatedAt, &doc.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan document row", err)
		}
		if err := json.Unmarshal(data, &doc.Fields); err != nil {
			return nil, infra.WrapRepoErr("failed to decode document body", err, infra.KindValidation)
		}
		doc.Collection = collection
		doc.ID = id
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate documents", err)
	}
	return docs, nil
}

func (s *PostgresStore) Patch(ctx context.Context, collection string, id uuid.UUID, partial map[string]any) (Document, error) {
	patch, err := json.Marshal(partial)
	if err != nil {
		return Document{}, infra.WrapRepoErr("failed to encode patch", err, infra.KindValidation)
	}

	row := s.pool.QueryRow(ctx,
		`UPDATE documents SET data = data || $3, updated_at = now()
		 WHERE collection = $1 AND id = $2
		 RETURNING data, created_at, updated_at`,
		collection, id, patch,
	)

	doc, err := s.scanDocument(row, collection, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Document{}, infra.WrapRepoErr("document not found", pgx.ErrNoRows, infra.KindNotFound)
		}
		return Document{}, err
	}

	s.hub.Publish(doc)
	return doc, nil
}

func (s *PostgresStore) Subscribe(collection string, id uuid.UUID, onChange func(Document), onError func(error)) Unsubscribe {
	return s.hub.Subscribe(collection, id, onChange, onError)
}

func (s *PostgresStore) scanDocument(row pgx.Row, collection string, id uuid.UUID) (Document, error) {
	var (
		data []byte
		doc  Document
	)
	if err := row.Scan(&data, &doc.CreatedAt, &doc.UpdatedAt); err != nil {
		return Document{}, infra.WrapRepoErr("failed to scan document", err)
	}
	if err := json.Unmarshal(data, &doc.Fields); err != nil {
		return Document{}, infra.WrapRepoErr("failed to decode document body", err, infra.KindValidation)
	}
	doc.Collection = collection
	doc.ID = id
	return doc, nil
}
