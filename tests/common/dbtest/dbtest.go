//go:build unit || e2e

package dbtest

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ResetDB clears every stored document between subtests. The whole service
// persists through a single documents table, so one TRUNCATE is enough.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE TABLE documents")
	return err
}

// CountDocuments returns the number of documents in a collection, for
// asserting side effects that the API does not expose directly.
func CountDocuments(pool *pgxpool.Pool, collection string) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var count int
	err := pool.QueryRow(ctx,
		"SELECT count(*) FROM documents WHERE collection = $1", collection,
	).Scan(&count)
	return count, err
}
