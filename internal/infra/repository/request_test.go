//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"agrispray/internal/domain/sprayrequest"
	"agrispray/internal/infra"
	"agrispray/internal/infra/docstore"
	"agrispray/internal/infra/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (*repository.RequestRepository, *docstore.MemoryStore) {
	t.Helper()
	store := docstore.NewMemoryStore(docstore.NewHub())
	return repository.NewRequestRepository(store), store
}

func newRequest(t *testing.T, userID uuid.UUID) *sprayrequest.SprayRequest {
	t.Helper()
	plan, err := sprayrequest.NewTankPlan(3, 2)
	require.NoError(t, err)
	date, err := sprayrequest.NewSprayDate("13/03/2025")
	require.NoError(t, err)

	req, err := sprayrequest.NewSprayRequest(sprayrequest.NewRequestParams{
		UserID:       userID,
		Address:      "Nashik",
		Acres:        5,
		Tanks:        plan,
		SprayingDate: date,
		Agrochemical: "Insecticide",
		Crop:         "Bajra",
		BasePrice:    1000,
		Price:        900,
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	})
	require.NoError(t, err)
	return req
}

func TestRequestRepositoryRoundTrip(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()
	userID := uuid.New()

	created, err := repo.Create(ctx, newRequest(t, userID))
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID())

	found, err := repo.FindByID(ctx, created.ID())
	require.NoError(t, err)
	assert.Equal(t, created.ID(), found.ID())
	assert.Equal(t, userID, found.UserID())
	assert.Equal(t, "Nashik", found.Address())
	assert.Equal(t, 5.0, found.Acres())
	assert.Equal(t, 3, found.Tanks().NumberOfTanks())
	assert.Equal(t, 2, found.Tanks().TanksToSpray())
	assert.Equal(t, "13/03/2025", found.SprayingDate().String())
	assert.Equal(t, sprayrequest.StatusPending, found.Status())
	assert.Equal(t, 1000.0, found.BasePrice())
	assert.Equal(t, 900.0, found.Price())
	assert.Nil(t, found.CouponCode())
}

func TestRequestRepositoryFindByID(t *testing.T) {
	repo, _ := newRepo(t)

	_, err := repo.FindByID(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestRequestRepositoryFindByUser(t *testing.T) {
	repo, store := newRepo(t)
	ctx := context.Background()
	userID := uuid.New()

	_, err := repo.Create(ctx, newRequest(t, userID))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newRequest(t, userID))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newRequest(t, uuid.New()))
	require.NoError(t, err)

	// A malformed document must be skipped, not abort the listing.
	_, err = store.Create(ctx, repository.CollectionSprayRequests, map[string]any{
		"userId": userID.String(),
		"acres":  "five",
	})
	require.NoError(t, err)

	requests, err := repo.FindByUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, requests, 2)
}

func TestRequestRepositoryUpdateStatus(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, newRequest(t, uuid.New()))
	require.NoError(t, err)

	updated, err := repo.UpdateStatus(ctx, created.ID(), sprayrequest.StatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, sprayrequest.StatusAccepted, updated.Status())
	assert.Equal(t, created.Address(), updated.Address(), "untouched fields survive the merge")

	_, err = repo.UpdateStatus(ctx, uuid.New(), sprayrequest.StatusAccepted)
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestRequestRepositoryWatch(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, newRequest(t, uuid.New()))
	require.NoError(t, err)

	var seen []sprayrequest.Status
	unsub := repo.Watch(created.ID(), func(req *sprayrequest.SprayRequest) {
		seen = append(seen, req.Status())
	}, func(err error) {
		t.Fatalf("unexpected watch error: %v", err)
	})

	_, err = repo.UpdateStatus(ctx, created.ID(), sprayrequest.StatusAccepted)
	require.NoError(t, err)
	_, err = repo.UpdateStatus(ctx, created.ID(), sprayrequest.StatusInProgress)
	require.NoError(t, err)

	unsub()

	_, err = repo.UpdateStatus(ctx, created.ID(), sprayrequest.StatusCompleted)
	require.NoError(t, err)

	assert.Equal(t, []sprayrequest.Status{sprayrequest.StatusAccepted, sprayrequest.StatusInProgress}, seen)
}

func TestRequestRepositoryRejectsUnknownStatusDocument(t *testing.T) {
	repo, store := newRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, newRequest(t, uuid.New()))
	require.NoError(t, err)

	_, err = store.Patch(ctx, repository.CollectionSprayRequests, created.ID(), map[string]any{
		"status": "Archived",
	})
	require.NoError(t, err)

	_, err = repo.FindByID(ctx, created.ID())
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindValidation))
}
