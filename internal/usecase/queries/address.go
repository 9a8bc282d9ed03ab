package queries

import (
	"context"

	"agrispray/internal/infra/repository"
	"agrispray/internal/pkg/errs"

	"github.com/google/uuid"
)

type AddressReadRepo interface {
	FindByUser(ctx context.Context, userID uuid.UUID) ([]repository.SavedAddress, error)
}

type AddressQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*AddressView, error)
}

type addressQueriesImpl struct {
	repo AddressReadRepo
}

func NewAddressQueries(repo AddressReadRepo) AddressQueries {
	return &addressQueriesImpl{repo: repo}
}

func (q *addressQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*AddressView, error) {
	addresses, err := q.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	views := make([]*AddressView, 0, len(addresses))
	for _, addr := range addresses {
		views = append(views, NewAddressView(addr))
	}
	return views, nil
}
