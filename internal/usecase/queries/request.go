package queries

import (
	"context"

	"agrispray/internal/domain/sprayrequest"
	"agrispray/internal/infra"
	"agrispray/internal/pkg/errs"

	"github.com/google/uuid"
)

type RequestReadRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*sprayrequest.SprayRequest, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*sprayrequest.SprayRequest, error)
}

type RequestQueries interface {
	GetByID(ctx context.Context, actorID uuid.UUID, id uuid.UUID) (*RequestView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, status *sprayrequest.Status) ([]*RequestView, error)
}

type requestQueriesImpl struct {
	repo RequestReadRepo
}

func NewRequestQueries(repo RequestReadRepo) RequestQueries {
	return &requestQueriesImpl{repo: repo}
}

// GetByID hides other users' requests behind not-found so ids cannot be
// probed.
func (q *requestQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, id uuid.UUID) (*RequestView, error) {
	req, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRequestNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if req.UserID() != actorID {
		return nil, errs.ErrRequestNotFound
	}
	return NewRequestView(req), nil
}

func (q *requestQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, status *sprayrequest.Status) ([]*RequestView, error) {
	if status != nil && !status.IsValid() {
		return nil, errs.ErrInvalidStatus
	}

	requests, err := q.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	views := make([]*RequestView, 0, len(requests))
	for _, req := range requests {
		if status != nil && req.Status() != *status {
			continue
		}
		views = append(views, NewRequestView(req))
	}
	return views, nil
}
