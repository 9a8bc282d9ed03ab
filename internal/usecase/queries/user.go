package queries

import (
	"context"

	"agrispray/internal/infra"
	"agrispray/internal/infra/repository"
	"agrispray/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrProfileNotFound = errs.New("user profile not found")

type UserReadRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (repository.UserProfile, error)
}

type UserQueries interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*UserProfileView, error)
}

type userQueriesImpl struct {
	repo UserReadRepo
}

func NewUserQueries(repo UserReadRepo) UserQueries {
	return &userQueriesImpl{repo: repo}
}

func (q *userQueriesImpl) GetProfile(ctx context.Context, userID uuid.UUID) (*UserProfileView, error) {
	profile, err := q.repo.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return NewUserProfileView(profile), nil
}
