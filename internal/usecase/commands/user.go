package commands

import (
	"context"
	"strings"

	"agrispray/internal/infra/repository"
	"agrispray/internal/pkg/errs"
	"agrispray/internal/usecase/queries"

	"github.com/google/uuid"
)

var ErrEmptyProfileName = errs.New("profile name must not be empty")

type UpdateProfileInput struct {
	Name       string
	Occupation string
	DOB        string
}

type UserCommands interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, phone string, input UpdateProfileInput) (*queries.UserProfileView, error)
}

type userCommandsImpl struct {
	repo UserWriteRepo
}

func NewUserCommands(repo UserWriteRepo) UserCommands {
	return &userCommandsImpl{repo: repo}
}

// UpdateProfile writes the whole profile document. The phone number comes
// from the authenticated token, never from the request body.
func (c *userCommandsImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, phone string, input UpdateProfileInput) (*queries.UserProfileView, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrEmptyProfileName
	}

	profile := repository.UserProfile{
		ID:         userID,
		Name:       strings.TrimSpace(input.Name),
		Occupation: input.Occupation,
		Phone:      phone,
		DOB:        input.DOB,
	}
	if err := c.repo.Upsert(ctx, profile); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return queries.NewUserProfileView(profile), nil
}
