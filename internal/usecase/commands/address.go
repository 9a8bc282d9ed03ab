package commands

import (
	"context"

	"agrispray/internal/infra"
	"agrispray/internal/infra/repository"
	"agrispray/internal/pkg/errs"
	"agrispray/internal/usecase/queries"

	"github.com/google/uuid"
)

type AddressRepository interface {
	Create(ctx context.Context, addr repository.SavedAddress) (repository.SavedAddress, error)
}

type CreateAddressInput struct {
	Name      string
	Address   string
	Latitude  float64
	Longitude float64
}

type AddressCommands interface {
	CreateAddress(ctx context.Context, userID uuid.UUID, input CreateAddressInput) (*queries.AddressView, error)
}

type addressCommandsImpl struct {
	repo AddressRepository
}

func NewAddressCommands(repo AddressRepository) AddressCommands {
	return &addressCommandsImpl{repo: repo}
}

func (c *addressCommandsImpl) CreateAddress(ctx context.Context, userID uuid.UUID, input CreateAddressInput) (*queries.AddressView, error) {
	created, err := c.repo.Create(ctx, repository.SavedAddress{
		UserID:    userID,
		Name:      input.Name,
		Address:   input.Address,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
	})
	if err != nil {
		if infra.IsKind(err, infra.KindValidation) {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return queries.NewAddressView(created), nil
}
