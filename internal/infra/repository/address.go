package repository

import (
	"context"
	"log/slog"

	"agrispray/internal/domain/geo"
	"agrispray/internal/infra"
	"agrispray/internal/infra/docstore"

	"github.com/google/uuid"
)

// SavedAddress is a user's bookmarked field location.
type SavedAddress struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Address   string
	Latitude  float64
	Longitude float64
}

func (a SavedAddress) Coordinate() (geo.Coordinate, error) {
	return geo.NewCoordinate(a.Latitude, a.Longitude)
}

type AddressRepository struct {
	store docstore.Store
}

func NewAddressRepository(store docstore.Store) *AddressRepository {
	return &AddressRepository{store: store}
}

func (r *AddressRepository) Create(ctx context.Context, addr SavedAddress) (SavedAddress, error) {
	if _, err := geo.NewCoordinate(addr.Latitude, addr.Longitude); err != nil {
		return SavedAddress{}, infra.WrapRepoErr("saved address coordinate out of range", err, infra.KindValidation)
	}

	id, err := r.store.Create(ctx, CollectionSavedAddresses, map[string]any{
		"userId":    addr.UserID.String(),
		"name":      addr.Name,
		"address":   addr.Address,
		"latitude":  addr.Latitude,
		"longitude": addr.Longitude,
	})
	if err != nil {
		return SavedAddress{}, infra.WrapRepoErr("failed to create saved address", err)
	}

	addr.ID = id
	return addr, nil
}

func (r *AddressRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]SavedAddress, error) {
	docs, err := r.store.List(ctx, CollectionSavedAddresses)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list saved addresses", err)
	}

	addresses := make([]SavedAddress, 0, len(docs))
	for _, doc := range docs {
		addr, err := documentToAddress(doc)
		if err != nil {
			slog.Warn("skipping malformed saved address document", "id", doc.ID, "error", err.Error())
			continue
		}
		if addr.UserID != userID {
			continue
		}
		addresses = append(addresses, addr)
	}
	return addresses, nil
}

func documentToAddress(doc docstore.Document) (SavedAddress, error) {
	userID, err := fieldUUID(doc.Fields, "userId")
	if err != nil {
		return SavedAddress{}, err
	}
	name, err := fieldString(doc.Fields, "name")
	if err != nil {
		return SavedAddress{}, err
	}
	address, err := fieldString(doc.Fields, "address")
	if err != nil {
		return SavedAddress{}, err
	}
	latitude, err := fieldFloat(doc.Fields, "latitude")
	if err != nil {
		return SavedAddress{}, err
	}
	longitude, err := fieldFloat(doc.Fields, "longitude")
	if err != nil {
		return SavedAddress{}, err
	}
	if _, err := geo.NewCoordinate(latitude, longitude); err != nil {
		return SavedAddress{}, infra.WrapRepoErr("saved address coordinate out of range", err, infra.KindValidation)
	}

	return SavedAddress{
		ID:        doc.ID,
		UserID:    userID,
		Name:      name,
		Address:   address,
		Latitude:  latitude,
		Longitude: longitude,
	}, nil
}
