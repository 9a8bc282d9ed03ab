package response

import (
	"agrispray/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AddressResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
}

func FromAddressView(view *queries.AddressView) *AddressResponse {
	var resp AddressResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromAddressViews(views []*queries.AddressView) []*AddressResponse {
	addresses := make([]*AddressResponse, len(views))
	for i, view := range views {
		addresses[i] = FromAddressView(view)
	}
	return addresses
}
