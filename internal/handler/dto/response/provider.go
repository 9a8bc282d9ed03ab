package response

import (
	"agrispray/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ProviderResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	DistanceKm float64 `json:"distanceKm"`
}

type NearbyProvidersResponse struct {
	Providers []*ProviderResponse `json:"providers"`
}

func FromProviderViews(views []*queries.ProviderView) *NearbyProvidersResponse {
	providers := make([]*ProviderResponse, len(views))
	for i, view := range views {
		var resp ProviderResponse
		_ = copier.Copy(&resp, view)
		providers[i] = &resp
	}
	return &NearbyProvidersResponse{Providers: providers}
}
