package queries

import (
	"time"

	"agrispray/internal/domain/provider"
	"agrispray/internal/domain/sprayrequest"
	"agrispray/internal/infra/repository"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type RequestView struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	Address       string    `json:"address"`
	Acres         float64   `json:"acres"`
	NumberOfTanks int       `json:"number_of_tanks"`
	TanksToSpray  int       `json:"tanks_to_spray"`
	SprayingDate  string    `json:"spraying_date"`
	Agrochemical  string    `json:"agrochemical"`
	Crop          string    `json:"crop"`
	CouponCode    *string   `json:"coupon_code,omitempty"`
	BasePrice     float64   `json:"base_price"`
	Price         float64   `json:"price"`
	Status        string    `json:"status"`
	StatusColor   string    `json:"status_color"`
	CreatedAt     time.Time `json:"created_at"`
}

type ProviderView struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	DistanceKm float64 `json:"distance_km"`
}

type AddressView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
}

type UserProfileView struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Occupation string    `json:"occupation"`
	Phone      string    `json:"phone"`
	DOB        string    `json:"dob"`
}

func NewRequestView(req *sprayrequest.SprayRequest) *RequestView {
	return &RequestView{
		ID:            req.ID(),
		UserID:        req.UserID(),
		Address:       req.Address(),
		Acres:         req.Acres(),
		NumberOfTanks: req.Tanks().NumberOfTanks(),
		TanksToSpray:  req.Tanks().TanksToSpray(),
		SprayingDate:  req.SprayingDate().String(),
		Agrochemical:  req.Agrochemical(),
		Crop:          req.Crop(),
		CouponCode:    req.CouponCode(),
		BasePrice:     req.BasePrice(),
		Price:         req.Price(),
		Status:        req.Status().String(),
		StatusColor:   req.Status().Color(),
		CreatedAt:     req.CreatedAt(),
	}
}

func NewProviderView(m provider.Match) *ProviderView {
	coord := m.Provider.Coordinate()
	return &ProviderView{
		ID:         m.Provider.ID(),
		Name:       m.Provider.Name(),
		City:       m.Provider.City(),
		State:      m.Provider.State(),
		Latitude:   coord.Latitude(),
		Longitude:  coord.Longitude(),
		DistanceKm: m.DistanceKm,
	}
}

func NewAddressView(addr repository.SavedAddress) *AddressView {
	return &AddressView{
		ID:        addr.ID,
		Name:      addr.Name,
		Address:   addr.Address,
		Latitude:  addr.Latitude,
		Longitude: addr.Longitude,
	}
}

func NewUserProfileView(profile repository.UserProfile) *UserProfileView {
	return &UserProfileView{
		ID:         profile.ID,
		Name:       profile.Name,
		Occupation: profile.Occupation,
		Phone:      profile.Phone,
		DOB:        profile.DOB,
	}
}
