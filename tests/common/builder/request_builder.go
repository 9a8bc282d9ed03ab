//go:build unit || e2e

package builder

import (
	"time"

	"agrispray/internal/domain/sprayrequest"
	reqdto "agrispray/internal/handler/dto/request"
	"agrispray/internal/usecase/queries"

	"github.com/google/uuid"
)

type SprayRequestBuilder struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Address       string
	Acres         float64
	NumberOfTanks int
	TanksToSpray  int
	SprayingDate  string
	Agrochemical  string
	Crop          string
	CouponCode    *string
	BasePrice     float64
	Price         float64
	Status        sprayrequest.Status
	CreatedAt     time.Time
}

func NewSprayRequestBuilder() *SprayRequestBuilder {
	return &SprayRequestBuilder{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		Address:       "Gat No 42, Ozar, Nashik",
		Acres:         5,
		NumberOfTanks: 4,
		TanksToSpray:  2,
		SprayingDate:  "13/03/2025",
		Agrochemical:  "Insecticide",
		Crop:          "Grapes",
		BasePrice:     1000,
		Price:         1000,
		Status:        sprayrequest.StatusPending,
		CreatedAt:     time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (b *SprayRequestBuilder) WithUserID(id uuid.UUID) *SprayRequestBuilder {
	b.UserID = id
	return b
}

func (b *SprayRequestBuilder) WithStatus(status sprayrequest.Status) *SprayRequestBuilder {
	b.Status = status
	return b
}

func (b *SprayRequestBuilder) WithCoupon(code string, price float64) *SprayRequestBuilder {
	b.CouponCode = &code
	b.Price = price
	return b
}

func (b *SprayRequestBuilder) BuildCreateRequestDTO() reqdto.CreateSprayRequestRequest {
	return reqdto.CreateSprayRequestRequest{
		Address:       b.Address,
		Acres:         b.Acres,
		NumberOfTanks: b.NumberOfTanks,
		TanksToSpray:  b.TanksToSpray,
		SprayingDate:  b.SprayingDate,
		Agrochemical:  b.Agrochemical,
		Crop:          b.Crop,
		CouponCode:    b.CouponCode,
	}
}

func (b *SprayRequestBuilder) BuildView() *queries.RequestView {
	return &queries.RequestView{
		ID:            b.ID,
		UserID:        b.UserID,
		Address:       b.Address,
		Acres:         b.Acres,
		NumberOfTanks: b.NumberOfTanks,
		TanksToSpray:  b.TanksToSpray,
		SprayingDate:  b.SprayingDate,
		Agrochemical:  b.Agrochemical,
		Crop:          b.Crop,
		CouponCode:    b.CouponCode,
		BasePrice:     b.BasePrice,
		Price:         b.Price,
		Status:        b.Status.String(),
		StatusColor:   b.Status.Color(),
		CreatedAt:     b.CreatedAt,
	}
}

func (b *SprayRequestBuilder) BuildDomain() (*sprayrequest.SprayRequest, error) {
	plan, err := sprayrequest.NewTankPlan(b.NumberOfTanks, b.TanksToSpray)
	if err != nil {
		return nil, err
	}
	date, err := sprayrequest.NewSprayDate(b.SprayingDate)
	if err != nil {
		return nil, err
	}
	return sprayrequest.NewSprayRequest(sprayrequest.NewRequestParams{
		UserID:       b.UserID,
		Address:      b.Address,
		Acres:        b.Acres,
		Tanks:        plan,
		SprayingDate: date,
		Agrochemical: b.Agrochemical,
		Crop:         b.Crop,
		CouponCode:   b.CouponCode,
		BasePrice:    b.BasePrice,
		Price:        b.Price,
		CreatedAt:    b.CreatedAt,
	})
}
