package response

import (
	"time"

	"agrispray/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SprayRequestResponse struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"userId"`
	Address       string    `json:"address"`
	Acres         float64   `json:"acres"`
	NumberOfTanks int       `json:"numberOfTanks"`
	TanksToSpray  int       `json:"tanksToSpray"`
	SprayingDate  string    `json:"sprayingDate"`
	Agrochemical  string    `json:"agrochemical"`
	Crop          string    `json:"crop"`
	CouponCode    *string   `json:"couponCode,omitempty"`
	BasePrice     float64   `json:"basePrice"`
	Price         float64   `json:"price"`
	Status        string    `json:"status"`
	StatusColor   string    `json:"statusColor"`
	CreatedAt     time.Time `json:"createdAt"`
}

// CreateSprayRequestResponse adds the coupon outcome so a client can show
// "Invalid coupon code" without a separate round trip.
type CreateSprayRequestResponse struct {
	SprayRequestResponse
	CouponReason string `json:"couponReason,omitempty"`
}

func FromRequestView(view *queries.RequestView) *SprayRequestResponse {
	var resp SprayRequestResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromCreateResult(view *queries.RequestView, couponReason string) *CreateSprayRequestResponse {
	return &CreateSprayRequestResponse{
		SprayRequestResponse: *FromRequestView(view),
		CouponReason:         couponReason,
	}
}
