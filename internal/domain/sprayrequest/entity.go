package sprayrequest

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus     = errors.New("status is not a member of the request status enum")
	ErrInvalidTransition = errors.New("transition not permitted from the current status")
)

// SprayRequest is a customer's order for drone-based field spraying. The zero
// id means the request has not been persisted yet; the store assigns the id
// at creation and it never changes afterwards. basePrice is kept alongside
// price so a coupon can always be re-derived instead of compounding.
type SprayRequest struct {
	id           uuid.UUID
	userID       uuid.UUID
	address      string
	acres        float64
	tanks        TankPlan
	sprayingDate SprayDate
	agrochemical string
	crop         string
	couponCode   *string
	basePrice    float64
	price        float64
	status       Status
	createdAt    time.Time
}

type NewRequestParams struct {
	UserID       uuid.UUID
	Address      string
	Acres        float64
	Tanks        TankPlan
	SprayingDate SprayDate
	Agrochemical string
	Crop         string
	CouponCode   *string
	BasePrice    float64
	Price        float64
	CreatedAt    time.Time
}

// NewSprayRequest builds an unpersisted request with status Pending. Crop
// membership in the known crop set is deliberately not enforced.
func NewSprayRequest(p NewRequestParams) (*SprayRequest, error) {
	if strings.TrimSpace(p.Address) == "" {
		return nil, ErrEmptyAddress
	}
	if err := validateAcres(p.Acres); err != nil {
		return nil, err
	}
	if p.BasePrice < 0 || p.Price < 0 {
		return nil, ErrNegativePrice
	}

	return &SprayRequest{
		userID:       p.UserID,
		address:      strings.TrimSpace(p.Address),
		acres:        p.Acres,
		tanks:        p.Tanks,
		sprayingDate: p.SprayingDate,
		agrochemical: p.Agrochemical,
		crop:         p.Crop,
		couponCode:   p.CouponCode,
		basePrice:    p.BasePrice,
		price:        p.Price,
		status:       StatusPending,
		createdAt:    p.CreatedAt,
	}, nil
}

// Reconstruct rehydrates a persisted request without re-running creation
// validation; the store layer already validated the document shape.
func Reconstruct(
	id, userID uuid.UUID,
	address string,
	acres float64,
	tanks TankPlan,
	sprayingDate SprayDate,
	agrochemical, crop string,
	couponCode *string,
	basePrice, price float64,
	status Status,
	createdAt time.Time,
) *SprayRequest {
	return &SprayRequest{
		id:           id,
		userID:       userID,
		address:      address,
		acres:        acres,
		tanks:        tanks,
		sprayingDate: sprayingDate,
		agrochemical: agrochemical,
		crop:         crop,
		couponCode:   couponCode,
		basePrice:    basePrice,
		price:        price,
		status:       status,
		createdAt:    createdAt,
	}
}

// Transition moves the request to next under the guarded state machine:
// next must be an enum member and the current status must not be terminal.
func (r *SprayRequest) Transition(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !r.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	r.status = next
	return nil
}

// SetStatus writes next unconditionally apart from enum membership. It exists
// for operator correction of records the guarded machine would refuse to
// touch.
func (r *SprayRequest) SetStatus(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	r.status = next
	return nil
}

func (r *SprayRequest) WithID(id uuid.UUID) *SprayRequest {
	out := *r
	out.id = id
	return &out
}

func (r *SprayRequest) ID() uuid.UUID           { return r.id }
func (r *SprayRequest) UserID() uuid.UUID       { return r.userID }
func (r *SprayRequest) Address() string         { return r.address }
func (r *SprayRequest) Acres() float64          { return r.acres }
func (r *SprayRequest) Tanks() TankPlan         { return r.tanks }
func (r *SprayRequest) SprayingDate() SprayDate { return r.sprayingDate }
func (r *SprayRequest) Agrochemical() string    { return r.agrochemical }
func (r *SprayRequest) Crop() string            { return r.crop }
func (r *SprayRequest) CouponCode() *string     { return r.couponCode }
func (r *SprayRequest) BasePrice() float64      { return r.basePrice }
func (r *SprayRequest) Price() float64          { return r.price }
func (r *SprayRequest) Status() Status          { return r.status }
func (r *SprayRequest) CreatedAt() time.Time    { return r.createdAt }
