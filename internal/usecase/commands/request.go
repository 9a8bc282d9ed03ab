package commands

import (
	"context"
	"errors"

	"agrispray/internal/domain/coupon"
	"agrispray/internal/domain/sprayrequest"
	"agrispray/internal/infra"
	"agrispray/internal/pkg/clock"
	"agrispray/internal/pkg/errs"
	"agrispray/internal/usecase/queries"

	"github.com/google/uuid"
)

type RequestRepository interface {
	Create(ctx context.Context, req *sprayrequest.SprayRequest) (*sprayrequest.SprayRequest, error)
	FindByID(ctx context.Context, id uuid.UUID) (*sprayrequest.SprayRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status sprayrequest.Status) (*sprayrequest.SprayRequest, error)
}

type CreateRequestInput struct {
	Address       string
	Acres         float64
	NumberOfTanks int
	TanksToSpray  int
	SprayingDate  string
	Agrochemical  string
	Crop          string
	CouponCode    *string
}

// CreateRequestResult carries the stored request plus the coupon outcome. An
// unknown coupon code does not fail the creation: the request is stored at
// base price and CouponReason explains why.
type CreateRequestResult struct {
	Request      *queries.RequestView
	CouponReason string
}

type RequestCommands interface {
	CreateRequest(ctx context.Context, userID uuid.UUID, input CreateRequestInput) (*CreateRequestResult, error)
	Transition(ctx context.Context, actorID uuid.UUID, id uuid.UUID, next sprayrequest.Status) (*queries.RequestView, error)
	OverrideStatus(ctx context.Context, id uuid.UUID, next sprayrequest.Status) (*queries.RequestView, error)
}

type requestCommandsImpl struct {
	repo    RequestRepository
	pricing sprayrequest.PriceCalculator
	coupons coupon.Table
	clock   clock.Clock
}

func NewRequestCommands(
	repo RequestRepository,
	pricing sprayrequest.PriceCalculator,
	coupons coupon.Table,
	clock clock.Clock,
) RequestCommands {
	return &requestCommandsImpl{
		repo:    repo,
		pricing: pricing,
		coupons: coupons,
		clock:   clock,
	}
}

func (c *requestCommandsImpl) CreateRequest(ctx context.Context, userID uuid.UUID, input CreateRequestInput) (*CreateRequestResult, error) {
	plan, err := sprayrequest.NewTankPlan(input.NumberOfTanks, input.TanksToSpray)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	sprayDate, err := sprayrequest.NewSprayDate(input.SprayingDate)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	basePrice := c.pricing.BasePrice(plan)

	price := basePrice
	var couponCode *string
	var couponReason string
	if input.CouponCode != nil {
		result := c.coupons.Apply(basePrice, *input.CouponCode)
		price = result.Price
		if result.Applied {
			couponCode = input.CouponCode
		} else {
			couponReason = result.Reason
		}
	}

	req, err := sprayrequest.NewSprayRequest(sprayrequest.NewRequestParams{
		UserID:       userID,
		Address:      input.Address,
		Acres:        input.Acres,
		Tanks:        plan,
		SprayingDate: sprayDate,
		Agrochemical: input.Agrochemical,
		Crop:         input.Crop,
		CouponCode:   couponCode,
		BasePrice:    basePrice,
		Price:        price,
		CreatedAt:    c.clock.Now(),
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	created, err := c.repo.Create(ctx, req)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &CreateRequestResult{
		Request:      queries.NewRequestView(created),
		CouponReason: couponReason,
	}, nil
}

// Transition applies the guarded state machine: the caller must own the
// request, next must be a known status, and terminal requests stay put.
func (c *requestCommandsImpl) Transition(ctx context.Context, actorID uuid.UUID, id uuid.UUID, next sprayrequest.Status) (*queries.RequestView, error) {
	req, err := c.findRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.UserID() != actorID {
		return nil, errs.ErrRequestNotFound
	}

	if err := req.Transition(next); err != nil {
		return nil, markTransitionErr(err, req.Status())
	}

	updated, err := c.repo.UpdateStatus(ctx, id, req.Status())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRequestNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return queries.NewRequestView(updated), nil
}

// OverrideStatus is the raw write path for operator corrections. Only enum
// membership is checked; the transition guard is deliberately bypassed.
func (c *requestCommandsImpl) OverrideStatus(ctx context.Context, id uuid.UUID, next sprayrequest.Status) (*queries.RequestView, error) {
	req, err := c.findRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := req.SetStatus(next); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidStatus)
	}

	updated, err := c.repo.UpdateStatus(ctx, id, req.Status())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRequestNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return queries.NewRequestView(updated), nil
}

func (c *requestCommandsImpl) findRequest(ctx context.Context, id uuid.UUID) (*sprayrequest.SprayRequest, error) {
	req, err := c.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRequestNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return req, nil
}

func markTransitionErr(err error, current sprayrequest.Status) error {
	switch {
	case errors.Is(err, sprayrequest.ErrInvalidStatus):
		return errs.Mark(err, errs.ErrInvalidStatus)
	case errors.Is(err, sprayrequest.ErrInvalidTransition):
		if current.IsTerminal() {
			return errs.Mark(err, errs.ErrTerminalStatus)
		}
		return errs.Mark(err, errs.ErrInvalidTransition)
	default:
		return errs.Mark(err, errs.ErrDomainValidation)
	}
}
