package request

import (
	"strings"

	"agrispray/internal/usecase/commands"
)

type CreateSprayRequestRequest struct {
	Address       string  `json:"address" binding:"required"`
	Acres         float64 `json:"acres" binding:"required,gt=0"`
	NumberOfTanks int     `json:"numberOfTanks" binding:"required,min=1"`
	TanksToSpray  int     `json:"tanksToSpray" binding:"required,min=1"`
	SprayingDate  string  `json:"sprayingDate" binding:"required"`
	Agrochemical  string  `json:"agrochemical" binding:"required"`
	Crop          string  `json:"crop" binding:"required"`
	CouponCode    *string `json:"couponCode,omitempty"`
}

func (r CreateSprayRequestRequest) GetCouponCode() *string {
	if r.CouponCode == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.CouponCode)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (r CreateSprayRequestRequest) ToInput() commands.CreateRequestInput {
	return commands.CreateRequestInput{
		Address:       r.Address,
		Acres:         r.Acres,
		NumberOfTanks: r.NumberOfTanks,
		TanksToSpray:  r.TanksToSpray,
		SprayingDate:  r.SprayingDate,
		Agrochemical:  r.Agrochemical,
		Crop:          r.Crop,
		CouponCode:    r.GetCouponCode(),
	}
}

type TransitionRequest struct {
	Status string `json:"status" binding:"required"`
}

type OverrideStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
