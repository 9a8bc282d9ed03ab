package request

import (
	"strings"

	"github.com/google/uuid"
)

type RequestOtpRequest struct {
	Phone string `json:"phone" binding:"required"`
}

func (r RequestOtpRequest) NormalizedPhone() string {
	return strings.ReplaceAll(strings.TrimSpace(r.Phone), " ", "")
}

type VerifyOtpRequest struct {
	ChallengeID uuid.UUID `json:"challengeId" binding:"required"`
	Code        string    `json:"code" binding:"required,len=6"`
}
