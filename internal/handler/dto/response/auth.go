package response

import (
	"time"

	"github.com/google/uuid"
)

type OtpChallengeResponse struct {
	ChallengeID uuid.UUID `json:"challengeId"`
	ExpiresAt   time.Time `json:"expiresAt"`
	// DebugCode is only populated when the server runs in debug mode; there
	// is no SMS gateway behind this service.
	DebugCode string `json:"debugCode,omitempty"`
}

type VerifyOtpResponse struct {
	UserID uuid.UUID `json:"userId"`
	Token  string    `json:"token"`
}

type MeResponse struct {
	UserID uuid.UUID `json:"userId"`
	Phone  string    `json:"phone"`
}
