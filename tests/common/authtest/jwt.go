//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"agrispray/internal/pkg/config"
	"agrispray/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

// GenerateToken mints a token the same way VerifyOtp would, so e2e tests can
// authenticate without driving the OTP flow for every case.
func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, phone string) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Duration)
	token, err := service.GenerateToken(userID, phone)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, phone string) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, 1*time.Millisecond)
	token, err := service.GenerateToken(userID, phone)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
