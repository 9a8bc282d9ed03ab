package api

import (
	"errors"
	"net/http"

	reqdto "agrispray/internal/handler/dto/request"
	resdto "agrispray/internal/handler/dto/response"
	"agrispray/internal/handler/httperr"
	"agrispray/internal/handler/middleware"
	"agrispray/internal/pkg/errs"
	"agrispray/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
}

func NewAuthHandler(authCommands commands.AuthCommands) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
	}
}

// @Summary Request OTP challenge
// @Description Start a phone login; the OTP is only echoed back in debug mode
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RequestOtpRequest true "Phone number"
// @Success 201 {object} resdto.OtpChallengeResponse
// @Failure 400 {object} httperr.Response
// @Router /auth/otp/request [post]
func (h *AuthHandler) RequestOtp(c *gin.Context) {
	var req reqdto.RequestOtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.authCommands.RequestOtp(c.Request.Context(), req.NormalizedPhone())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidPhone):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid phone number", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	response := resdto.OtpChallengeResponse{
		ChallengeID: result.ChallengeID,
		ExpiresAt:   result.ExpiresAt,
	}
	if gin.Mode() == gin.DebugMode {
		response.DebugCode = result.Code
	}
	c.JSON(http.StatusCreated, response)
}

// @Summary Verify OTP
// @Description Verify a challenge code and receive a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.VerifyOtpRequest true "Challenge id and code"
// @Success 200 {object} resdto.VerifyOtpResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Router /auth/otp/verify [post]
func (h *AuthHandler) VerifyOtp(c *gin.Context) {
	var req reqdto.VerifyOtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.authCommands.VerifyOtp(c.Request.Context(), req.ChallengeID, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrChallengeNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Challenge not found", nil)
		case errors.Is(err, errs.ErrChallengeExpired):
			httperr.AbortWithError(c, http.StatusGone, err, "Challenge expired", nil)
		case errors.Is(err, errs.ErrCodeMismatch):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Incorrect code", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.VerifyOtpResponse{
		UserID: result.UserID,
		Token:  result.Token,
	})
}

// @Summary Current user
// @Description Identity claims of the authenticated caller
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.MeResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	phone, _ := middleware.GetUserPhone(c)

	c.JSON(http.StatusOK, resdto.MeResponse{
		UserID: userID,
		Phone:  phone,
	})
}
