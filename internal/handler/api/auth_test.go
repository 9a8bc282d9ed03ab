//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"agrispray/internal/handler/api"
	resdto "agrispray/internal/handler/dto/response"
	"agrispray/internal/pkg/errs"
	"agrispray/internal/usecase/commands"
	"agrispray/tests/common/httptest"
	commandsmock "agrispray/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	handler      *api.AuthHandler
	userID       uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands)
	s.userID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_phone", "+919876543210")
		c.Next()
	}

	s.router.POST("/api/auth/otp/request", s.handler.RequestOtp)
	s.router.POST("/api/auth/otp/verify", s.handler.VerifyOtp)
	s.router.GET("/api/auth/me", authMiddleware, s.handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

// ================================================================================
// TestRequestOtp
// ================================================================================

func (s *AuthHandlerTestSuite) TestRequestOtp() {
	url := "/api/auth/otp/request"

	challengeID := uuid.New()
	expiresAt := time.Now().Add(5 * time.Minute).UTC()

	s.Run("success: returns 201 Created with challenge id", func() {
		s.mockCommands.EXPECT().RequestOtp(gomock.Any(), "+919876543210").
			Return(&commands.OtpChallengeResult{ChallengeID: challengeID, ExpiresAt: expiresAt, Code: "123456"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, gin.H{"phone": "+919876543210"}, "")

		var body resdto.OtpChallengeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(challengeID, body.ChallengeID)
		// The plain code never leaves the server outside debug mode.
		s.Empty(body.DebugCode)
	})

	s.Run("success: phone is normalized before the usecase sees it", func() {
		s.mockCommands.EXPECT().RequestOtp(gomock.Any(), "+919876543210").
			Return(&commands.OtpChallengeResult{ChallengeID: challengeID, ExpiresAt: expiresAt}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, gin.H{"phone": " +91 98765 43210 "}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request when phone is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, gin.H{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 Bad Request for malformed phone", func() {
		s.mockCommands.EXPECT().RequestOtp(gomock.Any(), "12345").
			Return(nil, commands.ErrInvalidPhone).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, gin.H{"phone": "12345"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid phone number")
	})
}

// ================================================================================
// TestVerifyOtp
// ================================================================================

func (s *AuthHandlerTestSuite) TestVerifyOtp() {
	url := "/api/auth/otp/verify"

	challengeID := uuid.New()
	userID := uuid.New()

	s.Run("success: returns 200 OK with token", func() {
		s.mockCommands.EXPECT().VerifyOtp(gomock.Any(), challengeID, "123456").
			Return(&commands.VerifyResult{UserID: userID, Token: "jwt-token"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, gin.H{"challengeId": challengeID, "code": "123456"}, "")

		var body resdto.VerifyOtpResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(userID, body.UserID)
		s.Equal("jwt-token", body.Token)
	})

	s.Run("error: 400 Bad Request for wrong code length", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, gin.H{"challengeId": challengeID, "code": "1234"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "challenge not found",
				commandsError:  errs.ErrChallengeNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Challenge not found",
			},
			{
				name:           "challenge expired or already used",
				commandsError:  errs.ErrChallengeExpired,
				expectedStatus: http.StatusGone,
				expectedMsg:    "Challenge expired",
			},
			{
				name:           "code mismatch",
				commandsError:  errs.ErrCodeMismatch,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Incorrect code",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().VerifyOtp(gomock.Any(), challengeID, "123456").
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, gin.H{"challengeId": challengeID, "code": "123456"}, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestMe
// ================================================================================

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/api/auth/me"

	s.Run("success: returns the token claims", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.MeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(s.userID, body.UserID)
		s.Equal("+919876543210", body.Phone)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
