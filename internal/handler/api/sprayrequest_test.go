//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"agrispray/internal/domain/sprayrequest"
	"agrispray/internal/handler/api"
	resdto "agrispray/internal/handler/dto/response"
	"agrispray/internal/pkg/errs"
	"agrispray/internal/usecase/commands"
	"agrispray/internal/usecase/queries"
	"agrispray/tests/common/builder"
	"agrispray/tests/common/httptest"
	"agrispray/tests/common/testutil"
	commandsmock "agrispray/tests/mock/commands"
	queriesmock "agrispray/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SprayRequestHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRequestCommands
	mockQueries  *queriesmock.MockRequestQueries
	handler      *api.SprayRequestHandler
	userID       uuid.UUID
}

func (s *SprayRequestHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRequestCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRequestQueries(s.mockCtrl)
	s.handler = api.NewSprayRequestHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_phone", "+919876543210")
		c.Next()
	}

	s.router.POST("/api/requests", authMiddleware, s.handler.Create)
	s.router.GET("/api/requests", authMiddleware, s.handler.List)
	s.router.GET("/api/requests/:id", authMiddleware, s.handler.Get)
	s.router.POST("/api/requests/:id/transition", authMiddleware, s.handler.Transition)
	s.router.PUT("/api/requests/:id/status", authMiddleware, s.handler.OverrideStatus)
}

func (s *SprayRequestHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSprayRequestHandlerSuite(t *testing.T) {
	suite.Run(t, new(SprayRequestHandlerTestSuite))
}

type testCaseRequest struct {
	name         string
	mutate       func(m map[string]any)
	expectCode   int
	expectInBody string
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *SprayRequestHandlerTestSuite) TestCreate() {
	url := "/api/requests"

	reqBody := builder.NewSprayRequestBuilder().BuildCreateRequestDTO()
	returnView := builder.NewSprayRequestBuilder().WithUserID(s.userID).BuildView()

	s.Run("success: returns 201 Created with Location header", func() {
		s.mockCommands.EXPECT().CreateRequest(gomock.Any(), s.userID, reqBody.ToInput()).
			Return(&commands.CreateRequestResult{Request: returnView}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.CreateSprayRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID, body.ID)
		s.Equal("Pending", body.Status)
		s.Equal("#eab308", body.StatusColor)
		s.Empty(body.CouponReason)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/requests/" + returnView.ID.String()})
	})

	s.Run("success: unknown coupon is reported, not rejected", func() {
		code := "DISCOUNT90"
		withCoupon := builder.NewSprayRequestBuilder().BuildCreateRequestDTO()
		withCoupon.CouponCode = &code

		s.mockCommands.EXPECT().CreateRequest(gomock.Any(), s.userID, withCoupon.ToInput()).
			Return(&commands.CreateRequestResult{Request: returnView, CouponReason: "Invalid coupon code"}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, withCoupon, "bearer-token")

		var body resdto.CreateSprayRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("Invalid coupon code", body.CouponReason)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseRequest{
			{name: "missing field: address", mutate: testutil.Field("address", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: acres", mutate: testutil.Field("acres", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: numberOfTanks", mutate: testutil.Field("numberOfTanks", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: tanksToSpray", mutate: testutil.Field("tanksToSpray", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: sprayingDate", mutate: testutil.Field("sprayingDate", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: agrochemical", mutate: testutil.Field("agrochemical", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: crop", mutate: testutil.Field("crop", nil), expectCode: http.StatusBadRequest},
			{name: "acres must be positive", mutate: testutil.Field("acres", 0), expectCode: http.StatusBadRequest},
			{name: "numberOfTanks must be at least 1", mutate: testutil.Field("numberOfTanks", 0), expectCode: http.StatusBadRequest},
			{name: "tanksToSpray must be at least 1", mutate: testutil.Field("tanksToSpray", 0), expectCode: http.StatusBadRequest},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "domain validation error",
				commandsError:  errs.ErrDomainValidation,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid request",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateRequest(gomock.Any(), s.userID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *SprayRequestHandlerTestSuite) TestGet() {
	requestID := uuid.New()
	url := "/api/requests/" + requestID.String()

	returnView := builder.NewSprayRequestBuilder().WithUserID(s.userID).BuildView()
	returnView.ID = requestID

	s.Run("success: returns 200 OK with SprayRequestResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, requestID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.SprayRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(requestID, response.ID)
		s.Equal(returnView.Status, response.Status)
		s.Equal(returnView.StatusColor, response.StatusColor)
		s.Equal(returnView.Price, response.Price)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/requests/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found for missing or foreign request", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, requestID).
			Return(nil, errs.ErrRequestNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *SprayRequestHandlerTestSuite) TestList() {
	url := "/api/requests"

	s.Run("success: returns 200 OK with all requests", func() {
		views := []*queries.RequestView{
			builder.NewSprayRequestBuilder().WithUserID(s.userID).BuildView(),
			builder.NewSprayRequestBuilder().WithUserID(s.userID).WithStatus(sprayrequest.StatusAccepted).BuildView(),
		}
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID, (*sprayrequest.Status)(nil)).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body struct {
			Requests []resdto.SprayRequestResponse `json:"requests"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Requests, 2)
	})

	s.Run("success: passes status filter through", func() {
		status := sprayrequest.StatusAccepted
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID, &status).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=Accepted", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for unknown status filter", func() {
		status := sprayrequest.Status("Archived")
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID, &status).
			Return(nil, errs.ErrInvalidStatus).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=Archived", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown status")
	})
}

// ================================================================================
// TestTransition
// ================================================================================

func (s *SprayRequestHandlerTestSuite) TestTransition() {
	requestID := uuid.New()
	url := "/api/requests/" + requestID.String() + "/transition"

	returnView := builder.NewSprayRequestBuilder().WithUserID(s.userID).WithStatus(sprayrequest.StatusAccepted).BuildView()
	returnView.ID = requestID

	s.Run("success: returns 200 OK with updated status", func() {
		s.mockCommands.EXPECT().Transition(gomock.Any(), s.userID, requestID, sprayrequest.StatusAccepted).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, gin.H{"status": "Accepted"}, "bearer-token")

		var response resdto.SprayRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Accepted", response.Status)
		s.Equal("#3b82f6", response.StatusColor)
	})

	s.Run("error: 400 Bad Request when status is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, gin.H{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/requests/not-a-uuid/transition", gin.H{"status": "Accepted"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			status         string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "request not found",
				status:         "Accepted",
				commandsError:  errs.ErrRequestNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Not found",
			},
			{
				name:           "unknown status",
				status:         "Archived",
				commandsError:  errs.ErrInvalidStatus,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Unknown status",
			},
			{
				name:           "terminal request refuses changes",
				status:         "Accepted",
				commandsError:  errs.ErrTerminalStatus,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Request already finalized",
			},
			{
				name:           "transition not allowed",
				status:         "Completed",
				commandsError:  errs.ErrInvalidTransition,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Transition not allowed",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Transition(gomock.Any(), s.userID, requestID, sprayrequest.Status(tc.status)).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, gin.H{"status": tc.status}, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestOverrideStatus
// ================================================================================

func (s *SprayRequestHandlerTestSuite) TestOverrideStatus() {
	requestID := uuid.New()
	url := "/api/requests/" + requestID.String() + "/status"

	returnView := builder.NewSprayRequestBuilder().WithUserID(s.userID).WithStatus(sprayrequest.StatusRescheduled).BuildView()
	returnView.ID = requestID

	s.Run("success: bypasses the transition guard", func() {
		s.mockCommands.EXPECT().OverrideStatus(gomock.Any(), requestID, sprayrequest.StatusRescheduled).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, gin.H{"status": "Rescheduled"}, "bearer-token")

		var response resdto.SprayRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Rescheduled", response.Status)
	})

	s.Run("error: 400 Bad Request for unknown status", func() {
		s.mockCommands.EXPECT().OverrideStatus(gomock.Any(), requestID, sprayrequest.Status("Archived")).
			Return(nil, errs.ErrInvalidStatus).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, gin.H{"status": "Archived"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown status")
	})

	s.Run("error: 404 Not Found for missing request", func() {
		s.mockCommands.EXPECT().OverrideStatus(gomock.Any(), requestID, sprayrequest.StatusAccepted).
			Return(nil, errs.ErrRequestNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, gin.H{"status": "Accepted"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}
