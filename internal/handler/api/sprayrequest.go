package api

import (
	"errors"
	"net/http"

	"agrispray/internal/domain/sprayrequest"
	reqdto "agrispray/internal/handler/dto/request"
	resdto "agrispray/internal/handler/dto/response"
	"agrispray/internal/handler/httperr"
	"agrispray/internal/handler/middleware"
	"agrispray/internal/pkg/errs"
	"agrispray/internal/usecase/commands"
	"agrispray/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SprayRequestHandler struct {
	requestCommands commands.RequestCommands
	requestQueries  queries.RequestQueries
}

func NewSprayRequestHandler(requestCommands commands.RequestCommands, requestQueries queries.RequestQueries) *SprayRequestHandler {
	return &SprayRequestHandler{
		requestCommands: requestCommands,
		requestQueries:  requestQueries,
	}
}

// @Summary Create spray request
// @Description Create a new drone spraying request; price is derived from the tank plan and an optional coupon
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSprayRequestRequest true "Spray request"
// @Success 201 {object} resdto.CreateSprayRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /requests [post]
func (h *SprayRequestHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateSprayRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.requestCommands.CreateRequest(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.Header("Location", "/api/requests/"+result.Request.ID.String())
	c.JSON(http.StatusCreated, resdto.FromCreateResult(result.Request, result.CouponReason))
}

// @Summary Get spray request
// @Description Get one of the caller's spray requests by id
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.SprayRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /requests/{id} [get]
func (h *SprayRequestHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.requestQueries.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRequestNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRequestView(view))
}

// @Summary List spray requests
// @Description List the caller's spray requests, optionally filtered by status
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Router /requests [get]
func (h *SprayRequestHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var status *sprayrequest.Status
	if raw := c.Query("status"); raw != "" {
		s := sprayrequest.Status(raw)
		status = &s
	}

	views, err := h.requestQueries.ListByUser(c.Request.Context(), userID, status)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidStatus):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown status", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	requests := make([]*resdto.SprayRequestResponse, len(views))
	for i, view := range views {
		requests[i] = resdto.FromRequestView(view)
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// @Summary Transition request status
// @Description Apply a guarded status transition; terminal requests refuse further changes
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body reqdto.TransitionRequest true "Target status"
// @Success 200 {object} resdto.SprayRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /requests/{id}/transition [post]
func (h *SprayRequestHandler) Transition(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var req reqdto.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.requestCommands.Transition(c.Request.Context(), userID, id, sprayrequest.Status(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRequestNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
		case errors.Is(err, errs.ErrInvalidStatus):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown status", nil)
		case errors.Is(err, errs.ErrTerminalStatus):
			httperr.AbortWithError(c, http.StatusConflict, err, "Request already finalized", nil)
		case errors.Is(err, errs.ErrInvalidTransition):
			httperr.AbortWithError(c, http.StatusConflict, err, "Transition not allowed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRequestView(view))
}

// @Summary Override request status
// @Description Raw status write for operator correction; bypasses the transition guard
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body reqdto.OverrideStatusRequest true "New status"
// @Success 200 {object} resdto.SprayRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /requests/{id}/status [put]
func (h *SprayRequestHandler) OverrideStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var req reqdto.OverrideStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.requestCommands.OverrideStatus(c.Request.Context(), id, sprayrequest.Status(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRequestNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
		case errors.Is(err, errs.ErrInvalidStatus):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown status", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRequestView(view))
}
