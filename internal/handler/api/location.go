package api

import (
	"errors"
	"net/http"

	reqdto "agrispray/internal/handler/dto/request"
	"agrispray/internal/handler/httperr"
	"agrispray/internal/handler/middleware"
	"agrispray/internal/pkg/errs"
	"agrispray/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type LocationHandler struct {
	locationCommands commands.LocationCommands
}

func NewLocationHandler(locationCommands commands.LocationCommands) *LocationHandler {
	return &LocationHandler{
		locationCommands: locationCommands,
	}
}

// @Summary Report location
// @Description Record the caller's current position for provider matching
// @Tags location
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.ReportLocationRequest true "Coordinate"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Router /location [put]
func (h *LocationHandler) Report(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.ReportLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.locationCommands.Report(c.Request.Context(), userID, req.Latitude, req.Longitude); err != nil {
		switch {
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Coordinate out of range", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
