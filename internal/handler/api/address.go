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
	"agrispray/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AddressHandler struct {
	addressCommands commands.AddressCommands
	addressQueries  queries.AddressQueries
}

func NewAddressHandler(addressCommands commands.AddressCommands, addressQueries queries.AddressQueries) *AddressHandler {
	return &AddressHandler{
		addressCommands: addressCommands,
		addressQueries:  addressQueries,
	}
}

// @Summary Save address
// @Description Bookmark a field location for reuse in spray requests
// @Tags addresses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAddressRequest true "Address"
// @Success 201 {object} resdto.AddressResponse
// @Failure 400 {object} httperr.Response
// @Router /addresses [post]
func (h *AddressHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.addressCommands.CreateAddress(c.Request.Context(), userID, commands.CreateAddressInput{
		Name:      req.Name,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAddressView(view))
}

// @Summary List saved addresses
// @Description List the caller's saved addresses
// @Tags addresses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Router /addresses [get]
func (h *AddressHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	views, err := h.addressQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"addresses": resdto.FromAddressViews(views)})
}
