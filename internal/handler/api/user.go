package api

import (
	"errors"
	"net/http"

	reqdto "agrispray/internal/handler/dto/request"
	resdto "agrispray/internal/handler/dto/response"
	"agrispray/internal/handler/httperr"
	"agrispray/internal/handler/middleware"
	"agrispray/internal/usecase/commands"
	"agrispray/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userCommands commands.UserCommands
	userQueries  queries.UserQueries
}

func NewUserHandler(userCommands commands.UserCommands, userQueries queries.UserQueries) *UserHandler {
	return &UserHandler{
		userCommands: userCommands,
		userQueries:  userQueries,
	}
}

// @Summary Get profile
// @Description The caller's profile document
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.UserProfileResponse
// @Failure 404 {object} httperr.Response
// @Router /users/me/profile [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	view, err := h.userQueries.GetProfile(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrProfileNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Profile not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserProfileView(view))
}

// @Summary Update profile
// @Description Replace the caller's profile document
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateProfileRequest true "Profile"
// @Success 200 {object} resdto.UserProfileResponse
// @Failure 400 {object} httperr.Response
// @Router /users/me/profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	phone, _ := middleware.GetUserPhone(c)

	var req reqdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.userCommands.UpdateProfile(c.Request.Context(), userID, phone, commands.UpdateProfileInput{
		Name:       req.Name,
		Occupation: req.Occupation,
		DOB:        req.DOB,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEmptyProfileName):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Name must not be empty", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserProfileView(view))
}
