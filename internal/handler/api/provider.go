package api

import (
	"errors"
	"net/http"
	"strconv"

	"agrispray/internal/domain/geo"
	"agrispray/internal/domain/provider"
	resdto "agrispray/internal/handler/dto/response"
	"agrispray/internal/handler/httperr"
	"agrispray/internal/handler/middleware"
	"agrispray/internal/pkg/errs"
	"agrispray/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProviderHandler struct {
	providerQueries queries.ProviderQueries
}

func NewProviderHandler(providerQueries queries.ProviderQueries) *ProviderHandler {
	return &ProviderHandler{
		providerQueries: providerQueries,
	}
}

// @Summary Nearby providers
// @Description Providers inside the radius band, sorted by distance. Falls back to the caller's last reported location when lat/lon are omitted.
// @Tags providers
// @Produce json
// @Security BearerAuth
// @Param lat query number false "Origin latitude"
// @Param lon query number false "Origin longitude"
// @Param min_km query number false "Minimum distance"
// @Param max_km query number false "Maximum distance"
// @Success 200 {object} resdto.NearbyProvidersResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /providers/nearby [get]
func (h *ProviderHandler) Nearby(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	params, err := parseNearbyParams(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	views, err := h.providerQueries.Nearby(c.Request.Context(), userID, params)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNoKnownLocation):
			httperr.AbortWithError(c, http.StatusNotFound, err, "No known location; pass lat and lon", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromProviderViews(views))
}

func parseNearbyParams(c *gin.Context) (queries.NearbyParams, error) {
	var params queries.NearbyParams

	latStr, lonStr := c.Query("lat"), c.Query("lon")
	if latStr != "" || lonStr != "" {
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			return params, errors.New("lat must be a number")
		}
		lon, err := strconv.ParseFloat(lonStr, 64)
		if err != nil {
			return params, errors.New("lon must be a number")
		}
		coord, err := geo.NewCoordinate(lat, lon)
		if err != nil {
			return params, err
		}
		params.Origin = &coord
	}

	minStr, maxStr := c.Query("min_km"), c.Query("max_km")
	if minStr != "" || maxStr != "" {
		if maxStr == "" {
			return params, errors.New("max_km is required when min_km is set")
		}
		minKm := 0.0
		if minStr != "" {
			v, err := strconv.ParseFloat(minStr, 64)
			if err != nil {
				return params, errors.New("min_km must be a number")
			}
			minKm = v
		}
		maxKm, err := strconv.ParseFloat(maxStr, 64)
		if err != nil {
			return params, errors.New("max_km must be a number")
		}
		band, err := provider.NewRadiusBand(minKm, maxKm)
		if err != nil {
			return params, err
		}
		params.Band = &band
	}

	return params, nil
}
