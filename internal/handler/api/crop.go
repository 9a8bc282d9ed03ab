package api

import (
	"net/http"

	"agrispray/internal/domain/sprayrequest"

	"github.com/gin-gonic/gin"
)

type CropHandler struct{}

func NewCropHandler() *CropHandler {
	return &CropHandler{}
}

// @Summary List crops
// @Description The crop names offered in the request form
// @Tags crops
// @Produce json
// @Success 200 {object} map[string]any
// @Router /crops [get]
func (h *CropHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"crops": sprayrequest.KnownCrops()})
}
