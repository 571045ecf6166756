package toggles

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// GET /restaurants/:id/toggles
// --------------------------------------------------
func (h *Handler) ListToggles(c *gin.Context) {
	out, err := h.service.ListToggles(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch toggles"})
		return
	}

	c.JSON(http.StatusOK, out)
}

// --------------------------------------------------
// PUT /restaurants/:id/toggles/:feature
// --------------------------------------------------
func (h *Handler) SetToggle(c *gin.Context) {
	var req struct {
		Enabled *bool `json:"enabled"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || req.Enabled == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "enabled is required"})
		return
	}

	toggle, err := h.service.SetToggle(c.Request.Context(), c.Param("id"), c.Param("feature"), *req.Enabled)
	if errors.Is(err, ErrUnknownFeature) {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown feature"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update toggle"})
		return
	}

	c.JSON(http.StatusOK, toggle)
}
