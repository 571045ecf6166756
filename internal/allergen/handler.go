package allergen

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// ListCatalog returns the global allergen catalog.
func (h *Handler) ListCatalog(c *gin.Context) {
	allergens, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch allergens"})
		return
	}

	c.JSON(http.StatusOK, allergens)
}
