package menu

import (
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
// Manually add one menu item
// --------------------------------------------------
func (h *Handler) CreateItem(c *gin.Context) {
	restaurantID := c.Param("id")

	var req struct {
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Category    string   `json:"category"`
		Price       *float64 `json:"price"`
		Allergens   []struct {
			AllergenID string `json:"allergen_id"`
			Severity   int    `json:"severity"`
		} `json:"allergens"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item := &Item{
		RestaurantID: restaurantID,
		Name:         req.Name,
		Description:  req.Description,
		Category:     req.Category,
		Price:        req.Price,
		Active:       true,
	}

	links := make([]AllergenLink, 0, len(req.Allergens))
	for _, a := range req.Allergens {
		severity := a.Severity
		if severity == 0 {
			severity = 1
		}
		links = append(links, AllergenLink{
			AllergenID: a.AllergenID,
			Severity:   severity,
		})
	}

	if err := h.service.CreateItem(c.Request.Context(), item, links); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, item)
}

// --------------------------------------------------
// List a restaurant's items
// --------------------------------------------------
func (h *Handler) ListItems(c *gin.Context) {
	restaurantID := c.Param("id")

	items, err := h.service.ListItems(c.Request.Context(), restaurantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch menu items"})
		return
	}

	if items == nil {
		items = []Item{}
	}

	c.JSON(http.StatusOK, items)
}
