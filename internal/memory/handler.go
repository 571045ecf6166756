package memory

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
// POST /restaurants/:id/memories
// --------------------------------------------------
func (h *Handler) Record(c *gin.Context) {
	var req struct {
		GuestName string `json:"guest_name"`
		Note      string `json:"note"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	memory, err := h.service.Record(c.Request.Context(), c.Param("id"), req.GuestName, req.Note)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, memory)
}

// --------------------------------------------------
// GET /restaurants/:id/memories?guest=NAME
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	memories, err := h.service.List(c.Request.Context(), c.Param("id"), c.Query("guest"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch memories"})
		return
	}

	c.JSON(http.StatusOK, memories)
}

// --------------------------------------------------
// DELETE /restaurants/:id/memories/:memory_id
// --------------------------------------------------
func (h *Handler) Delete(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), c.Param("id"), c.Param("memory_id"))
	if errors.Is(err, ErrMemoryNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "memory not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete memory"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "memory deleted"})
}
