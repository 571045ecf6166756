package team

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
// POST /restaurants/:id/team
// --------------------------------------------------
func (h *Handler) Invite(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
		Role  string `json:"role"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	member, err := h.service.Invite(c.Request.Context(), c.Param("id"), req.Email, req.Role)
	if errors.Is(err, ErrAlreadyMember) {
		c.JSON(http.StatusConflict, gin.H{"error": "email already invited"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, member)
}

// --------------------------------------------------
// GET /restaurants/:id/team
// --------------------------------------------------
func (h *Handler) ListMembers(c *gin.Context) {
	members, err := h.service.ListMembers(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch team"})
		return
	}

	c.JSON(http.StatusOK, members)
}

// --------------------------------------------------
// PATCH /restaurants/:id/team/:member_id
// --------------------------------------------------
func (h *Handler) ChangeRole(c *gin.Context) {
	var req struct {
		Role string `json:"role"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	err := h.service.ChangeRole(c.Request.Context(), c.Param("id"), c.Param("member_id"), req.Role)
	if errors.Is(err, ErrMemberNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "team member not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "role updated"})
}

// --------------------------------------------------
// DELETE /restaurants/:id/team/:member_id
// --------------------------------------------------
func (h *Handler) Remove(c *gin.Context) {
	err := h.service.Remove(c.Request.Context(), c.Param("id"), c.Param("member_id"))
	if errors.Is(err, ErrMemberNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "team member not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove member"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "member removed"})
}
