package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/ecopoints/internal/server/http/dto"
)

// UserHandler registers users.
type UserHandler struct {
	facade UserFacade
}

// NewUserHandler constructs UserHandler.
func NewUserHandler(facade UserFacade) *UserHandler {
	return &UserHandler{facade: facade}
}

// Create handles POST /api/admin/users.
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid body"})
		return
	}
	user, err := h.facade.CreateUser(c.Request.Context(), req.Name)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.UserResponse{
		ID:            user.ID,
		Name:          user.Name,
		PointsBalance: user.PointsBalance,
		CreatedAt:     user.CreatedAt,
	})
}
