package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/ecopoints/internal/domain/model"
	"github.com/polkiloo/ecopoints/internal/server/http/dto"
)

// GrantHandler accepts point grants for asynchronous crediting.
type GrantHandler struct {
	facade GrantFacade
}

// NewGrantHandler constructs GrantHandler.
func NewGrantHandler(facade GrantFacade) *GrantHandler {
	return &GrantHandler{facade: facade}
}

// Enqueue handles POST /api/admin/grants.
func (h *GrantHandler) Enqueue(c *gin.Context) {
	var req dto.GrantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid body"})
		return
	}

	g, err := h.facade.EnqueueGrant(c.Request.Context(), model.Grant{
		UserID:   req.UserID,
		Points:   req.Points,
		LogType:  model.LogType(req.LogType),
		Reason:   req.Reason,
		SourceID: req.SourceID,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, dto.GrantResponse{
		ID:      g.ID,
		UserID:  g.UserID,
		Points:  g.Points,
		LogType: string(g.LogType),
		Status:  string(g.Status),
	})
}
