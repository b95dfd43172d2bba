package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/ecopoints/internal/domain/model"
	"github.com/polkiloo/ecopoints/internal/server/http/dto"
)

// RedemptionHandler manages redemption endpoints.
type RedemptionHandler struct {
	facade RedemptionFacade
}

// NewRedemptionHandler constructs RedemptionHandler.
func NewRedemptionHandler(facade RedemptionFacade) *RedemptionHandler {
	return &RedemptionHandler{facade: facade}
}

// Redeem handles POST /api/users/:userID/redemptions.
func (h *RedemptionHandler) Redeem(c *gin.Context) {
	userID, ok := PathID(c, "userID")
	if !ok {
		return
	}
	var req dto.RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.VoucherID <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid voucher_id"})
		return
	}

	rec, err := h.facade.Redeem(c.Request.Context(), userID, req.VoucherID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toRedemptionResponse(*rec))
}

// UserList handles GET /api/users/:userID/redemptions.
func (h *RedemptionHandler) UserList(c *gin.Context) {
	userID, ok := PathID(c, "userID")
	if !ok {
		return
	}
	items, err := h.facade.UserRedemptions(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	writeRedemptions(c, items)
}

// List handles GET /api/admin/redemptions.
func (h *RedemptionHandler) List(c *gin.Context) {
	status := model.RedemptionStatus(c.Query("status"))
	if status != "" && status != model.RedemptionStatusPending && status != model.RedemptionStatusCompleted {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid status"})
		return
	}
	userID, ok := queryInt64(c, "user_id")
	if !ok {
		return
	}
	limit, ok := queryLimit(c)
	if !ok {
		return
	}

	items, err := h.facade.Redemptions(c.Request.Context(), model.RedemptionFilter{UserID: userID, Status: status, Limit: limit})
	if err != nil {
		writeError(c, err)
		return
	}
	writeRedemptions(c, items)
}

// Fulfill handles POST /api/admin/redemptions/:redemptionID/fulfill.
func (h *RedemptionHandler) Fulfill(c *gin.Context) {
	id, ok := PathID(c, "redemptionID")
	if !ok {
		return
	}
	var req dto.FulfillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid body"})
		return
	}

	if err := h.facade.Fulfill(c.Request.Context(), id, req.CouponCode); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Discard handles DELETE /api/admin/redemptions/:redemptionID.
func (h *RedemptionHandler) Discard(c *gin.Context) {
	id, ok := PathID(c, "redemptionID")
	if !ok {
		return
	}
	if err := h.facade.DiscardRedemption(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func writeRedemptions(c *gin.Context, items []model.Redemption) {
	if len(items) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	resp := make([]dto.RedemptionResponse, 0, len(items))
	for _, r := range items {
		resp = append(resp, toRedemptionResponse(r))
	}
	c.JSON(http.StatusOK, resp)
}
