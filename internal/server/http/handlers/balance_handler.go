package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/ecopoints/internal/domain/model"
	"github.com/polkiloo/ecopoints/internal/server/http/dto"
)

// BalanceHandler manages balance and points log endpoints.
type BalanceHandler struct {
	facade BalanceFacade
}

// NewBalanceHandler constructs BalanceHandler.
func NewBalanceHandler(facade BalanceFacade) *BalanceHandler {
	return &BalanceHandler{facade: facade}
}

// Summary handles GET /api/users/:userID/balance.
func (h *BalanceHandler) Summary(c *gin.Context) {
	userID, ok := PathID(c, "userID")
	if !ok {
		return
	}
	summary, err := h.facade.Balance(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{
		UserID:   summary.UserID,
		Current:  summary.Current,
		Earned:   summary.Earned,
		Redeemed: summary.Redeemed,
	})
}

// History handles GET /api/users/:userID/points-log.
func (h *BalanceHandler) History(c *gin.Context) {
	userID, ok := PathID(c, "userID")
	if !ok {
		return
	}
	entries, err := h.facade.PointsHistory(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	writePointsLog(c, entries)
}

// PointsLog handles GET /api/admin/points-log.
func (h *BalanceHandler) PointsLog(c *gin.Context) {
	logType := model.LogType(c.Query("log_type"))
	if logType != "" && logType != model.LogTypeRedeemVoucher && !logType.Earning() {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid log_type"})
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

	entries, err := h.facade.PointsLog(c.Request.Context(), model.PointsLogFilter{UserID: userID, LogType: logType, Limit: limit})
	if err != nil {
		writeError(c, err)
		return
	}
	writePointsLog(c, entries)
}

func writePointsLog(c *gin.Context, entries []model.PointsLogEntry) {
	if len(entries) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	resp := make([]dto.PointsLogResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, toPointsLogResponse(e))
	}
	c.JSON(http.StatusOK, resp)
}
