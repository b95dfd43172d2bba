package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/ecopoints/internal/domain/errors"
	"github.com/polkiloo/ecopoints/internal/domain/model"
	"github.com/polkiloo/ecopoints/internal/server/http/dto"
)

// PathID parses a positive identifier from the named path parameter.
// It aborts with 400 and reports false when the value is malformed.
func PathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return id, true
}

func queryInt64(c *gin.Context, name string) (int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return v, true
}

func queryLimit(c *gin.Context) (uint64, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, true
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid limit"})
		return 0, false
	}
	return v, true
}

// StatusFor maps an operation error to the HTTP status returned to clients.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainErrors.ErrOutOfStock), errors.Is(err, domainErrors.ErrRedemptionCompleted):
		return http.StatusConflict
	case errors.Is(err, domainErrors.ErrInsufficientBalance):
		return http.StatusPaymentRequired
	case errors.Is(err, domainErrors.ErrInvalidCouponCode),
		errors.Is(err, domainErrors.ErrInvalidVoucher),
		errors.Is(err, domainErrors.ErrInvalidUser),
		errors.Is(err, domainErrors.ErrInvalidAmount),
		errors.Is(err, domainErrors.ErrInvalidGrant):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, err error) {
	_ = c.Error(err)
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: "internal error"})
		return
	}

	resp := dto.ErrorResponse{Error: err.Error()}
	var insufficient *domainErrors.InsufficientBalanceError
	if errors.As(err, &insufficient) {
		resp.Required = &insufficient.Required
		resp.Available = &insufficient.Available
	}
	c.AbortWithStatusJSON(status, resp)
}

func toRedemptionResponse(r model.Redemption) dto.RedemptionResponse {
	return dto.RedemptionResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		VoucherID:   r.VoucherID,
		RequestDate: r.RequestDate,
		Status:      string(r.Status),
		CouponCode:  r.CouponCode,
	}
}

func toVoucherResponse(v model.Voucher) dto.VoucherResponse {
	return dto.VoucherResponse{
		ID:             v.ID,
		Title:          v.Title,
		Description:    v.Description,
		PointsRequired: v.PointsRequired,
		Quantity:       v.Quantity,
		Status:         string(v.Status),
		CreatedAt:      v.CreatedAt,
	}
}

func toPointsLogResponse(e model.PointsLogEntry) dto.PointsLogResponse {
	return dto.PointsLogResponse{
		ID:          e.ID,
		UserID:      e.UserID,
		PointsDelta: e.PointsDelta,
		LogType:     string(e.LogType),
		Reason:      e.Reason,
		SourceID:    e.SourceID,
		CreatedAt:   e.CreatedAt,
	}
}
