package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/ecopoints/internal/domain/model"
	"github.com/polkiloo/ecopoints/internal/server/http/dto"
)

// VoucherHandler manages the voucher catalogue.
type VoucherHandler struct {
	facade VoucherFacade
}

// NewVoucherHandler constructs VoucherHandler.
func NewVoucherHandler(facade VoucherFacade) *VoucherHandler {
	return &VoucherHandler{facade: facade}
}

// Active handles GET /api/vouchers.
func (h *VoucherHandler) Active(c *gin.Context) {
	h.list(c, true)
}

// All handles GET /api/admin/vouchers.
func (h *VoucherHandler) All(c *gin.Context) {
	h.list(c, false)
}

func (h *VoucherHandler) list(c *gin.Context, activeOnly bool) {
	items, err := h.facade.Vouchers(c.Request.Context(), activeOnly)
	if err != nil {
		writeError(c, err)
		return
	}
	resp := make([]dto.VoucherResponse, 0, len(items))
	for _, v := range items {
		resp = append(resp, toVoucherResponse(v))
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/vouchers/:voucherID.
func (h *VoucherHandler) Get(c *gin.Context) {
	id, ok := PathID(c, "voucherID")
	if !ok {
		return
	}
	v, err := h.facade.Voucher(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toVoucherResponse(*v))
}

// Create handles POST /api/admin/vouchers.
func (h *VoucherHandler) Create(c *gin.Context) {
	var req dto.VoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid body"})
		return
	}
	v, err := h.facade.CreateVoucher(c.Request.Context(), fromVoucherRequest(0, req))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toVoucherResponse(*v))
}

// Update handles PUT /api/admin/vouchers/:voucherID.
func (h *VoucherHandler) Update(c *gin.Context) {
	id, ok := PathID(c, "voucherID")
	if !ok {
		return
	}
	var req dto.VoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid body"})
		return
	}
	v, err := h.facade.UpdateVoucher(c.Request.Context(), fromVoucherRequest(id, req))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toVoucherResponse(*v))
}

func fromVoucherRequest(id int64, req dto.VoucherRequest) model.Voucher {
	status := model.VoucherStatus(req.Status)
	if status == "" {
		status = model.VoucherStatusActive
	}
	return model.Voucher{
		ID:             id,
		Title:          req.Title,
		Description:    req.Description,
		PointsRequired: req.PointsRequired,
		Quantity:       req.Quantity,
		Status:         status,
	}
}
