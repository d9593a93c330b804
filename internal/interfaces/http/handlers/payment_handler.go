package handlers

import (
	"github.com/gin-gonic/gin"
	apporder "github.com/techzone/backend/internal/application/order"
	"github.com/techzone/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// PaymentHandler exposes payment processing endpoints
type PaymentHandler struct {
	BaseHandler
	payments *apporder.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(payments *apporder.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{BaseHandler: NewBaseHandler(log), payments: payments}
}

// Process godoc
// @Summary Pay for an order. Declined attempts can be retried.
// @Tags payments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body order.ProcessPaymentRequest true "Order and payment method"
// @Success 200 {object} dto.Response
// @Router /payments [post]
func (h *PaymentHandler) Process(c *gin.Context) {
	var req apporder.ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	resp, err := h.payments.Process(c.Request.Context(), middleware.UserID(c), middleware.IsAdmin(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetByOrder godoc
// @Summary Get the payment attached to an order
// @Tags payments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order id"
// @Success 200 {object} dto.Response
// @Router /orders/{id}/payment [get]
func (h *PaymentHandler) GetByOrder(c *gin.Context) {
	orderID, ok := h.PathUUID(c, "id")
	if !ok {
		return
	}

	resp, err := h.payments.GetByOrder(c.Request.Context(), orderID, middleware.UserID(c), middleware.IsAdmin(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Refund godoc
// @Summary Refund a completed payment and restore stock
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Payment id"
// @Success 200 {object} dto.Response
// @Router /admin/payments/{id}/refund [post]
func (h *PaymentHandler) Refund(c *gin.Context) {
	id, ok := h.PathUUID(c, "id")
	if !ok {
		return
	}

	resp, err := h.payments.Refund(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
