package handlers

import (
	"github.com/gin-gonic/gin"
	apporder "github.com/techzone/backend/internal/application/order"
	"github.com/techzone/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// OrderHandler exposes checkout and order endpoints
type OrderHandler struct {
	BaseHandler
	orders *apporder.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orders *apporder.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{BaseHandler: NewBaseHandler(log), orders: orders}
}

// Create godoc
// @Summary Place an order
// @Tags orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body order.CreateOrderRequest true "Order lines and addresses"
// @Success 201 {object} dto.Response
// @Router /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req apporder.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	resp, err := h.orders.Create(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ListMine godoc
// @Summary List the caller's orders
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.Response
// @Router /orders [get]
func (h *OrderHandler) ListMine(c *gin.Context) {
	resp, err := h.orders.ListMine(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Get godoc
// @Summary Get an order. Customers can only read their own orders.
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order id"
// @Success 200 {object} dto.Response
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := h.PathUUID(c, "id")
	if !ok {
		return
	}

	resp, err := h.orders.Get(c.Request.Context(), id, middleware.UserID(c), middleware.IsAdmin(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Cancel godoc
// @Summary Cancel an order and restore its stock
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order id"
// @Success 200 {object} dto.Response
// @Router /orders/{id}/cancel [post]
func (h *OrderHandler) Cancel(c *gin.Context) {
	id, ok := h.PathUUID(c, "id")
	if !ok {
		return
	}

	resp, err := h.orders.Cancel(c.Request.Context(), id, middleware.UserID(c), middleware.IsAdmin(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List godoc
// @Summary List all orders
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param status query string false "Filter by status"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} dto.Response
// @Router /admin/orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	filter := queryFilter(c)
	if status := c.Query("status"); status != "" {
		filter.Filters["status"] = status
	}

	resp, err := h.orders.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// UpdateStatus godoc
// @Summary Overwrite an order's status
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Order id"
// @Param request body order.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} dto.Response
// @Router /admin/orders/{id}/status [put]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := h.PathUUID(c, "id")
	if !ok {
		return
	}

	var req apporder.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	resp, err := h.orders.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
