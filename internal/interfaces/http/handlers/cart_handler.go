package handlers

import (
	"github.com/gin-gonic/gin"
	appcart "github.com/techzone/backend/internal/application/cart"
	"github.com/techzone/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// CartHandler exposes the authenticated user's cart
type CartHandler struct {
	BaseHandler
	carts *appcart.CartService
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(carts *appcart.CartService, log *zap.Logger) *CartHandler {
	return &CartHandler{BaseHandler: NewBaseHandler(log), carts: carts}
}

// Get godoc
// @Summary Get the caller's cart
// @Tags cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.Response
// @Router /cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	resp, err := h.carts.Get(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// AddItem godoc
// @Summary Add a product to the cart
// @Tags cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body cart.AddItemRequest true "Product and quantity"
// @Success 200 {object} dto.Response
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var req appcart.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	resp, err := h.carts.AddItem(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// UpdateItem godoc
// @Summary Change a cart line quantity
// @Tags cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param productId path string true "Product id"
// @Param request body cart.UpdateItemRequest true "New quantity"
// @Success 200 {object} dto.Response
// @Router /cart/items/{productId} [put]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	productID, ok := h.PathUUID(c, "productId")
	if !ok {
		return
	}

	var req appcart.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	resp, err := h.carts.UpdateItem(c.Request.Context(), middleware.UserID(c), productID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// RemoveItem godoc
// @Summary Remove a product from the cart
// @Tags cart
// @Security BearerAuth
// @Produce json
// @Param productId path string true "Product id"
// @Success 200 {object} dto.Response
// @Router /cart/items/{productId} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID, ok := h.PathUUID(c, "productId")
	if !ok {
		return
	}

	resp, err := h.carts.RemoveItem(c.Request.Context(), middleware.UserID(c), productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Clear godoc
// @Summary Empty the cart
// @Tags cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.Response
// @Router /cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.carts.Clear(c.Request.Context(), middleware.UserID(c)); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c, "Cart cleared")
}
