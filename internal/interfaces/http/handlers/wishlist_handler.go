package handlers

import (
	"github.com/gin-gonic/gin"
	appidentity "github.com/techzone/backend/internal/application/identity"
	"github.com/techzone/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// WishlistHandler exposes the caller's wishlist
type WishlistHandler struct {
	BaseHandler
	wishlist *appidentity.WishlistService
}

// NewWishlistHandler creates a new WishlistHandler
func NewWishlistHandler(wishlist *appidentity.WishlistService, log *zap.Logger) *WishlistHandler {
	return &WishlistHandler{BaseHandler: NewBaseHandler(log), wishlist: wishlist}
}

// List godoc
// @Summary List the caller's wishlist
// @Tags wishlist
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.Response
// @Router /wishlist [get]
func (h *WishlistHandler) List(c *gin.Context) {
	resp, err := h.wishlist.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Add godoc
// @Summary Add a product to the wishlist
// @Tags wishlist
// @Security BearerAuth
// @Produce json
// @Param productId path string true "Product id"
// @Success 200 {object} dto.Response
// @Router /wishlist/{productId} [post]
func (h *WishlistHandler) Add(c *gin.Context) {
	productID, ok := h.PathUUID(c, "productId")
	if !ok {
		return
	}

	if err := h.wishlist.Add(c.Request.Context(), middleware.UserID(c), productID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c, "Product added to wishlist")
}

// Remove godoc
// @Summary Remove a product from the wishlist
// @Tags wishlist
// @Security BearerAuth
// @Produce json
// @Param productId path string true "Product id"
// @Success 200 {object} dto.Response
// @Router /wishlist/{productId} [delete]
func (h *WishlistHandler) Remove(c *gin.Context) {
	productID, ok := h.PathUUID(c, "productId")
	if !ok {
		return
	}

	if err := h.wishlist.Remove(c.Request.Context(), middleware.UserID(c), productID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c, "Product removed from wishlist")
}
