package handlers

import (
	"github.com/gin-gonic/gin"
	appreview "github.com/techzone/backend/internal/application/review"
	"github.com/techzone/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// ReviewHandler exposes product review endpoints
type ReviewHandler struct {
	BaseHandler
	reviews *appreview.ReviewService
}

// NewReviewHandler creates a new ReviewHandler
func NewReviewHandler(reviews *appreview.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{BaseHandler: NewBaseHandler(log), reviews: reviews}
}

// Create godoc
// @Summary Submit a review for a product
// @Tags reviews
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body review.CreateReviewRequest true "Rating and comment"
// @Success 201 {object} dto.Response
// @Router /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	var req appreview.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	resp, err := h.reviews.Create(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ListByProduct godoc
// @Summary List approved reviews for a product
// @Tags reviews
// @Produce json
// @Param id path string true "Product id"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} dto.Response
// @Router /products/{id}/reviews [get]
func (h *ReviewHandler) ListByProduct(c *gin.Context) {
	id, ok := h.PathUUID(c, "id")
	if !ok {
		return
	}

	resp, err := h.reviews.ListByProduct(c.Request.Context(), id, queryFilter(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Approve godoc
// @Summary Approve a pending review
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Review id"
// @Success 200 {object} dto.Response
// @Router /admin/reviews/{id}/approve [post]
func (h *ReviewHandler) Approve(c *gin.Context) {
	id, ok := h.PathUUID(c, "id")
	if !ok {
		return
	}

	resp, err := h.reviews.Approve(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete godoc
// @Summary Delete a review
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Review id"
// @Success 200 {object} dto.Response
// @Router /admin/reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := h.PathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.reviews.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c, "Review deleted")
}
