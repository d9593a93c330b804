package handlers

import (
	"github.com/gin-gonic/gin"
	appcatalog "github.com/techzone/backend/internal/application/catalog"
	"go.uber.org/zap"
)

// CategoryHandler exposes catalog category endpoints
type CategoryHandler struct {
	BaseHandler
	categories *appcatalog.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categories *appcatalog.CategoryService, log *zap.Logger) *CategoryHandler {
	return &CategoryHandler{BaseHandler: NewBaseHandler(log), categories: categories}
}

// List godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {object} dto.Response
// @Router /categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	resp, err := h.categories.List(c.Request.Context(), queryFilter(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Get godoc
// @Summary Get a category by id
// @Tags categories
// @Produce json
// @Param id path string true "Category id"
// @Success 200 {object} dto.Response
// @Router /categories/{id} [get]
func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := h.PathUUID(c, "id")
	if !ok {
		return
	}

	resp, err := h.categories.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Create godoc
// @Summary Create a category
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body catalog.CreateCategoryRequest true "Category details"
// @Success 201 {object} dto.Response
// @Router /admin/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req appcatalog.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	resp, err := h.categories.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Update godoc
// @Summary Update a category
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Category id"
// @Param request body catalog.UpdateCategoryRequest true "Fields to change"
// @Success 200 {object} dto.Response
// @Router /admin/categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := h.PathUUID(c, "id")
	if !ok {
		return
	}

	var req appcatalog.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	resp, err := h.categories.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete godoc
// @Summary Delete a category
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Category id"
// @Success 200 {object} dto.Response
// @Router /admin/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := h.PathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.categories.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c, "Category deleted")
}
