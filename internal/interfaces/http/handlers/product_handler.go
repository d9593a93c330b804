package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	appcatalog "github.com/techzone/backend/internal/application/catalog"
	"github.com/techzone/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// ProductHandler exposes catalog product endpoints
type ProductHandler struct {
	BaseHandler
	products *appcatalog.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(products *appcatalog.ProductService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{BaseHandler: NewBaseHandler(log), products: products}
}

// List godoc
// @Summary List products with filtering and pagination
// @Tags products
// @Produce json
// @Param search query string false "Search in name and description"
// @Param category_id query string false "Filter by category"
// @Param brand query string false "Filter by brand"
// @Param min_price query number false "Minimum price"
// @Param max_price query number false "Maximum price"
// @Param sort_by query string false "Sort column" Enums(name, price, rating, created_at)
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} dto.Response
// @Router /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	var req appcatalog.ProductFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	resp, err := h.products.List(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Get godoc
// @Summary Get a product by id
// @Tags products
// @Produce json
// @Param id path string true "Product id"
// @Success 200 {object} dto.Response
// @Router /products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := h.PathUUID(c, "id")
	if !ok {
		return
	}

	resp, err := h.products.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Featured godoc
// @Summary List featured products
// @Tags products
// @Produce json
// @Param limit query int false "Maximum results"
// @Success 200 {object} dto.Response
// @Router /products/featured [get]
func (h *ProductHandler) Featured(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	resp, err := h.products.Featured(c.Request.Context(), limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ByCategory godoc
// @Summary List products in a category
// @Tags products
// @Produce json
// @Param id path string true "Category id"
// @Success 200 {object} dto.Response
// @Router /categories/{id}/products [get]
func (h *ProductHandler) ByCategory(c *gin.Context) {
	id, ok := h.PathUUID(c, "id")
	if !ok {
		return
	}

	var req appcatalog.ProductFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	resp, err := h.products.ByCategory(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Create godoc
// @Summary Create a product
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body catalog.CreateProductRequest true "Product details"
// @Success 201 {object} dto.Response
// @Router /admin/products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req appcatalog.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	resp, err := h.products.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Update godoc
// @Summary Update a product
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Product id"
// @Param request body catalog.UpdateProductRequest true "Fields to change"
// @Success 200 {object} dto.Response
// @Router /admin/products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := h.PathUUID(c, "id")
	if !ok {
		return
	}

	var req appcatalog.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	resp, err := h.products.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete godoc
// @Summary Delete a product
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Product id"
// @Success 200 {object} dto.Response
// @Router /admin/products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := h.PathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.products.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c, "Product deleted")
}

// UploadImage godoc
// @Summary Upload a product image
// @Tags admin
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Product id"
// @Param image formData file true "Image file"
// @Success 200 {object} dto.Response
// @Router /admin/products/{id}/image [post]
func (h *ProductHandler) UploadImage(c *gin.Context) {
	id, ok := h.PathUUID(c, "id")
	if !ok {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("Image file is required"))
		return
	}

	src, err := file.Open()
	if err != nil {
		h.HandleError(c, err)
		return
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	resp, err := h.products.UploadImage(c.Request.Context(), id, file.Filename, contentType, src, file.Size)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
