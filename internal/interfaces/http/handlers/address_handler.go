package handlers

import (
	"github.com/gin-gonic/gin"
	appidentity "github.com/techzone/backend/internal/application/identity"
	"github.com/techzone/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// AddressHandler exposes the caller's address book
type AddressHandler struct {
	BaseHandler
	addresses *appidentity.AddressService
}

// NewAddressHandler creates a new AddressHandler
func NewAddressHandler(addresses *appidentity.AddressService, log *zap.Logger) *AddressHandler {
	return &AddressHandler{BaseHandler: NewBaseHandler(log), addresses: addresses}
}

// List godoc
// @Summary List the caller's addresses
// @Tags addresses
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.Response
// @Router /addresses [get]
func (h *AddressHandler) List(c *gin.Context) {
	resp, err := h.addresses.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Create godoc
// @Summary Add an address
// @Tags addresses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body identity.CreateAddressRequest true "Address details"
// @Success 201 {object} dto.Response
// @Router /addresses [post]
func (h *AddressHandler) Create(c *gin.Context) {
	var req appidentity.CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	resp, err := h.addresses.Create(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Update godoc
// @Summary Update one of the caller's addresses
// @Tags addresses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Address id"
// @Param request body identity.UpdateAddressRequest true "Address details"
// @Success 200 {object} dto.Response
// @Router /addresses/{id} [put]
func (h *AddressHandler) Update(c *gin.Context) {
	id, ok := h.PathUUID(c, "id")
	if !ok {
		return
	}

	var req appidentity.UpdateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	resp, err := h.addresses.Update(c.Request.Context(), middleware.UserID(c), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete godoc
// @Summary Remove one of the caller's addresses
// @Tags addresses
// @Security BearerAuth
// @Produce json
// @Param id path string true "Address id"
// @Success 200 {object} dto.Response
// @Router /addresses/{id} [delete]
func (h *AddressHandler) Delete(c *gin.Context) {
	id, ok := h.PathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.addresses.Delete(c.Request.Context(), middleware.UserID(c), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c, "Address deleted")
}
