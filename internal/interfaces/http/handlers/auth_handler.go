package handlers

import (
	"github.com/gin-gonic/gin"
	appidentity "github.com/techzone/backend/internal/application/identity"
	"github.com/techzone/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// AuthHandler exposes registration, login, and account endpoints
type AuthHandler struct {
	BaseHandler
	auth *appidentity.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(auth *appidentity.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{BaseHandler: NewBaseHandler(log), auth: auth}
}

// Register godoc
// @Summary Register a new customer account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body identity.RegisterRequest true "Registration details"
// @Success 201 {object} dto.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req appidentity.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	resp, err := h.auth.Register(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Login godoc
// @Summary Authenticate and receive a token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body identity.LoginRequest true "Credentials"
// @Success 200 {object} dto.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req appidentity.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	resp, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Refresh godoc
// @Summary Exchange a refresh token for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body identity.RefreshRequest true "Refresh token"
// @Success 200 {object} dto.Response
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req appidentity.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	resp, err := h.auth.Refresh(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Logout godoc
// @Summary Revoke the presented access token
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.auth.Logout(c.Request.Context(), middleware.RawToken(c)); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c, "Logged out")
}

// Profile godoc
// @Summary Get the authenticated user's profile
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.Response
// @Router /auth/profile [get]
func (h *AuthHandler) Profile(c *gin.Context) {
	resp, err := h.auth.Profile(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// UpdateProfile godoc
// @Summary Update the authenticated user's profile
// @Tags auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body identity.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} dto.Response
// @Router /auth/profile [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req appidentity.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	resp, err := h.auth.UpdateProfile(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ChangePassword godoc
// @Summary Change the authenticated user's password
// @Tags auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body identity.ChangePasswordRequest true "Current and new password"
// @Success 200 {object} dto.Response
// @Router /auth/password [put]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req appidentity.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	if err := h.auth.ChangePassword(c.Request.Context(), middleware.UserID(c), req); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c, "Password changed")
}
