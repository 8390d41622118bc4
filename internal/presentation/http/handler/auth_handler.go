package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/kasirpos/internal/application/service"
	"github.com/sangkips/kasirpos/internal/presentation/http/dto/request"
	"github.com/sangkips/kasirpos/internal/presentation/http/dto/response"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles operator login
// @Summary Login
// @Description Authenticate an operator and return a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "Login credentials"
// @Success 200 {object} response.APIResponse
// @Failure 401 {object} response.APIResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	output, err := h.authService.Login(c.Request.Context(), &service.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", gin.H{
		"token":      output.Token,
		"token_type": "Bearer",
		"user":       output.User.Profile(),
	})
}

// SocialLogin handles login via a social identity provider
// @Summary Social login
// @Description Authenticate with a provider token (google, facebook or twitter)
// @Tags auth
// @Accept json
// @Produce json
// @Param provider path string true "Provider name"
// @Param request body request.SocialLoginRequest true "Provider token"
// @Success 200 {object} response.APIResponse
// @Failure 401 {object} response.APIResponse
// @Router /auth/social/{provider} [post]
func (h *AuthHandler) SocialLogin(c *gin.Context) {
	var req request.SocialLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	output, err := h.authService.SocialLogin(c.Request.Context(), c.Param("provider"), req.Token)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", gin.H{
		"token":      output.Token,
		"token_type": "Bearer",
		"user":       output.User.Profile(),
	})
}

// Verify revalidates the current session
// @Summary Verify session
// @Description Confirm the session token is still valid and return the fresh profile
// @Tags auth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Failure 401 {object} response.APIResponse
// @Router /auth/verify [get]
func (h *AuthHandler) Verify(c *gin.Context) {
	user, err := h.authService.Verify(c.Request.Context(), GetToken(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Session valid", gin.H{
		"user": user.Profile(),
	})
}

// Logout ends the current session
// @Summary Logout
// @Description Drop the local session; the remote directory is notified best-effort
// @Tags auth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context(), GetToken(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Logout successful", nil)
}
