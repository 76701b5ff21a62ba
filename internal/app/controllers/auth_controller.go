package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/collegefinance/internal/app/models/dto"
	"github.com/yigit/collegefinance/internal/app/services"
	"github.com/yigit/collegefinance/internal/middleware"
)

// AuthController handles admin authentication
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

func tokenResponse(res *services.LoginResult) dto.TokenResponse {
	return dto.TokenResponse{
		Token:     res.Token,
		TokenType: "Bearer",
		ExpiresIn: res.ExpiresIn,
		Username:  res.Admin.Username,
	}
}

// Login handles admin login
// @Summary Log in
// @Description Exchanges admin credentials for an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Admin credentials"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse} "Logged in"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	res, err := c.authService.Login(ctx, req.Username, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ok(ctx, tokenResponse(res))
}

// ChangePassword handles a password change for the logged in admin
// @Summary Change password
// @Description Replaces the admin password after checking the current one
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ChangePasswordRequest true "Current and new password"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse} "Password updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized or wrong current password"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/password [put]
func (c *AuthController) ChangePassword(ctx *gin.Context) {
	adminID, found := requireAdmin(ctx)
	if !found {
		return
	}

	var req dto.ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	if err := c.authService.ChangePassword(ctx, adminID, req.OldPassword, req.NewPassword); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ok(ctx, dto.MessageResponse{Message: "Password updated"})
}

// ChangeUsername handles a username change for the logged in admin
// @Summary Change username
// @Description Renames the admin after checking the password and returns a new token
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ChangeUsernameRequest true "New username and current password"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse} "Username updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized or wrong password"
// @Failure 409 {object} dto.ErrorResponse "Username already taken"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/username [put]
func (c *AuthController) ChangeUsername(ctx *gin.Context) {
	adminID, found := requireAdmin(ctx)
	if !found {
		return
	}

	var req dto.ChangeUsernameRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	res, err := c.authService.ChangeUsername(ctx, adminID, req.NewUsername, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ok(ctx, tokenResponse(res))
}

// Me returns the logged in admin
// @Summary Current admin
// @Description Returns the account behind the access token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.AdminResponse} "Admin account"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Account no longer exists"
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	adminID, found := requireAdmin(ctx)
	if !found {
		return
	}

	admin, err := c.authService.GetProfile(ctx, adminID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ok(ctx, dto.AdminResponse{ID: admin.ID, Username: admin.Username})
}
