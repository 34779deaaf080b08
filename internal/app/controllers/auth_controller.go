package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devang/kalasangam/internal/app/auth"
	"github.com/devang/kalasangam/internal/app/models/dto"
	"github.com/devang/kalasangam/internal/middleware"
)

// AuthController handles sign-in, refresh and sign-out.
type AuthController struct {
	gateway *auth.Gateway
}

// NewAuthController creates a new AuthController
func NewAuthController(gateway *auth.Gateway) *AuthController {
	return &AuthController{gateway: gateway}
}

// Login verifies credentials and returns a token pair.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid login data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	principal, tokens, err := c.gateway.SignIn(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.LoginResponse{
		Principal: dto.PrincipalResponse{UID: principal.UID, Email: principal.Email},
		Tokens: dto.TokenResponse{
			AccessToken:      tokens.AccessToken,
			RefreshToken:     tokens.RefreshToken,
			ExpiresIn:        tokens.ExpiresIn,
			RefreshExpiresIn: tokens.RefreshExpiresIn,
		},
	}))
}

// Refresh rotates a refresh token into a new pair.
func (c *AuthController) Refresh(ctx *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid refresh data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	principal, tokens, err := c.gateway.Refresh(ctx.Request.Context(), req.RefreshToken)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.LoginResponse{
		Principal: dto.PrincipalResponse{UID: principal.UID, Email: principal.Email},
		Tokens: dto.TokenResponse{
			AccessToken:      tokens.AccessToken,
			RefreshToken:     tokens.RefreshToken,
			ExpiresIn:        tokens.ExpiresIn,
			RefreshExpiresIn: tokens.RefreshExpiresIn,
		},
	}))
}

// Logout revokes the caller's refresh token. Revoking a token that is already
// gone still succeeds.
func (c *AuthController) Logout(ctx *gin.Context) {
	var req dto.LogoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid logout data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.gateway.SignOut(ctx.Request.Context(), req.RefreshToken); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil))
}
