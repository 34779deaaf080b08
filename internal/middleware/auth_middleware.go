package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	appauth "github.com/devang/kalasangam/internal/app/auth"
	"github.com/devang/kalasangam/internal/app/models/dto"
	"github.com/devang/kalasangam/internal/pkg/apperrors"
	"github.com/devang/kalasangam/internal/pkg/auth"
	"github.com/devang/kalasangam/internal/pkg/logger"
	"github.com/devang/kalasangam/internal/pkg/metrics"
)

// AuthMiddleware carries authentication and admin-guard handlers.
type AuthMiddleware struct {
	jwtService *auth.JWTService
	guard      *appauth.Guard
	gateway    *appauth.Gateway
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, guard *appauth.Guard, gateway *appauth.Gateway) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		guard:      guard,
		gateway:    gateway,
	}
}

// JWTAuth validates the bearer token and stores the principal in the request
// context. It authenticates only; AdminRequired decides authorization.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required").
				WithDetails("Authorization header missing").
				WithRedirect(appauth.LoginRoute)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required").
				WithDetails("Invalid token format").
				WithRedirect(appauth.LoginRoute)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			errorCode := dto.ErrorCodeInvalidToken
			errorDetails := "Invalid token"
			if errors.Is(err, apperrors.ErrTokenExpired) {
				errorCode = dto.ErrorCodeExpiredToken
				errorDetails = "Token has expired"
			} else if errors.Is(err, apperrors.ErrInvalidFormat) {
				errorDetails = "Invalid token format"
			}

			errorDetail := dto.NewErrorDetail(errorCode, "Authentication failed").
				WithDetails(errorDetails).
				WithRedirect(appauth.LoginRoute)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Set("uid", claims.UID)
		c.Set("email", claims.Email)

		c.Next()
	}
}

// AdminRequired runs the session guard for the authenticated principal. A
// visitor who is signed in but holds no admin privilege is denied and has
// every session revoked before the response goes out.
func (m *AuthMiddleware) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		var principal *appauth.Principal
		if uid, ok := c.Get("uid"); ok {
			email, _ := c.Get("email")
			principal = &appauth.Principal{
				UID:   uid.(string),
				Email: email.(string),
			}
		}

		result := m.guard.Check(c.Request.Context(), principal)
		if result.State == appauth.StateAuthorized {
			c.Next()
			return
		}

		metrics.AdminGuardDenials.Inc()

		if result.ForceSignOut && principal != nil {
			if err := m.gateway.ForceSignOut(c.Request.Context(), principal.UID); err != nil {
				logger.Error().Err(err).Str("uid", principal.UID).Msg("Forced sign-out failed after guard denial")
			}
		}

		status := http.StatusUnauthorized
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		if principal != nil {
			status = http.StatusForbidden
			errorDetail = dto.NewErrorDetail(dto.ErrorCodeForbidden, "Admin privilege required")
		}
		errorDetail = errorDetail.WithRedirect(result.RedirectTo)

		c.AbortWithStatusJSON(status, dto.NewErrorResponse(errorDetail))
	}
}
