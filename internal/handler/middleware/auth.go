package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"rental-marketplace/internal/domain/auth"
	"rental-marketplace/internal/domain/user"
	"rental-marketplace/internal/handler/httperr"
	"rental-marketplace/internal/pkg/cookie"
	"rental-marketplace/internal/pkg/errs"
	"rental-marketplace/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxPrincipalKey = "principal"
	ctxClaimsKey    = "jwt_claims"
)

var errInvalidToken = errs.Domain(errs.ErrAuthentication, "Invalid or expired token")

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, auth.ErrUnauthenticated, "Access token is required", nil)
			return
		}

		principal, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, errInvalidToken, "Invalid or expired token", nil)
			return
		}

		setPrincipal(c, principal)
		c.Next()
	}
}

// RequireRoles must run after RequireAuth.
func (m *AuthMiddleware) RequireRoles(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, _ := GetPrincipal(c)
		if err := auth.Authorize(principal, roles...); err != nil {
			httperr.Abort(c, err)
			return
		}
		c.Next()
	}
}

// OptionalAuth authenticates the request if a token is present, but does not abort on failure.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		principal, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			c.Next()
			return
		}

		setPrincipal(c, principal)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func setPrincipal(c *gin.Context, principal auth.Principal) {
	c.Set(ctxPrincipalKey, principal)
	c.Set(ctxClaimsKey, map[string]any{
		"user_id": principal.UserID.String(),
		"role":    principal.Role.String(),
	})
}

// GetPrincipal returns the zero principal for anonymous requests.
func GetPrincipal(c *gin.Context) (auth.Principal, bool) {
	v, exists := c.Get(ctxPrincipalKey)
	if !exists {
		return auth.Principal{}, false
	}
	p, ok := v.(auth.Principal)
	return p, ok
}
