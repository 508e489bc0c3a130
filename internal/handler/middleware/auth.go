package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"folio-api/internal/pkg/cookie"
	"folio-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	auth usecase.AuthUseCase
}

const (
	ctxUsernameKey = "username"
	ctxUserRoleKey = "user_role"
)

func NewAuthMiddleware(auth usecase.AuthUseCase) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// RequireAdmin authenticates via the http-only cookie (or a Bearer
// header) and rejects everything but the admin role.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetAccessToken(c)
		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		username, role, err := m.auth.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}
		if role != usecase.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Set(ctxUsernameKey, username)
		c.Set(ctxUserRoleKey, role)
		c.Set("jwt_claims", map[string]any{
			"username": username,
			"role":     role,
		})
		c.Next()
	}
}

func GetUsername(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxUsernameKey)
	if !exists {
		return "", false
	}
	username, ok := v.(string)
	return username, ok
}
