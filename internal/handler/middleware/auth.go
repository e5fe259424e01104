package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"studio-booking/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

type AdminAuthMiddleware struct {
	tokenService *jwt.Service
}

func NewAdminAuthMiddleware(tokenService *jwt.Service) *AdminAuthMiddleware {
	return &AdminAuthMiddleware{tokenService: tokenService}
}

// RequireAdmin gates the admin sub-views behind the session token
// issued by the password login.
func (m *AdminAuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Admin token required"},
			})
			c.Abort()
			return
		}

		claims, err := m.tokenService.ValidateToken(token)
		if err != nil {
			slog.Warn("Admin token validation failed", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Invalid or expired token"},
			})
			c.Abort()
			return
		}

		c.Set("admin_session_id", claims.SessionID)
		c.Next()
	}
}
