//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"studio-booking/internal/handler/middleware"
	"studio-booking/internal/pkg/jwt"
	"studio-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAdminRouter(t *testing.T, tokenService *jwt.Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	auth := middleware.NewAdminAuthMiddleware(tokenService)
	router.GET("/admin/ping", auth.RequireAdmin(), func(c *gin.Context) {
		sessionID, _ := c.Get("admin_session_id")
		c.JSON(http.StatusOK, gin.H{"session_id": sessionID})
	})
	return router
}

func TestRequireAdmin(t *testing.T) {
	tokenService := jwt.NewService("test-secret", time.Hour)
	router := setupAdminRouter(t, tokenService)

	t.Run("valid token passes and exposes the session id", func(t *testing.T) {
		token, err := tokenService.GenerateToken()
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/admin/ping", nil, token)

		var body struct {
			SessionID string `json:"session_id"`
		}
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		_, err = uuid.Parse(body.SessionID)
		assert.NoError(t, err)
	})

	t.Run("missing token is rejected", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/admin/ping", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Admin token required")
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		token, err := jwt.NewService("other-secret", time.Hour).GenerateToken()
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/admin/ping", nil, token)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		token, err := jwt.NewService("test-secret", -time.Minute).GenerateToken()
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/admin/ping", nil, token)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}
