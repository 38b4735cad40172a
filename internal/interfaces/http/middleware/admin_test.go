// internal/interfaces/http/middleware/admin_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/your-org/storefront-backend/internal/config"
)

func adminTestRouter(adminKey string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}
	cfg.Security.AdminAPIKey = adminKey

	router := gin.New()
	router.GET("/admin/ping", AdminKey(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	return router
}

func TestAdminKey_ValidKey(t *testing.T) {
	router := adminTestRouter("a-sufficiently-long-admin-key")

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("X-Admin-Key", "a-sufficiently-long-admin-key")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminKey_InvalidKey(t *testing.T) {
	router := adminTestRouter("a-sufficiently-long-admin-key")

	for _, key := range []string{"", "wrong-key", "a-sufficiently-long-admin-keyX"} {
		req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
		if key != "" {
			req.Header.Set("X-Admin-Key", key)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "key %q", key)
	}
}

func TestAdminKey_UnconfiguredDisablesAdminAPI(t *testing.T) {
	router := adminTestRouter("")

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("X-Admin-Key", "anything")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
