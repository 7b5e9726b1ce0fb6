package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/apopovic77/gsg-api/middleware"
)

func authRouter(keys []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", middleware.APIKeyAuth(keys), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func request(r *gin.Engine, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if key != "" {
		req.Header.Set("x-api-key", key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAPIKeyAuth_DisabledWithoutConfiguredKeys(t *testing.T) {
	r := authRouter(nil)

	w := request(r, "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuth_MissingKey(t *testing.T) {
	r := authRouter([]string{"secret-1"})

	w := request(r, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "ApiKey", w.Header().Get("WWW-Authenticate"))
	assert.Contains(t, w.Body.String(), "Missing API key")
}

func TestAPIKeyAuth_InvalidKey(t *testing.T) {
	r := authRouter([]string{"secret-1", "secret-2"})

	w := request(r, "wrong")

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

func TestAPIKeyAuth_ValidKey(t *testing.T) {
	r := authRouter([]string{"secret-1", "secret-2"})

	w := request(r, "secret-2")

	assert.Equal(t, http.StatusOK, w.Code)
}
