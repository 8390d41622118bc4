package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sangkips/kasirpos/pkg/utils"
)

func newGateRouter(t *testing.T) (*gin.Engine, *utils.JWTManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtManager := utils.NewJWTManager("test-secret", time.Hour)

	router := gin.New()
	protected := router.Group("", AuthMiddleware(jwtManager))
	protected.GET("/me", func(c *gin.Context) {
		c.JSON(200, gin.H{"user_id": GetUserID(c), "username": GetUsername(c)})
	})
	protected.GET("/admin", RequireAdmin(), func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	return router, jwtManager
}

func request(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	router, _ := newGateRouter(t)
	w := request(router, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	router, _ := newGateRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	router, _ := newGateRouter(t)
	w := request(router, "/me", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	router, jwtManager := newGateRouter(t)

	token, err := jwtManager.GenerateToken("2", "staff", "staff")
	require.NoError(t, err)

	w := request(router, "/me", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"2"`)
	assert.Contains(t, w.Body.String(), `"username":"staff"`)
}

func TestRequireAdmin_BlocksStaffAndUser(t *testing.T) {
	router, jwtManager := newGateRouter(t)

	for _, role := range []string{"staff", "user"} {
		token, err := jwtManager.GenerateToken("2", "someone", role)
		require.NoError(t, err)

		w := request(router, "/admin", token)
		assert.Equal(t, http.StatusForbidden, w.Code, "role %s must be rejected", role)
	}
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	router, jwtManager := newGateRouter(t)

	token, err := jwtManager.GenerateToken("1", "admin", "admin")
	require.NoError(t, err)

	w := request(router, "/admin", token)
	assert.Equal(t, http.StatusOK, w.Code)
}
