package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/kasirpos/internal/domain/enum"
	"github.com/sangkips/kasirpos/internal/presentation/http/dto/response"
	"github.com/sangkips/kasirpos/pkg/utils"
)

// AuthMiddleware validates the bearer token and loads the operator's
// identity into the request context.
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		tokenString := parts[1]

		claims, err := jwtManager.ValidateToken(tokenString)
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", string(claims.UserID))
		c.Set("user_username", claims.Username)
		c.Set("user_role", enum.ParseRole(claims.Role))
		c.Set("token", tokenString)

		c.Next()
	}
}

// RequireAdmin gates a route to operators carrying the admin role.
// Staff and regular users get 403 with the route's existence intact.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		roleValue, exists := c.Get("user_role")
		if !exists {
			response.Forbidden(c, "Access denied")
			c.Abort()
			return
		}

		role, ok := roleValue.(enum.Role)
		if !ok || !role.IsAdmin() {
			response.Forbidden(c, "Admin access required")
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetUserID returns the authenticated operator's id from the context.
func GetUserID(c *gin.Context) string {
	if v, exists := c.Get("user_id"); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

// GetUsername returns the authenticated operator's username.
func GetUsername(c *gin.Context) string {
	if v, exists := c.Get("user_username"); exists {
		if name, ok := v.(string); ok {
			return name
		}
	}
	return ""
}

// GetToken returns the raw bearer token the request carried.
func GetToken(c *gin.Context) string {
	if v, exists := c.Get("token"); exists {
		if token, ok := v.(string); ok {
			return token
		}
	}
	return ""
}
