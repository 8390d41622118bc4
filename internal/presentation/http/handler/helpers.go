package handler

import (
	"github.com/gin-gonic/gin"
)

// GetUserID extracts the operator's user ID from the Gin context
func GetUserID(c *gin.Context) string {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return ""
	}
	userID, ok := userIDVal.(string)
	if !ok {
		return ""
	}
	return userID
}

// GetUsername extracts the operator's username from the Gin context
func GetUsername(c *gin.Context) string {
	name, exists := c.Get("user_username")
	if !exists {
		return ""
	}
	username, ok := name.(string)
	if !ok {
		return ""
	}
	return username
}

// GetToken extracts the raw bearer token from the Gin context
func GetToken(c *gin.Context) string {
	val, exists := c.Get("token")
	if !exists {
		return ""
	}
	token, ok := val.(string)
	if !ok {
		return ""
	}
	return token
}
