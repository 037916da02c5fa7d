// internal/middleware/helpers.go
package middleware

import "github.com/gin-gonic/gin"

// GetToken returns the bearer token stashed by Auth.
func GetToken(c *gin.Context) (string, bool) {
	v, exists := c.Get("token")
	if !exists {
		return "", false
	}
	token, ok := v.(string)
	return token, ok
}

// GetRequestID returns the correlation id stamped by RequestID.
func GetRequestID(c *gin.Context) string {
	v, exists := c.Get("request_id")
	if !exists {
		return ""
	}
	id, _ := v.(string)
	return id
}
