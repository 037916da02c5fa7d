// internal/middleware/auth_middleware.go
package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"vendora-admin/internal/pkg/response"
)

// AuthMiddleware guards the gateway's endpoints. The gateway does not
// issue or verify sessions — that is the upstream platform's job — but
// it prechecks that a bearer token is present and not already expired,
// so obviously dead requests fail fast without an upstream round-trip.
type AuthMiddleware struct {
	logger *zap.Logger
}

func NewAuthMiddleware(logger *zap.Logger) *AuthMiddleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthMiddleware{logger: logger}
}

// Auth validates token presence and expiry, then stashes the raw
// token in the request context for forwarding.
func (m *AuthMiddleware) Auth() gin.HandlerFunc {
	parser := jwt.NewParser()

	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Error(c, http.StatusUnauthorized, "missing authorization token", nil)
			return
		}

		claims := jwt.MapClaims{}
		if _, _, err := parser.ParseUnverified(token, claims); err != nil {
			response.Error(c, http.StatusUnauthorized, "malformed token", err)
			return
		}

		// Expiry precheck only. Signature verification happens
		// upstream, where the keys live.
		exp, err := claims.GetExpirationTime()
		if err == nil && exp != nil && exp.Before(time.Now()) {
			response.Error(c, http.StatusUnauthorized, "token expired", nil)
			return
		}

		c.Set("token", token)
		c.Next()
	}
}

// extractToken pulls the bearer token from the Authorization header,
// falling back to the token query parameter (used by the UI socket).
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return parts[1]
		}
	}
	return c.Query("token")
}
