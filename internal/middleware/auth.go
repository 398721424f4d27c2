package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	portssvc "github.com/pennypilot-app/pennypilot_backend/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware creates a Gin middleware handler that validates the bearer
// token on every request using the identity provider's verifier. The server
// keeps no session state: each request pays the full verification cost.
// Missing header, malformed token, bad signature, expiry and audience
// mismatch all abort with 401.
func AuthMiddleware(verifier portssvc.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		user, err := verifier.VerifyIDToken(c.Request.Context(), parts[1])
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		// Store the identity in the request context and enrich the logger
		ctxWithUser := context.WithValue(c.Request.Context(), userIDKey, user.Subject)
		ctxWithUser = context.WithValue(ctxWithUser, authUserKey, user)

		enrichedLogger := logger.With(slog.String("user_id", user.Subject))
		ctxWithUser = context.WithValue(ctxWithUser, loggerCtxKey, enrichedLogger)

		c.Request = c.Request.WithContext(ctxWithUser)
		c.Next()
	}
}
