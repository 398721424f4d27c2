package middleware

import (
	"context"
	"log/slog"

	"github.com/pennypilot-app/pennypilot_backend/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// contextKey is a private type for context keys set by this package.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	userIDKey    = contextKey("userID")
	authUserKey  = contextKey("authUser")
)

// GetLoggerFromCtx retrieves the request-scoped logger from the context.
// It returns the default logger if none is found (though this shouldn't
// happen if the middleware is applied correctly).
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return logger
}

// GetUserIDFromContext retrieves the authenticated user ID from the Gin
// context. It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetAuthenticatedUserFromContext retrieves the full verified identity from
// the Gin context.
func GetAuthenticatedUserFromContext(c *gin.Context) (*domain.AuthenticatedUser, bool) {
	user, ok := c.Request.Context().Value(authUserKey).(*domain.AuthenticatedUser)
	if !ok {
		return nil, false
	}
	return user, true
}
