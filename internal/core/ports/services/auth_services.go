package services

import (
	"context"

	"github.com/pennypilot-app/pennypilot_backend/internal/core/domain"
)

// TokenVerifier validates a bearer token against the identity provider and
// extracts the caller's identity. Implementations must reject expired tokens,
// bad signatures and audience mismatches; callers treat every failure as
// unauthorized.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, token string) (*domain.AuthenticatedUser, error)
}
