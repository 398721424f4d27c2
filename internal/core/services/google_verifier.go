package services

import (
	"context"
	"fmt"

	"github.com/pennypilot-app/pennypilot_backend/internal/apperrors"
	"github.com/pennypilot-app/pennypilot_backend/internal/core/domain"
	portssvc "github.com/pennypilot-app/pennypilot_backend/internal/core/ports/services"
	"google.golang.org/api/idtoken"
)

// googleTokenVerifier validates Google ID tokens against the configured
// OAuth client ID. Verification is delegated entirely to the idtoken package,
// which handles signature checks against Google's published keys (with its
// own key caching) plus expiry and audience validation.
type googleTokenVerifier struct {
	clientID string
}

// NewGoogleTokenVerifier creates a verifier for the given OAuth client ID
// (the expected token audience).
func NewGoogleTokenVerifier(clientID string) portssvc.TokenVerifier {
	return &googleTokenVerifier{clientID: clientID}
}

// VerifyIDToken validates the token and extracts the caller's identity.
// Every failure mode, from a garbled token to an audience mismatch, maps to
// ErrUnauthorized so callers reject uniformly.
func (v *googleTokenVerifier) VerifyIDToken(ctx context.Context, token string) (*domain.AuthenticatedUser, error) {
	payload, err := idtoken.Validate(ctx, token, v.clientID)
	if err != nil {
		// The wrapped error from idtoken.Validate can be descriptive, e.g.
		// "idtoken: token expired"; it is logged upstream but never sent to
		// the client.
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUnauthorized, err)
	}

	if payload.Subject == "" {
		return nil, fmt.Errorf("%w: token payload missing subject", apperrors.ErrUnauthorized)
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)

	return &domain.AuthenticatedUser{
		Subject: payload.Subject,
		Email:   email,
		Name:    name,
	}, nil
}
