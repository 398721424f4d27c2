package services

import (
	"context"

	"github.com/pennypilot-app/pennypilot_backend/internal/core/domain"
)

// RateSvcFacade fetches the current exchange-rate table from the external
// feed. There is no server-side cache; each call hits the upstream.
type RateSvcFacade interface {
	FetchRates(ctx context.Context) (*domain.RateTable, error)
}
